package main

import (
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/dattran06/chatbot-backend/internal/config"
	"github.com/dattran06/chatbot-backend/internal/db"
	"github.com/dattran06/chatbot-backend/internal/httpapi"
	"github.com/dattran06/chatbot-backend/internal/httpapi/handlers"
	"github.com/dattran06/chatbot-backend/internal/session"
	"github.com/dattran06/chatbot-backend/internal/store/rabbitmq"
	"github.com/dattran06/chatbot-backend/internal/store/redisstore"
	"github.com/dattran06/chatbot-backend/internal/upload"
)

func main() {
	cfg := config.Load()

	lazy := db.NewLazy(func() (*gorm.DB, error) {
		return db.Open(cfg.DBDSN, session.Models()...)
	})

	// eager dial so the common case starts connected; a failure here is
	// not fatal, requests retry through the lazy handle
	if _, err := lazy.Get(); err != nil {
		log.Printf("initial database connect failed: %v", err)
	}

	cache := redisstore.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB,
		time.Duration(cfg.SessionCacheTTL)*time.Second)
	defer cache.Close()

	var events *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitQueue)
		if err != nil {
			log.Printf("event publisher disabled: %v", err)
		} else {
			events = p
			defer events.Close()
		}
	}

	var up upload.Uploader
	if cld, err := upload.NewCloudinary(cfg.CloudinaryURL, cfg.UploadFolder); err != nil {
		log.Printf("uploads disabled: %v", err)
	} else {
		up = cld
	}

	store := session.NewStore(lazy, cache)
	r := httpapi.NewRouter(handlers.NewHandler(store, up, events))

	log.Printf("Server is running on port: %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

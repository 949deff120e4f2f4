package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// session list cache TTL in seconds; 0 disables caching even
	// when redis is configured
	SessionCacheTTL int

	// rabbitMQ events
	RabbitURL   string
	RabbitQueue string

	// cloudinary
	CloudinaryURL string
	UploadFolder  string
}

func Load() Config {
	// local .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	// DSN demo：
	// app:apppass@tcp(127.0.0.1:3306)/chatbot?charset=utf8mb4&parseTime=true&loc=Local
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			"app", "apppass", "127.0.0.1", "3306", "chatbot",
		)
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	cacheTTL := 30
	if v := os.Getenv("SESSION_CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cacheTTL = n
		}
	}

	rabbitQueue := os.Getenv("RABBIT_QUEUE")
	if rabbitQueue == "" {
		rabbitQueue = "chat_events"
	}

	uploadFolder := os.Getenv("UPLOAD_FOLDER")
	if uploadFolder == "" {
		uploadFolder = "chatbot_files"
	}

	return Config{
		Port:  port,
		DBDSN: dsn,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		SessionCacheTTL: cacheTTL,

		RabbitURL:   os.Getenv("RABBIT_URL"),
		RabbitQueue: rabbitQueue,

		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		UploadFolder:  uploadFolder,
	}
}

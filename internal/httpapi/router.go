package httpapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dattran06/chatbot-backend/internal/httpapi/handlers"
	"github.com/dattran06/chatbot-backend/internal/httpapi/middleware"
)

func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	// the frontend is served from another origin in every environment
	r.Use(cors.Default())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", h.Ping)

	r.GET("/v1/session", h.CreateSession)
	r.GET("/v1/sessions", h.ListSessions)
	r.POST("/v1/chat", h.Chat)
	r.POST("/v1/upload", h.Upload)

	return r
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dattran06/chatbot-backend/internal/session"
	"github.com/dattran06/chatbot-backend/internal/store/rabbitmq"
	"github.com/dattran06/chatbot-backend/internal/upload"
)

type Handler struct {
	Store    *session.Store
	Uploader upload.Uploader
	Events   *rabbitmq.Publisher
}

func NewHandler(store *session.Store, up upload.Uploader, events *rabbitmq.Publisher) *Handler {
	return &Handler{Store: store, Uploader: up, Events: events}
}

func (h *Handler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// publish is best effort: event delivery never affects the response.
func (h *Handler) publish(c *gin.Context, event, sessionID string, count int) {
	if err := h.Events.Publish(c.Request.Context(), event, sessionID, count); err != nil {
		log.Printf("publish %s: %v", event, err)
	}
}

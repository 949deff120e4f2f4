package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dattran06/chatbot-backend/internal/store/rabbitmq"
)

func (h *Handler) CreateSession(c *gin.Context) {
	sid, err := h.Store.Create(c.Request.Context())
	if err != nil {
		log.Printf("create session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	h.publish(c, rabbitmq.EventSessionCreated, sid, 0)

	c.JSON(http.StatusOK, gin.H{"session_id": sid})
}

func (h *Handler) ListSessions(c *gin.Context) {
	sessions, err := h.Store.List(c.Request.Context())
	if err != nil {
		log.Printf("list sessions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sessions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

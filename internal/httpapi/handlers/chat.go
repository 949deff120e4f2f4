package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dattran06/chatbot-backend/internal/chat"
	"github.com/dattran06/chatbot-backend/internal/session"
	"github.com/dattran06/chatbot-backend/internal/store/rabbitmq"
)

type chatRequest struct {
	SessionID string            `json:"session_id"`
	Messages  []session.Message `json:"messages"`
}

// Chat always answers with the canned reply. Persisting the turn is a
// side effect, not a precondition: a missing session_id or empty turn
// just skips the append, and an unmatched session_id appends nothing
// inside the store. Only a thrown storage error turns into a 500.
func (h *Handler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// a malformed body behaves like an empty turn
		log.Printf("chat: bad request body: %v", err)
	}

	answer := chat.Answer(req.Messages)

	if req.SessionID != "" && len(req.Messages) > 0 {
		if err := h.Store.AppendTurn(c.Request.Context(), req.SessionID, req.Messages, answer); err != nil {
			log.Printf("append chat turn: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Chat failed"})
			return
		}
		h.publish(c, rabbitmq.EventChatTurn, req.SessionID, len(req.Messages)+1)
	}

	c.JSON(http.StatusOK, gin.H{"output": gin.H{"answer": answer}})
}

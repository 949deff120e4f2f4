// Package chat builds the canned assistant reply. This is a mock
// backend: the answer is a fixed sentence echoing the last message, not
// a model call, and the frontend depends on it staying that way.
package chat

import "github.com/dattran06/chatbot-backend/internal/session"

const (
	answerPrefix = "Chào bạn! Đây là phản hồi từ Mock API. Bạn vừa nhắn: "

	// shown when the turn carries no messages at all
	emptyTurnPlaceholder = "..."
)

// Answer echoes the content of the last message inside the fixed
// template, or the placeholder when there is nothing to echo.
func Answer(messages []session.Message) string {
	if len(messages) == 0 {
		return answerPrefix + emptyTurnPlaceholder
	}
	return answerPrefix + messages[len(messages)-1].Content
}

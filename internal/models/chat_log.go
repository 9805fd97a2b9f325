package models

import (
	"time"

	"github.com/google/uuid"
)

// ReplySource tells which path produced a chat reply.
type ReplySource string

const (
	SourceFAQ      ReplySource = "faq"
	SourceLLM      ReplySource = "llm"
	SourceFallback ReplySource = "fallback"
)

// ChatLog is one question/answer exchange kept for support analytics.
// It is write-only from the chat path and never fed back into replies.
type ChatLog struct {
	ID        uuid.UUID   `db:"id"`
	Message   string      `db:"message"`
	Response  string      `db:"response"`
	Source    ReplySource `db:"source"`
	CreatedAt time.Time   `db:"created_at"`
}

func NewChatLog(message, response string, source ReplySource) *ChatLog {
	return &ChatLog{
		ID:        uuid.New(),
		Message:   message,
		Response:  response,
		Source:    source,
		CreatedAt: time.Now().UTC(),
	}
}

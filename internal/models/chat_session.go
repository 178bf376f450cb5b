package models

import "time"

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatState string

const (
	ChatIdle     ChatState = "idle"
	ChatAwaiting ChatState = "awaiting"
)

type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// ChatSession lives only in the session store and is never written to SQL.
type ChatSession struct {
	ID        string        `json:"id"`
	UserID    uint          `json:"-"`
	State     ChatState     `json:"state"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

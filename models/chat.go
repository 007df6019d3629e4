package models

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation. Turns are immutable once
// appended and keep their append order.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Chat is a persisted conversation thread owned by exactly one user. The
// message list is stored as a single JSON document; the only mutations
// are appending turns and setting the title.
type Chat struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     *string   `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
}

type SendMessageRequest struct {
	Message string `json:"message"`
	ChatID  string `json:"chatId"`
}

type SendMessageResponse struct {
	Reply string `json:"reply"`
}

type RenameChatRequest struct {
	ChatID string `json:"chatId"`
	Title  string `json:"title"`
}

type RegenerateRequest struct {
	ChatID     string `json:"chatId"`
	UserPrompt string `json:"userPrompt"`
}

type StatusResponse struct {
	Message string `json:"message"`
}

package types

import "time"

// Realtime channel event names. Inbound messages may omit the event field,
// in which case they are treated as user_message.
const (
	EventUserMessage = "user_message"
	EventBotTyping   = "bot_typing"
	EventChatMessage = "chat_message"
	EventError       = "error"
)

type UserMessageEvent struct {
	Event    string `json:"event,omitempty"`
	Message  string `json:"message"`
	UserID   int    `json:"userId"`
	Language string `json:"language,omitempty"`
}

type SocketEvent struct {
	Event   string `json:"event"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ChatHistoryEntry struct {
	ChatID    int       `json:"chat_id"`
	UserID    int       `json:"user_id"`
	Query     string    `json:"query"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

package model

import "time"

// Sender kinds for a chat turn.
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// ChatMessage is one persisted chat turn. Rows are append-only: the
// system never updates or deletes them. SessionID is an opaque
// client-generated string, purely a partition key.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"column:session_id;size:128;not null;index" json:"session_id"`
	Content   string    `gorm:"column:message_content;type:text;not null" json:"message_content"`
	Sender    string    `gorm:"column:sender_type;size:8;not null" json:"sender_type"`
	CreatedAt time.Time `json:"created_at"`
}

func (ChatMessage) TableName() string {
	return "chats"
}

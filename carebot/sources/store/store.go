// Package store defines the persistence gateway contract. The rest of the
// system is written against Store only; the postgres and in-memory variants
// are selected once at startup.
package store

import (
	"context"
	"errors"
	"time"
)

var ErrDuplicateEmail = errors.New("email already registered")

type User struct {
	ID             int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name           string    `json:"name" gorm:"type:varchar(100);not null"`
	Email          string    `json:"email" gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash   string    `json:"-" gorm:"type:varchar(255);not null"`
	Age            int       `json:"age"`
	MedicalHistory string    `json:"medical_history" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

type ChatMessage struct {
	ChatID    int       `json:"chat_id" gorm:"primaryKey;autoIncrement;column:chat_id"`
	UserID    int       `json:"user_id" gorm:"not null;index"`
	User      User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Query     string    `json:"query" gorm:"type:text;not null"`
	Response  string    `json:"response" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// Store is the persistence gateway. Lookups return (nil, nil) when no row
// matches. Close is idempotent.
type Store interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id int) (*User, error)
	UpdateUser(ctx context.Context, user *User) error

	// SaveChat appends one completed exchange. The store assigns the chat id
	// and a monotonically non-decreasing timestamp.
	SaveChat(ctx context.Context, userID int, query, response string) (*ChatMessage, error)
	// GetChatHistory returns the user's messages ordered newest first.
	GetChatHistory(ctx context.Context, userID int) ([]ChatMessage, error)

	Close() error
}

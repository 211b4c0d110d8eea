package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageStatus string

const (
	MessageStatusNew     MessageStatus = "new"
	MessageStatusRead    MessageStatus = "read"
	MessageStatusReplied MessageStatus = "replied"
)

func MapMessageStatus(status string) (MessageStatus, error) {
	switch MessageStatus(strings.ToLower(status)) {
	case MessageStatusNew:
		return MessageStatusNew, nil
	case MessageStatusRead:
		return MessageStatusRead, nil
	case MessageStatusReplied:
		return MessageStatusReplied, nil
	default:
		return "", errors.New("invalid message status")
	}
}

type ContactMessage struct {
	ID        string        `gorm:"primaryKey" json:"id"`
	Name      string        `gorm:"size:200;not null" json:"name"`
	Email     string        `gorm:"size:200;not null" json:"email"`
	Phone     string        `gorm:"size:50" json:"phone"`
	Message   string        `gorm:"not null" json:"message"`
	Status    MessageStatus `gorm:"type:VARCHAR(50);default:'new';not null;index" json:"status"`
	CreatedAt time.Time     `gorm:"index" json:"createdAt"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationTypeOrderPlaced    = "order_placed"
	NotificationTypeContactMessage = "contact_message"
)

// Notification is an admin-facing event record. A nil UserID marks a
// broadcast visible to every admin.
type Notification struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    *string   `gorm:"index" json:"userId"`
	Type      string    `gorm:"size:50;not null" json:"type"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Message   string    `gorm:"not null" json:"message"`
	IsRead    bool      `gorm:"default:false;not null" json:"isRead"`
	EntityID  string    `json:"entityId"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}

// UnreadNotificationCount counts unread notifications for one user, or for
// the broadcast audience when userID is nil.
func UnreadNotificationCount(db *gorm.DB, userID *string) (int64, error) {
	var count int64
	q := db.Model(&Notification{}).Where("is_read = ?", false)
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	} else {
		q = q.Where("user_id IS NULL")
	}
	err := q.Count(&count).Error
	return count, err
}

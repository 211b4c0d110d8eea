package notificationcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Digeee/ZENCAFE/models"
)

// GET /api/notifications
//
// Returns the caller's own notifications plus the broadcast ones (null
// target user), newest first.
func GetNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")

		var notifications []models.Notification
		if err := db.
			Where("user_id = ? OR user_id IS NULL", userIDVal).
			Order("created_at DESC").
			Find(&notifications).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
			return
		}

		c.JSON(http.StatusOK, notifications)
	}
}

// GET /api/notifications/unread-count?broadcast=true
//
// Counts unread notifications for the caller, or for the broadcast
// audience when broadcast=true.
func GetUnreadCount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var scope *string
		if c.Query("broadcast") != "true" {
			userIDVal, _ := c.Get("user_id")
			userID := userIDVal.(string)
			scope = &userID
		}

		count, err := models.UnreadNotificationCount(db, scope)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count notifications"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

// PATCH /api/notifications/:id/read
func MarkNotificationRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var notification models.Notification
		if err := db.First(&notification, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}

		if err := db.Model(&notification).Update("is_read", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
			return
		}

		c.JSON(http.StatusOK, notification)
	}
}

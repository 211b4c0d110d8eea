package notificationcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Digeee/ZENCAFE/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Notification{}))
	return db
}

func seedNotifications(t *testing.T, db *gorm.DB) {
	t.Helper()

	admin := "admin-1"
	rows := []models.Notification{
		{UserID: nil, Type: models.NotificationTypeOrderPlaced, Title: "New Order Placed", Message: "broadcast one"},
		{UserID: nil, Type: models.NotificationTypeContactMessage, Title: "New Contact Message", Message: "broadcast two"},
		{UserID: &admin, Type: models.NotificationTypeOrderPlaced, Title: "New Order Placed", Message: "targeted"},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
}

func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func TestGetNotificationsIncludesBroadcast(t *testing.T) {
	db := setupDB(t)
	seedNotifications(t, db)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/notifications", asUser("admin-1"), GetNotifications(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/notifications", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var notifications []models.Notification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notifications))
	assert.Len(t, notifications, 3, "own plus broadcast")
}

func TestUnreadCountScopes(t *testing.T) {
	db := setupDB(t)
	seedNotifications(t, db)

	// Broadcast scope counts only the null-target rows.
	count, err := models.UnreadNotificationCount(db, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	admin := "admin-1"
	count, err = models.UnreadNotificationCount(db, &admin)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestMarkNotificationRead(t *testing.T) {
	db := setupDB(t)
	seedNotifications(t, db)

	var n models.Notification
	require.NoError(t, db.Where("user_id IS NULL").First(&n).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/api/notifications/:id/read", MarkNotificationRead(db))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/notifications/"+n.ID+"/read", bytes.NewBufferString(""))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	count, err := models.UnreadNotificationCount(db, nil)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

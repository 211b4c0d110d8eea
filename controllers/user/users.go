package usercontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Digeee/ZENCAFE/models"
)

// GET /api/me
//
// Never returns 401: an unauthenticated caller simply gets
// isAuthenticated=false so the storefront can render either way.
func GetMe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		anonymous := gin.H{"isAuthenticated": false, "isAdmin": false, "user": nil}

		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusOK, anonymous)
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userIDVal).Error; err != nil {
			c.JSON(http.StatusOK, anonymous)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"isAuthenticated": true,
			"isAdmin":         user.IsAdmin,
			"user":            user,
		})
	}
}

// GET /api/admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

package admincontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Digeee/ZENCAFE/models"
)

// GET /api/admin/stats
//
// Dashboard totals. Revenue sums every non-cancelled order.
func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orderCount, productCount, userCount, newMessageCount int64

		if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		if err := db.Model(&models.ContactMessage{}).
			Where("status = ?", models.MessageStatusNew).
			Count(&newMessageCount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}

		var amounts []string
		if err := db.Model(&models.Order{}).
			Where("status <> ?", models.OrderStatusCancelled).
			Pluck("total_amount", &amounts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		revenue := decimal.Zero
		for _, a := range amounts {
			if d, err := decimal.NewFromString(a); err == nil {
				revenue = revenue.Add(d)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"totalOrders":   orderCount,
			"totalRevenue":  revenue.StringFixed(2),
			"totalProducts": productCount,
			"totalUsers":    userCount,
			"newMessages":   newMessageCount,
		})
	}
}

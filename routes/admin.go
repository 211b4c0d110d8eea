package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	admincontroller "github.com/Digeee/ZENCAFE/controllers/admin"
	contactcontroller "github.com/Digeee/ZENCAFE/controllers/contact"
	notificationcontroller "github.com/Digeee/ZENCAFE/controllers/notification"
	ordercontroller "github.com/Digeee/ZENCAFE/controllers/order"
	productcontroller "github.com/Digeee/ZENCAFE/controllers/product"
	usercontroller "github.com/Digeee/ZENCAFE/controllers/user"
	"github.com/Digeee/ZENCAFE/middleware"
	"github.com/Digeee/ZENCAFE/notifier"
)

// SetupAdminRoutes registers all /api/admin and /api/notifications
// endpoints. Requires a session whose user carries the admin flag.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin(db))
	{
		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", ordercontroller.GetAllOrdersHandler(db))
			orderAdmin.GET("/export", admincontroller.ExportOrdersToExcel(db))
			orderAdmin.GET("/ws", notifier.OrderFeedHandler)
			orderAdmin.PATCH("/:orderID/status", ordercontroller.UpdateOrderStatusHandler(db))
		}

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export", admincontroller.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Contact Messages ───────────
		messageAdmin := adminGroup.Group("/messages")
		{
			messageAdmin.GET("", contactcontroller.GetContactMessages(db))
			messageAdmin.PATCH("/:id/status", contactcontroller.UpdateContactMessageStatus(db))
		}

		adminGroup.GET("/users", usercontroller.GetAllUsers(db))
		adminGroup.GET("/stats", admincontroller.GetStats(db))
	}

	notificationGroup := r.Group("/api/notifications")
	notificationGroup.Use(middleware.ValidateToken, middleware.RequireAdmin(db))
	{
		notificationGroup.GET("", notificationcontroller.GetNotifications(db))
		notificationGroup.GET("/unread-count", notificationcontroller.GetUnreadCount(db))
		notificationGroup.PATCH("/:id/read", notificationcontroller.MarkNotificationRead(db))
	}
}

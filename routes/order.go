package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ordercontroller "github.com/Digeee/ZENCAFE/controllers/order"
	"github.com/Digeee/ZENCAFE/middleware"
)

// SetupOrderRoutes registers the customer-facing order endpoints.
// All of them require a session.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/api/orders")
	orders.Use(middleware.ValidateToken)
	{
		orders.POST("", ordercontroller.PlaceOrderHandler(db))
		orders.GET("", ordercontroller.GetUserOrdersHandler(db))
		orders.GET("/items", ordercontroller.GetUserOrderItemsHandler(db))
		orders.GET("/:orderID", ordercontroller.GetOrderByIDHandler(db))
	}
}

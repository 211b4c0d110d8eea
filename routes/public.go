package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Digeee/ZENCAFE/auth"
	cartcontroller "github.com/Digeee/ZENCAFE/controllers/cart"
	contactcontroller "github.com/Digeee/ZENCAFE/controllers/contact"
	productcontroller "github.com/Digeee/ZENCAFE/controllers/product"
	usercontroller "github.com/Digeee/ZENCAFE/controllers/user"
	"github.com/Digeee/ZENCAFE/middleware"
)

// SetupPublicRoutes registers every endpoint the storefront can reach
// without a session: catalog, cart, contact form, login and /api/me.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, cartStore *cartcontroller.Store) {
	api := r.Group("/api")
	{
		api.POST("/auth/login", auth.LoginHandler(db))
		api.GET("/me", middleware.OptionalToken, usercontroller.GetMe(db))

		api.GET("/products", productcontroller.GetProducts(db))
		api.GET("/products/:slug", productcontroller.GetProductBySlug(db))
		api.GET("/categories", productcontroller.GetAllCategories(db))

		api.POST("/contact", contactcontroller.CreateContactMessage(db))

		cartGroup := api.Group("/cart")
		{
			cartGroup.GET("", cartcontroller.GetCart(cartStore))
			cartGroup.POST("/items", cartcontroller.AddCartItem(db, cartStore))
			cartGroup.PUT("/items/:productID", cartcontroller.SetCartItemQuantity(cartStore))
			cartGroup.DELETE("/items/:productID", cartcontroller.RemoveCartItem(cartStore))
			cartGroup.DELETE("", cartcontroller.ClearCart(cartStore))
		}
	}
}

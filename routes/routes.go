package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartcontroller "github.com/Digeee/ZENCAFE/controllers/cart"
)

// SetupRoutes is the single entry point that wires up the public, user
// and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cartStore *cartcontroller.Store) {
	// Public storefront routes (no middleware)
	SetupPublicRoutes(r, db, cartStore)

	// Customer routes (JWT-protected)
	SetupOrderRoutes(r, db)

	// Admin routes (JWT + admin flag)
	SetupAdminRoutes(r, db)
}

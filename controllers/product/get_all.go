package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Digeee/ZENCAFE/models"
)

// GET /api/products?category=&search=&featured=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categorySlug := c.Query("category")
		search := c.Query("search")
		featured := c.Query("featured")

		query := db.Model(&models.Product{})

		if categorySlug != "" {
			query = query.
				Joins("JOIN categories ON categories.id = products.category_id").
				Where("categories.slug = ?", categorySlug)
		}

		if search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where(
				"LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ?",
				likePattern, likePattern,
			)
		}

		if featured == "true" {
			query = query.Where("products.featured = ?", true)
		}

		var products []models.Product
		if err := query.
			Order("products.featured DESC").
			Order("products.created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, products)
	}
}

package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Digeee/ZENCAFE/models"
)

type UpdateProductRequest struct {
	CategoryID         *string `json:"categoryId"`
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	Price              *string `json:"price"`
	ImageURL           *string `json:"imageUrl"`
	Origin             *string `json:"origin"`
	BrewingSuggestions *string `json:"brewingSuggestions"`
	InStock            *bool   `json:"inStock"`
	Featured           *bool   `json:"featured"`
}

// PUT /api/admin/products/:id
//
// Renaming regenerates the slug from the new name.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if req.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, "id = ?", *req.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
			updates["category_id"] = *req.CategoryID
		}
		if req.Name != nil {
			updates["name"] = *req.Name
			updates["slug"] = models.Slugify(*req.Name)
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Price != nil {
			if !models.ValidPrice(*req.Price) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a valid decimal"})
				return
			}
			updates["price"] = *req.Price
		}
		if req.ImageURL != nil {
			updates["image_url"] = *req.ImageURL
		}
		if req.Origin != nil {
			updates["origin"] = *req.Origin
		}
		if req.BrewingSuggestions != nil {
			updates["brewing_suggestions"] = *req.BrewingSuggestions
		}
		if req.InStock != nil {
			updates["in_stock"] = *req.InStock
		}
		if req.Featured != nil {
			updates["featured"] = *req.Featured
		}

		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
				return
			}
		}

		c.JSON(http.StatusOK, product)
	}
}

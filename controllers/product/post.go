package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Digeee/ZENCAFE/models"
)

type CreateProductRequest struct {
	CategoryID         string `json:"categoryId" binding:"required"`
	Name               string `json:"name" binding:"required"`
	Description        string `json:"description" binding:"required"`
	Price              string `json:"price" binding:"required"`
	ImageURL           string `json:"imageUrl" binding:"required"`
	Origin             string `json:"origin"`
	BrewingSuggestions string `json:"brewingSuggestions"`
	InStock            *bool  `json:"inStock"`
	Featured           bool   `json:"featured"`
}

// POST /api/admin/products
//
// The slug is derived from the name. Collisions are not checked; the
// unique index surfaces them as an insert failure.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !models.ValidPrice(req.Price) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a valid decimal"})
			return
		}

		var category models.Category
		if err := db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate category"})
			}
			return
		}

		inStock := true
		if req.InStock != nil {
			inStock = *req.InStock
		}

		product := models.Product{
			CategoryID:         req.CategoryID,
			Name:               req.Name,
			Slug:               models.Slugify(req.Name),
			Description:        req.Description,
			Price:              req.Price,
			ImageURL:           req.ImageURL,
			Origin:             req.Origin,
			BrewingSuggestions: req.BrewingSuggestions,
			InStock:            inStock,
			Featured:           req.Featured,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}

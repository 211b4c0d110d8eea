package cartcontroller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Digeee/ZENCAFE/models"
)

// Carts live in Redis as the JSON form of models.Cart, one blob per
// session under a fixed key prefix. They survive reloads but are not
// shared across devices.
const (
	cartKeyPrefix = "zencafe_cart:"
	cartTTL       = 30 * 24 * time.Hour
)

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Load fetches the cart for a session. A missing key or corrupt payload
// degrades to an empty cart.
func (s *Store) Load(ctx context.Context, cartID string) models.Cart {
	data, err := s.rdb.Get(ctx, cartKeyPrefix+cartID).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("❌ Failed to load cart %s: %v", cartID, err)
		}
		return models.Cart{}
	}
	return models.DecodeCart(data)
}

func (s *Store) Save(ctx context.Context, cartID string, cart models.Cart) error {
	data, err := cart.Encode()
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, cartKeyPrefix+cartID, data, cartTTL).Err()
}

func (s *Store) Delete(ctx context.Context, cartID string) error {
	return s.rdb.Del(ctx, cartKeyPrefix+cartID).Err()
}

// cartID returns the session's cart id, issuing a fresh one when the
// client has none yet. The id is echoed on every response.
func cartID(c *gin.Context) string {
	id := c.GetHeader("X-Cart-ID")
	if id == "" {
		id = uuid.NewString()
	}
	c.Header("X-Cart-ID", id)
	return id
}

func cartResponse(id string, cart models.Cart) gin.H {
	items := cart.Items
	if items == nil {
		items = []models.CartItem{}
	}
	return gin.H{
		"cartId":    id,
		"items":     items,
		"total":     cart.Total().StringFixed(2),
		"itemCount": cart.ItemCount(),
	}
}

// GET /api/cart
func GetCart(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := cartID(c)
		cart := store.Load(c.Request.Context(), id)
		c.JSON(http.StatusOK, cartResponse(id, cart))
	}
}

type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// POST /api/cart/items
func AddCartItem(db *gorm.DB, store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if req.Quantity < 1 {
			req.Quantity = 1
		}

		var product models.Product
		if err := db.First(&product, "id = ?", req.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}
		if !product.InStock {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is out of stock"})
			return
		}

		id := cartID(c)
		cart := store.Load(c.Request.Context(), id)
		cart.Add(product, req.Quantity)

		if err := store.Save(c.Request.Context(), id, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(id, cart))
	}
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// PUT /api/cart/items/:productID
//
// A quantity of zero or less removes the line.
func SetCartItemQuantity(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SetQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		id := cartID(c)
		cart := store.Load(c.Request.Context(), id)
		cart.SetQuantity(c.Param("productID"), req.Quantity)

		if err := store.Save(c.Request.Context(), id, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(id, cart))
	}
}

// DELETE /api/cart/items/:productID
func RemoveCartItem(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := cartID(c)
		cart := store.Load(c.Request.Context(), id)
		cart.Remove(c.Param("productID"))

		if err := store.Save(c.Request.Context(), id, cart); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(id, cart))
	}
}

// DELETE /api/cart
//
// Used by the client after a successful checkout.
func ClearCart(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := cartID(c)
		if err := store.Delete(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, cartResponse(id, models.Cart{}))
	}
}

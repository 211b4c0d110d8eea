package ordercontroller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Digeee/ZENCAFE/auth"
	"github.com/Digeee/ZENCAFE/models"
	"github.com/Digeee/ZENCAFE/notifier"
)

// -------- Request Structs --------

type OrderItemInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
	Price     string `json:"price" binding:"required"`
}

type PlaceOrderRequest struct {
	CustomerName    string           `json:"customerName"`
	CustomerEmail   string           `json:"customerEmail"`
	CustomerPhone   string           `json:"customerPhone"`
	DeliveryAddress string           `json:"deliveryAddress"`
	Notes           string           `json:"notes"`
	TotalAmount     string           `json:"totalAmount"`
	Items           []OrderItemInput `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// validationError marks failures the client caused; handlers map it to 400.
type validationError struct{ msg string }

func (e validationError) Error() string { return e.msg }

func invalid(format string, args ...interface{}) error {
	return validationError{msg: fmt.Sprintf(format, args...)}
}

// -------- Core Logic --------

// PlaceOrder turns a submitted cart and delivery form into a persisted
// order. Every line is re-priced from the live catalog: a submitted price
// or total that disagrees with the catalog rejects the whole order, as
// does a product id that no longer resolves. The order row, its items and
// the admin broadcast notification are written in one transaction.
func PlaceOrder(db *gorm.DB, userID string, req PlaceOrderRequest) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, invalid("order must have at least one item")
	}
	if req.CustomerName == "" || req.CustomerEmail == "" || req.DeliveryAddress == "" {
		return models.Order{}, invalid("customerName, customerEmail and deliveryAddress are required")
	}
	if !auth.ValidEmail(req.CustomerEmail) {
		return models.Order{}, invalid("customerEmail is not a valid email address")
	}
	if !models.ValidPrice(req.TotalAmount) {
		return models.Order{}, invalid("totalAmount must be a valid decimal")
	}

	submittedTotal, err := decimal.NewFromString(req.TotalAmount)
	if err != nil {
		return models.Order{}, invalid("totalAmount must be a valid decimal")
	}

	var order models.Order

	err = db.Transaction(func(tx *gorm.DB) error {
		total := decimal.Zero
		var orderItems []models.OrderItem

		for _, item := range req.Items {
			if item.Quantity < 1 {
				return invalid("quantity must be at least 1")
			}

			var product models.Product
			if err := tx.First(&product, "id = ?", item.ProductID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return invalid("product %s is no longer available", item.ProductID)
				}
				return err
			}

			catalogPrice, err := decimal.NewFromString(product.Price)
			if err != nil {
				return fmt.Errorf("invalid catalog price for product %s: %w", product.ID, err)
			}
			submittedPrice, err := decimal.NewFromString(item.Price)
			if err != nil || !submittedPrice.Equal(catalogPrice) {
				return invalid("price for %s does not match the catalog", product.Name)
			}

			total = total.Add(catalogPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))

			orderItems = append(orderItems, models.OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name, // snapshot for history
				Quantity:    item.Quantity,
				Price:       product.Price, // frozen at order time
			})
		}

		if !total.Equal(submittedTotal) {
			return invalid("totalAmount %s does not match the recomputed total %s",
				req.TotalAmount, total.StringFixed(2))
		}

		order = models.Order{
			UserID:          userID,
			Status:          models.OrderStatusPending,
			TotalAmount:     total.StringFixed(2),
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			DeliveryAddress: req.DeliveryAddress,
			Notes:           req.Notes,
			Items:           orderItems,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		notification := notifier.OrderNotification(order)
		return tx.Create(&notification).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	return order, nil
}

// -------- Handlers --------

// POST /api/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := PlaceOrder(db, userIDVal.(string), req)
		if err != nil {
			var verr validationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		// Email and websocket fanout happen outside the transaction and
		// must not fail the request.
		notifier.OrderPlaced(order)

		// Items are fetched separately by the reader endpoints.
		order.Items = nil
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userIDVal).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/items
//
// Batch form: one round trip returns the items of every order the caller
// owns, keyed by order id.
func GetUserOrderItemsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orderIDs []string
		if err := db.Model(&models.Order{}).
			Where("user_id = ?", userIDVal).
			Pluck("id", &orderIDs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		itemsByOrder := make(map[string][]models.OrderItem, len(orderIDs))
		if len(orderIDs) > 0 {
			var items []models.OrderItem
			if err := db.Where("order_id IN ?", orderIDs).Find(&items).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order items"})
				return
			}
			for _, item := range items {
				itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
			}
		}

		c.JSON(http.StatusOK, itemsByOrder)
	}
}

// GET /api/orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}

		if order.UserID != userIDVal.(string) {
			// Admins may inspect any order; everyone else sees a 404 so
			// order ids are not probeable.
			var caller models.User
			if err := db.First(&caller, "id = ?", userIDVal).Error; err != nil || !caller.IsAdmin {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /api/admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// PATCH /api/admin/orders/:orderID/status
//
// Transitions are a free matrix: any status may follow any other.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		newStatus, err := models.MapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

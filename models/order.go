package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // placed, awaiting the counter
	OrderStatusProcessing OrderStatus = "processing" // being prepared
	OrderStatusCompleted  OrderStatus = "completed"  // handed over / delivered
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// MapOrderStatus converts a client-supplied string to an OrderStatus.
// Any status may follow any other; only membership is checked.
func MapOrderStatus(status string) (OrderStatus, error) {
	switch OrderStatus(strings.ToLower(status)) {
	case OrderStatusPending:
		return OrderStatusPending, nil
	case OrderStatusProcessing:
		return OrderStatusProcessing, nil
	case OrderStatusCompleted:
		return OrderStatusCompleted, nil
	case OrderStatusCancelled:
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

type Order struct {
	ID              string      `gorm:"primaryKey" json:"id"`
	UserID          string      `gorm:"index;not null" json:"userId"`
	Status          OrderStatus `gorm:"type:VARCHAR(50);default:'pending';not null;index" json:"status"`
	TotalAmount     string      `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	CustomerName    string      `gorm:"size:200;not null" json:"customerName"`
	CustomerEmail   string      `gorm:"size:200;not null" json:"customerEmail"`
	CustomerPhone   string      `gorm:"size:50" json:"customerPhone"`
	DeliveryAddress string      `gorm:"not null" json:"deliveryAddress"`
	Notes           string      `json:"notes"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt       time.Time   `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// OrderItem is one line of an order. ProductName and Price are snapshots
// taken at order time so history survives catalog renames and price changes.
type OrderItem struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	OrderID     string    `gorm:"index;not null" json:"orderId"`
	ProductID   string    `gorm:"index;not null" json:"productId"`
	ProductName string    `gorm:"size:200;not null" json:"productName"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Price       string    `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == "" {
		oi.ID = uuid.NewString()
	}
	return nil
}

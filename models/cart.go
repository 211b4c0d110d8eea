package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CartItem pairs a product snapshot with a quantity. The snapshot is
// whatever the shopper saw when the line was added; checkout re-prices
// every line against the live catalog.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the shopper's pending selection. It is never persisted as a
// table; the cart controller keeps the JSON form in Redis per session.
type Cart struct {
	Items []CartItem `json:"items"`
}

// DecodeCart parses a stored cart payload, a JSON array of
// {product, quantity} pairs. Corrupt data degrades to an empty cart
// rather than failing the request.
func DecodeCart(data []byte) Cart {
	if len(data) == 0 {
		return Cart{}
	}
	var items []CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return Cart{}
	}
	return Cart{Items: items}
}

func (c *Cart) Encode() ([]byte, error) {
	if c.Items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.Items)
}

// Add appends a product, or increments the quantity when a line for the
// same product already exists.
func (c *Cart) Add(p Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == p.ID {
			c.Items[i].Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: qty})
}

// SetQuantity overwrites a line's quantity. A quantity of zero or less
// removes the line.
func (c *Cart) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = qty
			return
		}
	}
}

// Remove deletes a line if present, no-op otherwise.
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Total sums unit price times quantity over all lines. Lines whose
// snapshot carries an unparseable price contribute nothing.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		price, err := decimal.NewFromString(item.Product.Price)
		if err != nil {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// ItemCount sums quantities across lines, used for the cart badge.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

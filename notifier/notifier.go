// Package notifier fans out side effects when domain events occur: a
// broadcast notification row for the admin panel, an email to the shop
// owner, and a websocket push. Email and websocket failures are logged
// and never propagated; the triggering request has already succeeded.
package notifier

import (
	"fmt"

	"github.com/Digeee/ZENCAFE/models"
)

// OrderNotification builds the broadcast row describing a new order.
// The caller inserts it inside the checkout transaction.
func OrderNotification(order models.Order) models.Notification {
	return models.Notification{
		UserID:   nil, // broadcast to all admins
		Type:     models.NotificationTypeOrderPlaced,
		Title:    "New Order Placed",
		Message:  fmt.Sprintf("New order #%s placed by %s for LKR %s", shortID(order.ID), order.CustomerName, order.TotalAmount),
		EntityID: order.ID,
	}
}

// MessageNotification builds the broadcast row for a contact message.
func MessageNotification(msg models.ContactMessage) models.Notification {
	return models.Notification{
		UserID:   nil,
		Type:     models.NotificationTypeContactMessage,
		Title:    "New Contact Message",
		Message:  fmt.Sprintf("New message from %s (%s)", msg.Name, msg.Email),
		EntityID: msg.ID,
	}
}

// OrderPlaced runs the non-transactional side effects after checkout
// committed: admin email and websocket fanout.
func OrderPlaced(order models.Order) {
	sendEmail(
		fmt.Sprintf("New Order #%s", shortID(order.ID)),
		orderEmailBody(order.ID, order.CustomerName, order.TotalAmount),
	)
	BroadcastOrder(order)
}

// ContactReceived mails the shop owner about a new contact message.
func ContactReceived(msg models.ContactMessage) {
	sendEmail(
		fmt.Sprintf("New Contact Message from %s", msg.Name),
		contactEmailBody(msg.Name, msg.Email, msg.Message),
	)
}

package notifier

import (
	"fmt"
	"log"
	"os"
	"strconv"

	gomail "gopkg.in/gomail.v2"
)

func smtpDialer() *gomail.Dialer {
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}
	return gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("SMTP_USERNAME"),
		os.Getenv("SMTP_PASSWORD"),
	)
}

// sendEmail delivers one HTML mail to the configured admin address.
// Failures are logged and swallowed: notification delivery must never
// fail the request that triggered it.
func sendEmail(subject, html string) {
	to := os.Getenv("ADMIN_NOTIFY_EMAIL")
	if to == "" || os.Getenv("SMTP_HOST") == "" {
		log.Printf("📭 Email skipped (SMTP not configured): %s", subject)
		return
	}

	m := gomail.NewMessage()
	from := os.Getenv("SMTP_USERNAME")
	if from == "" {
		from = to
	}
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	if err := smtpDialer().DialAndSend(m); err != nil {
		log.Printf("❌ Failed to send email %q: %v", subject, err)
		return
	}
	log.Printf("📧 Email sent: %s", subject)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func orderEmailBody(orderID, customerName, totalAmount string) string {
	return fmt.Sprintf(`
      <h1>New Order Received</h1>
      <p>Order ID: %s</p>
      <p>Customer: %s</p>
      <p>Total: %s</p>
      <p>View order details in the admin panel.</p>
    `, orderID, customerName, totalAmount)
}

func contactEmailBody(name, email, message string) string {
	return fmt.Sprintf(`
      <h1>New Contact Message</h1>
      <p>From: %s (%s)</p>
      <p>Message: %s</p>
    `, name, email, message)
}

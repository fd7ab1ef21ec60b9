package mailer

import (
	"fmt"
	"log"
	"net/smtp"

	"artstore-backend/config"
)

// Notify sends a plain-text mail to the operator inbox. Callers run it in
// a goroutine: delivery failures are logged and never reach the client.
func Notify(subject string, body string) error {
	if config.SMTP_HOST == "" || config.NOTIFY_EMAIL == "" {
		return nil
	}

	from := config.SMTP_FROM
	to := config.NOTIFY_EMAIL
	auth := smtp.PlainAuth("", from, config.SMTP_PASSWORD, config.SMTP_HOST)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(config.SMTP_HOST+":"+config.SMTP_PORT, auth, from, []string{to}, message)
	if err != nil {
		log.Println("❌ SMTP error:", err)
	}
	return err
}

func NotifyNewOrder(orderID uint, orderType, customerName, customerEmail string) {
	subject := fmt.Sprintf("New %s order #%d", orderType, orderID)
	body := fmt.Sprintf("A new %s order was placed.\n\nOrder ID: %d\nCustomer: %s <%s>\n",
		orderType, orderID, customerName, customerEmail)
	_ = Notify(subject, body)
}

func NotifyNewFeedback(feedbackID uint, rating int, customerName string) {
	subject := fmt.Sprintf("New feedback #%d (%d/5)", feedbackID, rating)
	body := fmt.Sprintf("New customer feedback.\n\nFeedback ID: %d\nRating: %d/5\nFrom: %s\n",
		feedbackID, rating, customerName)
	_ = Notify(subject, body)
}

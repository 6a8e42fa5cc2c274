package consumer

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/hoangson03112/VietXanh/internal/contact"
	"github.com/hoangson03112/VietXanh/internal/email"
)

func handleContactSubmitted(ctx context.Context, payload []byte, emailService email.Service) error {
	var data contact.OrderSubmittedPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	log.Printf("[CONSUMER] New order from %s (%d items)", data.CustomerName, data.ItemCount)

	// sales inbox first, fall back to the customer's own address
	to := os.Getenv("ORDER_NOTIFY_EMAIL")
	if to == "" {
		to = data.Email
	}

	if err := emailService.SendOrderNotification(ctx, to, data.CustomerName, data.ItemCount, data.Total); err != nil {
		return err
	}

	log.Printf("[CONSUMER] Order notification sent for contact %s", data.ContactID)
	return nil
}

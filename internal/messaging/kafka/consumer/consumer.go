package consumer

import (
	"context"
	"log"

	"github.com/hoangson03112/VietXanh/internal/contact"
	"github.com/hoangson03112/VietXanh/internal/email"

	"github.com/segmentio/kafka-go"
)

func ConsumeMessages(ctx context.Context, reader *kafka.Reader, emailService email.Service) {
	log.Println("[CONSUMER] Started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] Error fetching message: %v", err)
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		if eventType == contact.EventContactSubmitted {
			if err := handleContactSubmitted(ctx, msg.Value, emailService); err != nil {
				log.Printf("[CONSUMER] Error handling %s: %v", eventType, err)
			} else {
				if err := reader.CommitMessages(ctx, msg); err != nil {
					log.Printf("[CONSUMER] Error committing message: %v", err)
				}
			}
		} else {
			// Skip unknown event types
			_ = reader.CommitMessages(ctx, msg)
		}
	}
}

package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hoangson03112/VietXanh/internal/email"
	"github.com/hoangson03112/VietXanh/internal/messaging/kafka/consumer"

	"github.com/segmentio/kafka-go"
)

func RunConsumer() error {
	log.Println("[CONSUMER] Starting notification consumer...")

	emailService, err := email.NewResendServiceFromEnv()
	if err != nil {
		emailService = email.NewNoopService()
		log.Println("[CONSUMER] RESEND_API_KEY not set, notifications are logged only")
	}

	// Setup Kafka reader
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "contact.events",
		GroupID: "notification-consumer-group",
	})
	defer reader.Close()
	log.Println("[CONSUMER] Kafka reader initialized")

	// Start consuming
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, emailService)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")

	return nil
}

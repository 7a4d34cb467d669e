package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/streadway/amqp"

	"shop/internal/config"
	"shop/internal/database"
	"shop/internal/events"
	"shop/internal/seed"
	"shop/internal/server"
	"shop/pkg/kafka"
	"shop/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server gracefully stopped")
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	// --- Database ---
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()
	if err := database.Migrate(db); err != nil {
		return err
	}
	log.Printf("Connected to %s database and migrated schema", cfg.Database.Driver)

	// --- Order events ---
	pub, err := newPublisher(cfg.Events)
	if err != nil {
		return err
	}
	emitter := events.NewEmitter(pub)
	defer func() {
		if err := emitter.Close(); err != nil {
			log.Printf("Error closing event publisher: %v", err)
		}
	}()

	svc := server.NewServices(db, cfg.JWT, emitter)

	if cfg.SeedData {
		seeder := &seed.Seeder{Brands: svc.Brands, Products: svc.Products, Images: svc.Images, Users: svc.Users}
		if err := seeder.Run(ctx); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	app := server.New(cfg, db, svc)

	// --- Start HTTP Server ---
	listenErr := make(chan error, 1)
	go func() {
		log.Printf("Starting server on port %s", cfg.AppPort)
		listenErr <- app.Listen(cfg.AppPort)
	}()

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-listenErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	return nil
}

// newPublisher connects the configured broker. A nil publisher means events
// are discarded.
func newPublisher(cfg config.Events) (events.Publisher, error) {
	switch cfg.Backend {
	case config.EventsRabbitMQ:
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitQueue})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		if err := client.Consume(auditOrderEvent); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
		return client, nil
	case config.EventsKafka:
		producer, err := kafka.NewProducer(kafka.Config{Brokers: cfg.KafkaBrokers, Topic: cfg.KafkaTopic})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
		}
		log.Printf("Publishing order events to Kafka topic %s", cfg.KafkaTopic)
		return producer, nil
	}
	log.Println("Order events disabled")
	return nil, nil
}

// auditOrderEvent logs every order event read back from the queue. Bodies
// that are not order events are rejected.
func auditOrderEvent(msg amqp.Delivery) error {
	evt, err := events.Decode(msg.Body)
	if err != nil {
		return err
	}
	log.Printf("Order event %s (Tag: %d): order %s status %s amount %s",
		evt.Type, msg.DeliveryTag, evt.OrderCode, evt.Status, evt.Amount.StringFixed(2))
	return nil
}

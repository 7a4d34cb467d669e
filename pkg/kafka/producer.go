package kafka

import (
	"context"
	"fmt"
	"log"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

const writeTimeout = 5 * time.Second

// Config holds the brokers and the topic events are written to.
type Config struct {
	Brokers []string
	Topic   string
}

// Producer writes events to a single Kafka topic, keyed by event type.
type Producer struct {
	writer *kafkago.Writer
}

func NewProducer(cfg Config) (*Producer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka: no brokers configured")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka: topic is required")
	}
	return &Producer{
		writer: &kafkago.Writer{
			Addr:                   kafkago.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafkago.Hash{},
			RequiredAcks:           kafkago.RequireOne,
			WriteTimeout:           writeTimeout,
			AllowAutoTopicCreation: true,
		},
	}, nil
}

func (p *Producer) Publish(ctx context.Context, key string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	err := p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(key),
		Value: body,
		Time:  time.Now(),
	})
	if err != nil {
		return fmt.Errorf("kafka: write to %s failed: %w", p.writer.Topic, err)
	}
	log.Printf("Sent %s event to kafka topic %s", key, p.writer.Topic)
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

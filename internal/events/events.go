// Package events publishes order lifecycle notifications to a message broker.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"shop/internal/models"

	"github.com/shopspring/decimal"
)

const (
	OrderCreated       = "order.created"
	OrderStatusChanged = "order.status_changed"
	OrderCancelled     = "order.cancelled"
)

// Publisher delivers an encoded event under a routing key.
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte) error
	Close() error
}

// Event is the JSON body sent for every order change.
type Event struct {
	Type           string          `json:"type"`
	OrderID        uint            `json:"orderId"`
	OrderCode      string          `json:"orderCode"`
	UserID         uint            `json:"userId"`
	Status         string          `json:"status"`
	PreviousStatus string          `json:"previousStatus,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	OccurredAt     time.Time       `json:"occurredAt"`
}

func NewOrderEvent(eventType string, order *models.Order, previous models.OrderStatus) Event {
	return Event{
		Type:           eventType,
		OrderID:        order.OrderID,
		OrderCode:      order.OrderCode,
		UserID:         order.UserID,
		Status:         order.OrderStatus.DisplayName(),
		PreviousStatus: previous.DisplayName(),
		Amount:         order.OrderAmount,
		OccurredAt:     time.Now().UTC(),
	}
}

func Decode(body []byte) (Event, error) {
	var evt Event
	if err := json.Unmarshal(body, &evt); err != nil {
		return Event{}, fmt.Errorf("failed to decode order event: %w", err)
	}
	return evt, nil
}

// Emitter sends events without ever failing the caller.
type Emitter struct {
	pub Publisher
}

// NewEmitter wraps pub; a nil pub discards every event.
func NewEmitter(pub Publisher) *Emitter {
	if pub == nil {
		pub = Noop{}
	}
	return &Emitter{pub: pub}
}

func (e *Emitter) Emit(ctx context.Context, evt Event) {
	body, err := json.Marshal(evt)
	if err != nil {
		log.Printf("Failed to marshal %s event for order %d: %v", evt.Type, evt.OrderID, err)
		return
	}
	if err := e.pub.Publish(ctx, evt.Type, body); err != nil {
		log.Printf("Failed to publish %s event for order %d: %v", evt.Type, evt.OrderID, err)
	}
}

func (e *Emitter) Close() error {
	return e.pub.Close()
}

// Noop drops every event.
type Noop struct{}

func (Noop) Publish(context.Context, string, []byte) error { return nil }
func (Noop) Close() error                                 { return nil }

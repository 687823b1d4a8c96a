package events

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	CustomerDeleted     = "customer_deleted"
	ProductCreated      = "product_created"
	ProductUpdated      = "product_updated"
	ProductDeleted      = "product_deleted"
	ProductStockUpdated = "product_stock_updated"
	OrderPlaced         = "order_placed"
	OrderUpdated        = "order_updated"
	OrderCancelled      = "order_cancelled"
	OrderDeleted        = "order_deleted"
)

type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	EntityID   uint      `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data,omitempty"`
}

func New(typ string, entityID uint, data any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       typ,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// Key keeps every event of one entity on the same partition.
func (e Event) Key() string {
	return e.Type[:entityPrefixLen(e.Type)] + ":" + strconv.FormatUint(uint64(e.EntityID), 10)
}

func entityPrefixLen(typ string) int {
	for i := range typ {
		if typ[i] == '_' {
			return i
		}
	}
	return len(typ)
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

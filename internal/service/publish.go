package service

import (
	"context"
	"time"

	"github.com/Skotchmaster/ecommerce_api/internal/events"
	"github.com/Skotchmaster/ecommerce_api/internal/logging"
)

const publishTimeout = 5 * time.Second

// publish is best-effort: a failed event never fails the request that caused it.
func publish(ctx context.Context, p events.Publisher, ev events.Event) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := p.Publish(ctx, ev); err != nil {
		logging.FromContext(ctx).Error("publish_event_error", "type", ev.Type, "entity_id", ev.EntityID, "error", err)
	}
}

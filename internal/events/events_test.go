package events

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestNew(t *testing.T) {
	t.Parallel()

	ev := New(OrderPlaced, 42, map[string]any{"customer_id": 7})

	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, OrderPlaced, ev.Type)
	assert.EqualValues(t, 42, ev.EntityID)
	assert.False(t, ev.OccurredAt.IsZero())

	raw, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.Equal(t, "order_placed", gjson.GetBytes(raw, "type").String())
	assert.EqualValues(t, 7, gjson.GetBytes(raw, "data.customer_id").Int())
}

func TestEvent_Key(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "order:3", New(OrderCancelled, 3, nil).Key())
	assert.Equal(t, "product:12", New(ProductStockUpdated, 12, nil).Key())
	assert.Equal(t, "customer:1", New(CustomerDeleted, 1, nil).Key())
}

func TestNewProducer_Validation(t *testing.T) {
	t.Parallel()

	_, err := NewProducer(nil, "shop_events")
	require.Error(t, err)

	_, err = NewProducer([]string{"localhost:9092"}, "")
	require.Error(t, err)

	p, err := NewProducer([]string{"localhost:9092"}, "shop_events")
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestNop(t *testing.T) {
	t.Parallel()

	var p Publisher = Nop{}
	require.NoError(t, p.Publish(context.Background(), New(OrderDeleted, 1, nil)))
	require.NoError(t, p.Close())
}

package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/GoArmGo/BlogApp/internal/logger"
	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAck struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (f *fakeAck) Ack(bool) error {
	f.acked = true
	return nil
}

func (f *fakeAck) Nack(_ bool, requeue bool) error {
	f.nacked = true
	f.requeue = requeue
	return nil
}

func TestProcessDelivery(t *testing.T) {
	event := payloads.NewResourceEvent(payloads.ResourceArticle, payloads.ActionCreated, 5)
	body, err := json.Marshal(event)
	require.NoError(t, err)

	t.Run("ack on success", func(t *testing.T) {
		ack := &fakeAck{}
		var got payloads.ResourceEvent
		processDelivery(context.Background(), logger.Discard(), body, ack, func(_ context.Context, e payloads.ResourceEvent) error {
			got = e
			return nil
		})
		assert.True(t, ack.acked)
		assert.False(t, ack.nacked)
		assert.Equal(t, int64(5), got.ID)
		assert.Equal(t, payloads.ActionCreated, got.Action)
	})

	t.Run("requeue on handler error", func(t *testing.T) {
		ack := &fakeAck{}
		processDelivery(context.Background(), logger.Discard(), body, ack, func(context.Context, payloads.ResourceEvent) error {
			return errors.New("audit sink unavailable")
		})
		assert.True(t, ack.nacked)
		assert.True(t, ack.requeue)
		assert.False(t, ack.acked)
	})

	t.Run("drop malformed message", func(t *testing.T) {
		ack := &fakeAck{}
		called := false
		processDelivery(context.Background(), logger.Discard(), []byte("{not json"), ack, func(context.Context, payloads.ResourceEvent) error {
			called = true
			return nil
		})
		assert.False(t, called)
		assert.True(t, ack.nacked)
		assert.False(t, ack.requeue)
	})
}

package consumer_test

import (
	"context"
	"errors"
	"testing"

	"go-solicitudes/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeInvalidator struct {
	InvalidateBreakdownFn func(ctx context.Context, id string) error
	calls                 []string
}

func (f *fakeInvalidator) InvalidateBreakdown(ctx context.Context, id string) error {
	f.calls = append(f.calls, id)
	return f.InvalidateBreakdownFn(ctx, id)
}

type fakeReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

const approvedEvent = `{"event_type":"solicitud.status_changed","solicitud_id":"sol-1","from_status":"PENDIENTE","to_status":"APROBADO","actor_id":"u-9","occurred_at":"2026-05-04T10:00:00Z"}`

func TestHandleSolicitudStatusChanged(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	t.Run("valid transition invalidates cache", func(t *testing.T) {
		inv := &fakeInvalidator{InvalidateBreakdownFn: func(ctx context.Context, id string) error { return nil }}

		err := consumer.HandleSolicitudStatusChanged(ctx, []byte(approvedEvent), inv, log)

		assert.NoError(t, err)
		assert.Equal(t, []string{"sol-1"}, inv.calls)
	})

	t.Run("unexpected transition still invalidates", func(t *testing.T) {
		inv := &fakeInvalidator{InvalidateBreakdownFn: func(ctx context.Context, id string) error { return nil }}
		value := `{"solicitud_id":"sol-2","from_status":"RECHAZADO","to_status":"PENDIENTE"}`

		err := consumer.HandleSolicitudStatusChanged(ctx, []byte(value), inv, log)

		assert.NoError(t, err)
		assert.Equal(t, []string{"sol-2"}, inv.calls)
	})

	t.Run("garbage payload", func(t *testing.T) {
		inv := &fakeInvalidator{}

		err := consumer.HandleSolicitudStatusChanged(ctx, []byte("not-json"), inv, log)

		assert.ErrorIs(t, err, consumer.ErrUndecodable)
		assert.Empty(t, inv.calls)
	})

	t.Run("missing solicitud id", func(t *testing.T) {
		inv := &fakeInvalidator{}

		err := consumer.HandleSolicitudStatusChanged(ctx, []byte(`{"to_status":"APROBADO"}`), inv, log)

		assert.ErrorIs(t, err, consumer.ErrUndecodable)
		assert.Empty(t, inv.calls)
	})

	t.Run("transient cache failure is retried", func(t *testing.T) {
		attempts := 0
		inv := &fakeInvalidator{InvalidateBreakdownFn: func(ctx context.Context, id string) error {
			attempts++
			if attempts < 2 {
				return errors.New("connection reset")
			}
			return nil
		}}

		err := consumer.HandleSolicitudStatusChanged(ctx, []byte(approvedEvent), inv, log)

		assert.NoError(t, err)
		assert.Equal(t, 2, attempts)
	})
}

func TestConsumeSolicitudStatusChanged(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			{Offset: 0, Value: []byte(approvedEvent)},
			{Offset: 1, Value: []byte("{broken")},
			{Offset: 2, Value: []byte(`{"solicitud_id":"sol-down","from_status":"PENDIENTE","to_status":"OBSERVADO"}`)},
		},
	}
	inv := &fakeInvalidator{InvalidateBreakdownFn: func(ctx context.Context, id string) error {
		if id == "sol-down" {
			return errors.New("redis down")
		}
		return nil
	}}

	consumer.ConsumeSolicitudStatusChanged(ctx, reader, inv, zap.NewNop())

	committed := make([]int64, 0, len(reader.committed))
	for _, m := range reader.committed {
		committed = append(committed, m.Offset)
	}
	assert.Equal(t, []int64{0, 1}, committed)
	assert.Equal(t, []string{"sol-1", "sol-down", "sol-down", "sol-down"}, inv.calls)
}

package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-solicitudes/internal/events"
	"go-solicitudes/internal/solicitud"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ErrUndecodable marks messages that can never be processed. They are
// committed so they do not block the partition.
var ErrUndecodable = errors.New("undecodable status event")

const (
	invalidateAttempts = 3
	invalidateBackoff  = 200 * time.Millisecond
)

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type BreakdownInvalidator interface {
	InvalidateBreakdown(ctx context.Context, id string) error
}

func ConsumeSolicitudStatusChanged(
	ctx context.Context,
	reader MessageReader,
	invalidator BreakdownInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.solicitud_status")
	log.Info("solicitud status consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("solicitud status consumer stopped")
				return
			}
			log.Error("fetch solicitud status message failed", zap.Error(err))
			continue
		}

		err = HandleSolicitudStatusChanged(ctx, msg.Value, invalidator, log)
		if err != nil && !errors.Is(err, ErrUndecodable) {
			log.Error("invalidate breakdown failed, leaving message uncommitted",
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit solicitud status message failed", zap.Error(err))
			continue
		}
	}
}

// HandleSolicitudStatusChanged drops the cached breakdown of the request the
// event refers to. Transitions the lifecycle does not allow are logged but
// still invalidate, since the backend state has changed either way.
func HandleSolicitudStatusChanged(
	ctx context.Context,
	value []byte,
	invalidator BreakdownInvalidator,
	log *zap.Logger,
) error {
	var event events.SolicitudStatusChangedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		log.Error("decode solicitud status event failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	event.SolicitudID = strings.TrimSpace(event.SolicitudID)
	if event.SolicitudID == "" {
		log.Error("solicitud status event without solicitud_id", zap.String("event_type", event.EventType))
		return fmt.Errorf("%w: missing solicitud_id", ErrUndecodable)
	}

	fields := []zap.Field{
		zap.String("solicitud_id", event.SolicitudID),
		zap.String("from_status", event.FromStatus),
		zap.String("to_status", event.ToStatus),
		zap.String("actor_id", event.ActorID),
	}

	from, fromErr := solicitud.ParseStatus(event.FromStatus)
	to, toErr := solicitud.ParseStatus(event.ToStatus)
	switch {
	case fromErr != nil || toErr != nil:
		log.Warn("solicitud status event has unknown status", fields...)
	case !solicitud.IsAllowedTransition(from, to):
		log.Warn("solicitud status event has unexpected transition", fields...)
	}

	var err error
	for attempt := 1; attempt <= invalidateAttempts; attempt++ {
		if err = invalidator.InvalidateBreakdown(ctx, event.SolicitudID); err == nil {
			log.Info("breakdown cache invalidated", fields...)
			return nil
		}
		log.Warn("invalidate breakdown attempt failed",
			append(fields, zap.Int("attempt", attempt), zap.Error(err))...,
		)
		if attempt == invalidateAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(invalidateBackoff * time.Duration(attempt)):
		}
	}
	return err
}

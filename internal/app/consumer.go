package app

import (
	"context"

	"go-solicitudes/internal/config"
	"go-solicitudes/internal/events"
	"go-solicitudes/internal/messaging/kafka/consumer"
	"go-solicitudes/internal/shared/connection"
	"go-solicitudes/internal/solicitud"

	"go.uber.org/zap"
)

// RunConsumer keeps the breakdown cache in step with status changes until
// ctx is cancelled.
func RunConsumer(ctx context.Context, cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.ValidateConsumer(); err != nil {
		return err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}
	defer rdb.Close()

	reader, err := connection.ConnectKafkaReaderWithRetry(
		cfg.KafkaBroker,
		events.SolicitudStatusChangedTopic,
		cfg.KafkaGroupID,
		5,
	)
	if err != nil {
		return err
	}
	defer reader.Close()

	// Invalidation never reaches the backend or the catalogs.
	solicitudService := solicitud.NewService(nil, nil, rdb, logger)

	consumer.ConsumeSolicitudStatusChanged(ctx, reader, solicitudService, logger)

	logger.Info("consumer shutting down")
	return nil
}

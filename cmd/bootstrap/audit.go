package bootstrap

import (
	"context"
	"log/slog"

	"badge-promotion-engine/internal/infra/audit"
	"badge-promotion-engine/internal/pkg/clock"
	"badge-promotion-engine/internal/pkg/config"
	"badge-promotion-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var AuditModule = fx.Module("audit",
	fx.Provide(
		NewAuditSink,
	),
)

// NewAuditSink fans events out to every configured sink. With nothing
// configured events go to the structured log.
func NewAuditSink(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (shared.AuditSink, error) {
	var sinks audit.MultiSink

	if cfg.Audit.Kafka.Enabled() {
		kafkaSink, err := audit.NewKafkaSink(cfg.Audit.Kafka, cfg.Audit.BufferSize, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return kafkaSink.Close(ctx)
			},
		})
		sinks = append(sinks, kafkaSink)
		logger.Info("audit streaming to kafka", "topic", cfg.Audit.Kafka.Topic)
	}

	if cfg.Audit.S3.Enabled() {
		archiver, err := audit.NewS3Archiver(context.Background(), cfg.Audit.S3, cfg.Audit.BufferSize, clk, logger)
		if err != nil {
			return nil, err
		}
		scheduler, err := audit.NewFlushScheduler(archiver, cfg.Audit.S3)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				scheduler.Start()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				if err := scheduler.Shutdown(); err != nil {
					logger.Warn("audit scheduler shutdown failed", "error", err.Error())
				}
				// final flush so buffered events are not lost on shutdown
				_, err := archiver.Flush(ctx)
				return err
			},
		})
		sinks = append(sinks, archiver)
		logger.Info("audit archiving to s3", "bucket", cfg.Audit.S3.Bucket, "interval", cfg.Audit.S3.FlushInterval)
	}

	if len(sinks) == 0 {
		return audit.NewLogSink(logger), nil
	}
	return sinks, nil
}

package bootstrap

import (
	"context"
	"log/slog"

	"badge-promotion-engine/internal/pkg/config"
	"badge-promotion-engine/internal/pkg/telemetry"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(SetupTelemetry),
)

// SetupTelemetry installs the tracer provider before the server starts and
// flushes pending spans on shutdown.
func SetupTelemetry(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint != "" {
		logger.Info("tracing enabled", "endpoint", cfg.Telemetry.Endpoint, "service", cfg.Telemetry.ServiceName)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return shutdown(ctx)
		},
	})
	return nil
}

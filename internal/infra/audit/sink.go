package audit

import (
	"context"
	"log/slog"

	"badge-promotion-engine/internal/usecase/shared"
)

// LogSink writes events to the structured log. It is the fallback when no
// external sink is configured.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Record(ctx context.Context, event shared.AuditEvent) {
	s.logger.InfoContext(ctx, "audit event",
		slog.String("event_id", event.ID.String()),
		slog.String("type", string(event.Type)),
		slog.String("promotion_id", event.PromotionID.String()),
		slog.String("actor_id", event.ActorID.String()),
		slog.Time("occurred_at", event.OccurredAt),
		slog.String("trace_id", event.TraceID),
		slog.Any("payload", event.Payload),
	)
}

// MultiSink fans one event out to every sink.
type MultiSink []shared.AuditSink

func (m MultiSink) Record(ctx context.Context, event shared.AuditEvent) {
	for _, s := range m {
		s.Record(ctx, event)
	}
}

var (
	_ shared.AuditSink = (*LogSink)(nil)
	_ shared.AuditSink = MultiSink(nil)
	_ shared.AuditSink = (*KafkaSink)(nil)
	_ shared.AuditSink = (*S3Archiver)(nil)
)

package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"badge-promotion-engine/internal/pkg/config"
	"badge-promotion-engine/internal/pkg/errs"
	"badge-promotion-engine/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink streams events to a topic keyed by promotion id, so one
// promotion's history stays ordered within a partition. Record enqueues onto
// a bounded buffer and returns; a full buffer drops the event with a warning.
type KafkaSink struct {
	writer       messageWriter
	writeTimeout time.Duration
	queue        chan shared.AuditEvent
	logger       *slog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

func NewKafkaSink(cfg config.KafkaConfig, bufferSize int, logger *slog.Logger) (*KafkaSink, error) {
	if !cfg.Enabled() {
		return nil, errs.New("kafka: at least one broker required")
	}
	if cfg.Topic == "" {
		return nil, errs.New("kafka: topic required")
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: kafka.RequireOne,
	}
	return newKafkaSink(w, cfg.WriteTimeout, bufferSize, logger), nil
}

func newKafkaSink(w messageWriter, writeTimeout time.Duration, bufferSize int, logger *slog.Logger) *KafkaSink {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	s := &KafkaSink{
		writer:       w,
		writeTimeout: writeTimeout,
		queue:        make(chan shared.AuditEvent, bufferSize),
		logger:       logger,
		done:         make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *KafkaSink) Record(_ context.Context, event shared.AuditEvent) {
	select {
	case s.queue <- event:
	default:
		s.logger.Warn("audit buffer full, dropping event",
			slog.String("sink", "kafka"),
			slog.String("type", string(event.Type)),
			slog.String("promotion_id", event.PromotionID.String()),
		)
	}
}

func (s *KafkaSink) run() {
	defer close(s.done)
	for event := range s.queue {
		if err := s.publish(event); err != nil {
			s.logger.Error("failed to publish audit event",
				slog.String("event_id", event.ID.String()),
				slog.String("type", string(event.Type)),
				slog.String("error", err.Error()),
			)
		}
	}
}

func (s *KafkaSink) publish(event shared.AuditEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal audit event")
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()
	return s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.PromotionID.String()),
		Value: value,
		Time:  event.OccurredAt,
	})
}

// Close stops accepting events, drains the buffer and closes the writer.
// Record must not be called after Close.
func (s *KafkaSink) Close(ctx context.Context) error {
	s.closeOnce.Do(func() { close(s.queue) })
	select {
	case <-s.done:
	case <-ctx.Done():
		s.logger.Warn("audit drain interrupted", slog.Int("pending", len(s.queue)))
	}
	return s.writer.Close()
}

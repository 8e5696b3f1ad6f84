package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"sync"

	"badge-promotion-engine/internal/pkg/clock"
	"badge-promotion-engine/internal/pkg/config"
	"badge-promotion-engine/internal/pkg/errs"
	"badge-promotion-engine/internal/usecase/shared"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3Archiver collects events in memory and writes them as one JSON Lines
// object per flush under <prefix>/audit/YYYY/MM/DD/. A failed upload keeps
// the batch for the next flush, up to the buffer limit.
type S3Archiver struct {
	uploader uploader
	bucket   string
	prefix   string
	limit    int
	clock    clock.Clock
	logger   *slog.Logger

	mu      sync.Mutex
	pending []shared.AuditEvent
}

// NewS3Archiver picks up region and credentials from the standard AWS
// environment.
func NewS3Archiver(ctx context.Context, cfg config.S3Config, bufferSize int, clk clock.Clock, logger *slog.Logger) (*S3Archiver, error) {
	if !cfg.Enabled() {
		return nil, errs.New("s3: bucket required")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load aws config")
	}
	return newS3Archiver(manager.NewUploader(s3.NewFromConfig(awsCfg)), cfg, bufferSize, clk, logger), nil
}

func newS3Archiver(up uploader, cfg config.S3Config, bufferSize int, clk clock.Clock, logger *slog.Logger) *S3Archiver {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &S3Archiver{
		uploader: up,
		bucket:   cfg.Bucket,
		prefix:   cfg.Prefix,
		limit:    bufferSize,
		clock:    clk,
		logger:   logger,
	}
}

func (a *S3Archiver) Record(_ context.Context, event shared.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.pending) >= a.limit {
		a.logger.Warn("audit buffer full, dropping event",
			slog.String("sink", "s3"),
			slog.String("type", string(event.Type)),
			slog.String("promotion_id", event.PromotionID.String()),
		)
		return
	}
	a.pending = append(a.pending, event)
}

// Flush uploads everything buffered so far. It returns the object key, or ""
// when there was nothing to write.
func (a *S3Archiver) Flush(ctx context.Context) (string, error) {
	a.mu.Lock()
	batch := a.pending
	a.pending = nil
	a.mu.Unlock()

	if len(batch) == 0 {
		return "", nil
	}

	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	for _, ev := range batch {
		if err := enc.Encode(ev); err != nil {
			return "", errs.Wrap(err, "encode audit event")
		}
	}

	key := a.objectKey()
	_, err := a.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:               aws.String(a.bucket),
		Key:                  aws.String(key),
		Body:                 bytes.NewReader(body.Bytes()),
		ContentType:          aws.String("application/x-ndjson"),
		ServerSideEncryption: s3types.ServerSideEncryptionAes256,
	})
	if err != nil {
		a.requeue(batch)
		return "", errs.Wrapf(err, "upload audit batch %s", key)
	}
	return key, nil
}

func (a *S3Archiver) requeue(batch []shared.AuditEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	merged := append(batch, a.pending...)
	if dropped := len(merged) - a.limit; dropped > 0 {
		a.logger.Warn("audit buffer full after failed upload, dropping oldest events", slog.Int("dropped", dropped))
		merged = merged[dropped:]
	}
	a.pending = merged
}

func (a *S3Archiver) objectKey() string {
	now := a.clock.Now().UTC()
	year, month, day := now.Date()
	return path.Join(a.prefix, "audit",
		fmt.Sprintf("%04d", year),
		fmt.Sprintf("%02d", int(month)),
		fmt.Sprintf("%02d", day),
		fmt.Sprintf("%s-%s.jsonl", now.Format("150405"), uuid.NewString()),
	)
}

// NewFlushScheduler runs Flush every interval. The caller starts and shuts
// the scheduler down; a last Flush after shutdown picks up the tail.
func NewFlushScheduler(a *S3Archiver, cfg config.S3Config) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, errs.Wrap(err, "create audit scheduler")
	}

	_, err = sched.NewJob(
		gocron.DurationJob(cfg.FlushInterval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), cfg.FlushInterval)
			defer cancel()
			key, err := a.Flush(ctx)
			if err != nil {
				a.logger.Error("audit archive flush failed", slog.String("error", err.Error()))
				return
			}
			if key != "" {
				a.logger.Debug("audit batch archived", slog.String("key", key))
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, errs.Wrap(err, "schedule audit flush")
	}
	return sched, nil
}

package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/infra/readstore"
	"badge-promotion-engine/internal/infra/repository"
	sqlc "badge-promotion-engine/internal/infra/sqlc/generated"
	"badge-promotion-engine/internal/pkg/errs"
	"badge-promotion-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

var _ shared.UnitOfWork = (*PostgresUoW)(nil)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Within runs fn under ReadCommitted. Conflicting writers serialise on the
// promotion row lock and on the partial unique index rather than on the
// isolation level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	promotionRepo   shared.PromotionRepository
	reservationRepo shared.ReservationRepository
	badgeAppRepo    shared.BadgeApplicationRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Promotions() shared.PromotionRepository {
	if t.promotionRepo == nil {
		t.promotionRepo = repository.NewPromotionRepository(t.uow.q)
	}
	return t.promotionRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q)
	}
	return t.reservationRepo
}

func (t *pgTx) BadgeApplications() shared.BadgeApplicationRepository {
	if t.badgeAppRepo == nil {
		t.badgeAppRepo = repository.NewBadgeApplicationRepository(t.uow.q)
	}
	return t.badgeAppRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	promotionStore *readstore.PromotionReadStore
	templateStore  *readstore.TemplateReadStore
	badgeStore     *readstore.BadgeReadStore
}

func (r *commandReads) promotions() *readstore.PromotionReadStore {
	if r.promotionStore == nil {
		r.promotionStore = readstore.NewPromotionReadStore(r.uow.q, r.dbtx)
	}
	return r.promotionStore
}

func (r *commandReads) badges() *readstore.BadgeReadStore {
	if r.badgeStore == nil {
		r.badgeStore = readstore.NewBadgeReadStore(r.uow.q, r.dbtx)
	}
	return r.badgeStore
}

func (r *commandReads) PromotionByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error) {
	return r.promotions().FindAggregateByID(ctx, id)
}

func (r *commandReads) TemplateByID(ctx context.Context, id uuid.UUID) (*promotion.Template, error) {
	if r.templateStore == nil {
		r.templateStore = readstore.NewTemplateReadStore(r.uow.q, r.dbtx)
	}
	return r.templateStore.FindByID(ctx, id)
}

func (r *commandReads) BadgeApplicationForReservation(ctx context.Context, id uuid.UUID) (*badge.Application, error) {
	return r.badges().FindForReservation(ctx, id)
}

func (r *commandReads) ActiveReservationOwner(ctx context.Context, badgeApplicationID uuid.UUID) (uuid.UUID, error) {
	return r.badges().ActiveReservationOwner(ctx, badgeApplicationID)
}

func (r *commandReads) HeldBadgeKeys(ctx context.Context, promotionID uuid.UUID) ([]badge.Key, error) {
	return r.badges().HeldBadgeKeys(ctx, promotionID)
}

func (r *commandReads) ActiveReservationCount(ctx context.Context, promotionID uuid.UUID) (int64, error) {
	return r.badges().ActiveReservationCount(ctx, promotionID)
}

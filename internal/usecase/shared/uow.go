package shared

import (
	"context"
	"time"

	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/domain/reservation"
	sqlc "badge-promotion-engine/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Promotions() PromotionRepository
	Reservations() ReservationRepository
	BadgeApplications() BadgeApplicationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads loads write-side aggregates. Missing rows surface as
// infra.KindNotFound.
type CommandReads interface {
	PromotionByID(ctx context.Context, id uuid.UUID) (*promotion.Promotion, error)
	TemplateByID(ctx context.Context, id uuid.UUID) (*promotion.Template, error)
	// BadgeApplicationForReservation takes a share lock on the application row.
	BadgeApplicationForReservation(ctx context.Context, id uuid.UUID) (*badge.Application, error)
	ActiveReservationOwner(ctx context.Context, badgeApplicationID uuid.UUID) (uuid.UUID, error)
	HeldBadgeKeys(ctx context.Context, promotionID uuid.UUID) ([]badge.Key, error)
	ActiveReservationCount(ctx context.Context, promotionID uuid.UUID) (int64, error)
}

// PromotionRepository status writes are guarded by the expected current
// status. A guard miss is reported as infra.KindNotFound; callers re-read to
// tell a vanished row from a concurrent transition.
type PromotionRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, p *promotion.Promotion) error
	LockDraft(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) (*promotion.Promotion, error)
	Submit(ctx context.Context, tx sqlc.DBTX, p *promotion.Promotion) error
	Approve(ctx context.Context, tx sqlc.DBTX, p *promotion.Promotion) error
	Reject(ctx context.Context, tx sqlc.DBTX, p *promotion.Promotion) error
	DeleteDraft(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
}

type ReservationRepository interface {
	// Insert reports false when another unconsumed reservation already holds
	// the badge application.
	Insert(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (bool, error)
	ReleaseAll(ctx context.Context, tx sqlc.DBTX, promotionID uuid.UUID) ([]uuid.UUID, error)
	ReleaseSome(ctx context.Context, tx sqlc.DBTX, promotionID uuid.UUID, badgeApplicationIDs []uuid.UUID) ([]uuid.UUID, error)
	ConsumeAll(ctx context.Context, tx sqlc.DBTX, promotionID uuid.UUID) (int64, error)
}

type BadgeApplicationRepository interface {
	MarkUsedByPromotion(ctx context.Context, tx sqlc.DBTX, promotionID uuid.UUID) (int64, error)
	RevertToAccepted(ctx context.Context, tx sqlc.DBTX, ids []uuid.UUID) (int64, error)
}

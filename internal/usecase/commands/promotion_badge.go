package commands

import (
	"context"

	"badge-promotion-engine/internal/domain/reservation"
	"badge-promotion-engine/internal/domain/user"
	"badge-promotion-engine/internal/pkg/clock"
	"badge-promotion-engine/internal/pkg/telemetry"
	"badge-promotion-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type BadgeChangeResult struct {
	PromotionID         uuid.UUID
	BadgeApplicationIDs []uuid.UUID
}

func (r *BadgeChangeResult) Count() int { return len(r.BadgeApplicationIDs) }

// BadgeCommands edits the badge set of a draft promotion. Only the owner may
// edit, and only while the promotion is a draft.
type BadgeCommands interface {
	AddBadges(ctx context.Context, actor user.Actor, promotionID uuid.UUID, badgeApplicationIDs []uuid.UUID) (*BadgeChangeResult, error)
	RemoveBadges(ctx context.Context, actor user.Actor, promotionID uuid.UUID, badgeApplicationIDs []uuid.UUID) (*BadgeChangeResult, error)
}

type badgeUseCaseImpl struct {
	uow    shared.UnitOfWork
	ledger *ReservationLedger
	audit  shared.AuditSink
	clock  clock.Clock
}

func NewBadgeUseCase(uow shared.UnitOfWork, ledger *ReservationLedger, audit shared.AuditSink, clk clock.Clock) BadgeCommands {
	return &badgeUseCaseImpl{
		uow:    uow,
		ledger: ledger,
		audit:  audit,
		clock:  clk,
	}
}

func (uc *badgeUseCaseImpl) AddBadges(ctx context.Context, actor user.Actor, promotionID uuid.UUID, badgeApplicationIDs []uuid.UUID) (_ *BadgeChangeResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "promotion.badges.add",
		attribute.String("promotion.id", promotionID.String()),
		attribute.Int("badge.count", len(badgeApplicationIDs)),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	batch, err := reservation.NewBatch(badgeApplicationIDs)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := uc.lockEditable(ctx, tx, actor, promotionID); derr != nil {
			return derr
		}
		return uc.ledger.Reserve(ctx, tx, promotionID, actor.UserID(), batch)
	})
	if err != nil {
		return nil, err
	}

	result := &BadgeChangeResult{PromotionID: promotionID, BadgeApplicationIDs: batch.IDs()}
	recordAudit(ctx, uc.audit, uc.clock, shared.AuditPromotionBadgesReserved, promotionID, actor, map[string]any{
		"badgeApplicationIds": result.BadgeApplicationIDs,
	})
	return result, nil
}

// RemoveBadges reports only the ids that were actually released.
func (uc *badgeUseCaseImpl) RemoveBadges(ctx context.Context, actor user.Actor, promotionID uuid.UUID, badgeApplicationIDs []uuid.UUID) (_ *BadgeChangeResult, err error) {
	ctx, span := telemetry.StartSpan(ctx, "promotion.badges.remove",
		attribute.String("promotion.id", promotionID.String()),
		attribute.Int("badge.count", len(badgeApplicationIDs)),
	)
	defer func() { telemetry.EndSpan(span, err) }()

	batch, err := reservation.NewBatch(badgeApplicationIDs)
	if err != nil {
		return nil, err
	}

	var released []uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := uc.lockEditable(ctx, tx, actor, promotionID); derr != nil {
			return derr
		}
		var derr error
		released, derr = uc.ledger.ReleaseSome(ctx, tx, promotionID, batch)
		return derr
	})
	if err != nil {
		return nil, err
	}

	if released == nil {
		released = []uuid.UUID{}
	}
	result := &BadgeChangeResult{PromotionID: promotionID, BadgeApplicationIDs: released}
	if result.Count() > 0 {
		recordAudit(ctx, uc.audit, uc.clock, shared.AuditPromotionBadgesReleased, promotionID, actor, map[string]any{
			"badgeApplicationIds": released,
		})
	}
	return result, nil
}

// lockEditable checks ownership and draft status, then holds the promotion
// row lock until the transaction ends.
func (uc *badgeUseCaseImpl) lockEditable(ctx context.Context, tx shared.Tx, actor user.Actor, promotionID uuid.UUID) error {
	p, err := loadPromotion(ctx, tx, promotionID)
	if err != nil {
		return err
	}
	if err := p.EnsureEditableBy(actor); err != nil {
		return domainErr(err)
	}
	if _, err := tx.Promotions().LockDraft(ctx, tx.DB(), promotionID, uc.clock.Now()); err != nil {
		return resolveGuardMiss(ctx, tx, promotionID, err)
	}
	return nil
}

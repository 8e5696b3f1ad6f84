package commands

import (
	"context"

	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/domain/user"
	"badge-promotion-engine/internal/infra"
	"badge-promotion-engine/internal/pkg/clock"
	"badge-promotion-engine/internal/pkg/errs"
	"badge-promotion-engine/internal/pkg/telemetry"
	"badge-promotion-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// PromotionCommands drives a promotion through draft -> submitted ->
// approved | rejected. Each status write is a guarded update on the promotion
// row, which also serialises concurrent writers on the same promotion.
type PromotionCommands interface {
	Create(ctx context.Context, actor user.Actor, templateID uuid.UUID) (*promotion.Promotion, error)
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
	Submit(ctx context.Context, actor user.Actor, id uuid.UUID) (*promotion.Promotion, error)
	Approve(ctx context.Context, actor user.Actor, id uuid.UUID) (*promotion.Promotion, error)
	Reject(ctx context.Context, actor user.Actor, id uuid.UUID, reason string) (*promotion.Promotion, error)
}

type promotionUseCaseImpl struct {
	uow    shared.UnitOfWork
	ledger *ReservationLedger
	audit  shared.AuditSink
	clock  clock.Clock
}

func NewPromotionUseCase(uow shared.UnitOfWork, ledger *ReservationLedger, audit shared.AuditSink, clk clock.Clock) PromotionCommands {
	return &promotionUseCaseImpl{
		uow:    uow,
		ledger: ledger,
		audit:  audit,
		clock:  clk,
	}
}

func (uc *promotionUseCaseImpl) Create(ctx context.Context, actor user.Actor, templateID uuid.UUID) (_ *promotion.Promotion, err error) {
	ctx, span := telemetry.StartSpan(ctx, "promotion.create", attribute.String("template.id", templateID.String()))
	defer func() { telemetry.EndSpan(span, err) }()

	var created *promotion.Promotion
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tmpl, derr := tx.Reads().TemplateByID(ctx, templateID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrTemplateNotFound
			}
			return derr
		}

		p, derr := promotion.NewPromotion(tmpl, actor.UserID(), uc.clock.Now())
		if derr != nil {
			return derr
		}
		if derr = tx.Promotions().Create(ctx, tx.DB(), p); derr != nil {
			return derr
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.record(ctx, shared.AuditPromotionCreated, created.ID(), actor, map[string]any{
		"templateId": templateID,
	})
	return created, nil
}

// Delete removes a draft together with its reservations.
func (uc *promotionUseCaseImpl) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "promotion.delete", attribute.String("promotion.id", id.String()))
	defer func() { telemetry.EndSpan(span, err) }()

	var released []uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, derr := loadPromotion(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if derr = p.EnsureDeletableBy(actor); derr != nil {
			return domainErr(derr)
		}
		if _, derr = tx.Promotions().LockDraft(ctx, tx.DB(), id, uc.clock.Now()); derr != nil {
			return resolveGuardMiss(ctx, tx, id, derr)
		}

		released, derr = uc.ledger.Release(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if derr = tx.Promotions().DeleteDraft(ctx, tx.DB(), id); derr != nil {
			return resolveGuardMiss(ctx, tx, id, derr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.record(ctx, shared.AuditPromotionDeleted, id, actor, map[string]any{
		"releasedBadgeApplicationIds": released,
	})
	return nil
}

// Submit re-evaluates the template rules after taking the row lock, so the
// reservations it checks cannot change before commit. Unmet rules roll the
// whole transition back.
func (uc *promotionUseCaseImpl) Submit(ctx context.Context, actor user.Actor, id uuid.UUID) (_ *promotion.Promotion, err error) {
	ctx, span := telemetry.StartSpan(ctx, "promotion.submit", attribute.String("promotion.id", id.String()))
	defer func() { telemetry.EndSpan(span, err) }()

	var submitted *promotion.Promotion
	var reserved int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, derr := loadPromotion(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if derr = p.Submit(actor, uc.clock.Now()); derr != nil {
			return domainErr(derr)
		}
		if derr = tx.Promotions().Submit(ctx, tx.DB(), p); derr != nil {
			return resolveGuardMiss(ctx, tx, id, derr)
		}

		tmpl, derr := tx.Reads().TemplateByID(ctx, p.TemplateID())
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Wrapf(ErrTemplateNotFound, "promotion %s references a missing template", id)
			}
			return derr
		}
		held, derr := tx.Reads().HeldBadgeKeys(ctx, id)
		if derr != nil {
			return derr
		}
		if result := promotion.Evaluate(tmpl.Rules(), held); !result.IsValid {
			return &ValidationFailedError{Missing: result.Missing}
		}

		marked, derr := tx.BadgeApplications().MarkUsedByPromotion(ctx, tx.DB(), id)
		if derr != nil {
			return derr
		}
		active, derr := tx.Reads().ActiveReservationCount(ctx, id)
		if derr != nil {
			return derr
		}
		if marked != active {
			return errs.Wrapf(ErrReservationsStale, "marked %d of %d reserved badge applications", marked, active)
		}

		submitted, reserved = p, active
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.record(ctx, shared.AuditPromotionSubmitted, id, actor, map[string]any{
		"badgeCount": reserved,
	})
	return submitted, nil
}

// Approve executes the promotion and spends its reservations.
func (uc *promotionUseCaseImpl) Approve(ctx context.Context, actor user.Actor, id uuid.UUID) (_ *promotion.Promotion, err error) {
	ctx, span := telemetry.StartSpan(ctx, "promotion.approve", attribute.String("promotion.id", id.String()))
	defer func() { telemetry.EndSpan(span, err) }()

	var approved *promotion.Promotion
	var consumed int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, derr := loadPromotion(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if derr = p.Approve(actor, uc.clock.Now()); derr != nil {
			return domainErr(derr)
		}
		if derr = tx.Promotions().Approve(ctx, tx.DB(), p); derr != nil {
			return resolveGuardMiss(ctx, tx, id, derr)
		}

		consumed, derr = uc.ledger.Consume(ctx, tx, id)
		if derr != nil {
			return derr
		}
		approved = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.record(ctx, shared.AuditPromotionApproved, id, actor, map[string]any{
		"consumedCount": consumed,
	})
	return approved, nil
}

// Reject frees the promotion's badge applications for reuse.
func (uc *promotionUseCaseImpl) Reject(ctx context.Context, actor user.Actor, id uuid.UUID, reason string) (_ *promotion.Promotion, err error) {
	ctx, span := telemetry.StartSpan(ctx, "promotion.reject", attribute.String("promotion.id", id.String()))
	defer func() { telemetry.EndSpan(span, err) }()

	rejectReason, err := promotion.NewRejectReason(reason)
	if err != nil {
		return nil, err
	}

	var rejected *promotion.Promotion
	var released []uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, derr := loadPromotion(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if derr = p.Reject(actor, rejectReason, uc.clock.Now()); derr != nil {
			return domainErr(derr)
		}
		if derr = tx.Promotions().Reject(ctx, tx.DB(), p); derr != nil {
			return resolveGuardMiss(ctx, tx, id, derr)
		}

		released, derr = uc.ledger.Release(ctx, tx, id)
		if derr != nil {
			return derr
		}
		if _, derr = tx.BadgeApplications().RevertToAccepted(ctx, tx.DB(), released); derr != nil {
			return derr
		}
		rejected = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.record(ctx, shared.AuditPromotionRejected, id, actor, map[string]any{
		"reason":                      rejectReason.String(),
		"releasedBadgeApplicationIds": released,
	})
	return rejected, nil
}

func (uc *promotionUseCaseImpl) record(ctx context.Context, typ shared.AuditEventType, promotionID uuid.UUID, actor user.Actor, payload map[string]any) {
	recordAudit(ctx, uc.audit, uc.clock, typ, promotionID, actor, payload)
}

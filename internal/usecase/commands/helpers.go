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
)

func loadPromotion(ctx context.Context, tx shared.Tx, id uuid.UUID) (*promotion.Promotion, error) {
	p, err := tx.Reads().PromotionByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}
	return p, nil
}

// resolveGuardMiss re-reads a promotion whose guarded write matched no row:
// either the row is gone or another transaction moved it on.
func resolveGuardMiss(ctx context.Context, tx shared.Tx, id uuid.UUID, err error) error {
	if !infra.IsKind(err, infra.KindNotFound) {
		return err
	}
	p, rerr := loadPromotion(ctx, tx, id)
	if rerr != nil {
		return rerr
	}
	return &InvalidStatusError{Current: p.Status()}
}

// domainErr translates aggregate guard failures into use-case errors.
func domainErr(err error) error {
	var transition *promotion.InvalidTransitionError
	switch {
	case errs.As(err, &transition):
		return &InvalidStatusError{Current: transition.From}
	case errs.Is(err, promotion.ErrNotOwner):
		return ErrNotOwner
	case errs.Is(err, promotion.ErrAdminRequired):
		return ErrForbidden
	default:
		return err
	}
}

func recordAudit(ctx context.Context, sink shared.AuditSink, clk clock.Clock, typ shared.AuditEventType, promotionID uuid.UUID, actor user.Actor, payload map[string]any) {
	if sink == nil {
		return
	}
	sink.Record(ctx, shared.AuditEvent{
		ID:          uuid.New(),
		Type:        typ,
		PromotionID: promotionID,
		ActorID:     actor.UserID(),
		OccurredAt:  clk.Now(),
		TraceID:     telemetry.TraceIDFromContext(ctx),
		Payload:     payload,
	})
}

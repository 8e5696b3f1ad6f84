package commands

import (
	"bytes"
	"context"
	"slices"

	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/domain/reservation"
	"badge-promotion-engine/internal/infra"
	"badge-promotion-engine/internal/pkg/errs"
	"badge-promotion-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// ReservationLedger records which promotion holds which badge application.
// At most one unconsumed reservation exists per badge application; the
// database enforces this with a partial unique index, the ledger only turns a
// rejected insert into a conflict naming the current holder.
//
// Every method runs inside the caller's transaction so a failed batch leaves
// nothing behind.
type ReservationLedger struct {
	factory *reservation.Factory
}

func NewReservationLedger(factory *reservation.Factory) *ReservationLedger {
	return &ReservationLedger{factory: factory}
}

// Reserve inserts one reservation per id, all or nothing. Badge application
// statuses are left untouched.
func (l *ReservationLedger) Reserve(ctx context.Context, tx shared.Tx, promotionID, assignedBy uuid.UUID, batch reservation.Batch) error {
	items := l.factory.ForBatch(promotionID, assignedBy, batch)
	// Overlapping batches lock badge applications in the same order.
	slices.SortFunc(items, func(a, b *reservation.Reservation) int {
		ida, idb := a.BadgeApplicationID(), b.BadgeApplicationID()
		return bytes.Compare(ida[:], idb[:])
	})

	for _, res := range items {
		if err := l.checkEligible(ctx, tx, res.BadgeApplicationID()); err != nil {
			return err
		}
		if err := l.insert(ctx, tx, res); err != nil {
			return err
		}
	}
	return nil
}

func (l *ReservationLedger) checkEligible(ctx context.Context, tx shared.Tx, id uuid.UUID) error {
	app, err := tx.Reads().BadgeApplicationForReservation(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &BadgeNotFoundError{BadgeApplicationID: id}
		}
		return err
	}
	if err := app.EnsureReservable(); err != nil {
		if errs.Is(err, badge.ErrNotReservable) {
			return &BadgeNotEligibleError{BadgeApplicationID: id, Status: app.Status()}
		}
		return err
	}
	return nil
}

// insert retries while the conflicting reservation keeps disappearing between
// the rejected insert and the owner lookup, so a reported conflict always
// names its owner. Each retry means another holder let go; ctx bounds the loop.
func (l *ReservationLedger) insert(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error {
	for {
		inserted, err := tx.Reservations().Insert(ctx, tx.DB(), res)
		if err != nil {
			return err
		}
		if inserted {
			return nil
		}

		owner, err := tx.Reads().ActiveReservationOwner(ctx, res.BadgeApplicationID())
		if err == nil {
			return &ReservationConflictError{BadgeApplicationID: res.BadgeApplicationID(), OwningPromotionID: owner}
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}
		if err := ctx.Err(); err != nil {
			return errs.Wrap(err, "reserve badge application")
		}
	}
}

// Release drops every unconsumed reservation of the promotion and returns
// the freed badge application ids. Releasing twice is a no-op.
func (l *ReservationLedger) Release(ctx context.Context, tx shared.Tx, promotionID uuid.UUID) ([]uuid.UUID, error) {
	return tx.Reservations().ReleaseAll(ctx, tx.DB(), promotionID)
}

// ReleaseSome drops the listed reservations; ids the promotion does not hold
// are ignored.
func (l *ReservationLedger) ReleaseSome(ctx context.Context, tx shared.Tx, promotionID uuid.UUID, batch reservation.Batch) ([]uuid.UUID, error) {
	return tx.Reservations().ReleaseSome(ctx, tx.DB(), promotionID, batch.IDs())
}

// Consume marks the promotion's reservations as spent. Consumed rows no
// longer block the badge application.
func (l *ReservationLedger) Consume(ctx context.Context, tx shared.Tx, promotionID uuid.UUID) (int64, error) {
	return tx.Reservations().ConsumeAll(ctx, tx.DB(), promotionID)
}

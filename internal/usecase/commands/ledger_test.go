//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"testing"

	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/domain/reservation"
	"badge-promotion-engine/internal/infra"
	"badge-promotion-engine/internal/pkg/errs"
	"badge-promotion-engine/internal/testutil/builder"
	"badge-promotion-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mustBatch(t *testing.T, ids ...uuid.UUID) reservation.Batch {
	t.Helper()
	b, err := reservation.NewBatch(ids)
	require.NoError(t, err)
	return b
}

func acceptedApp(id uuid.UUID) *badge.Application {
	return builder.NewBadgeApplicationBuilder().With(func(b *builder.BadgeApplicationBuilder) { b.ID = id }).BuildDomain()
}

func TestReservationLedger_Reserve(t *testing.T) {
	ctx := context.Background()
	promotionID, assignedBy := uuid.New(), uuid.New()

	t.Run("success: inserts in badge application id order", func(t *testing.T) {
		f := newFixture(t)
		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

		var order []uuid.UUID
		f.reads.EXPECT().BadgeApplicationForReservation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id uuid.UUID) (*badge.Application, error) { return acceptedApp(id), nil },
		).Times(3)
		f.reservations.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, r *reservation.Reservation) (bool, error) {
				assert.Equal(t, promotionID, r.PromotionID())
				assert.Equal(t, assignedBy, r.AssignedBy())
				assert.Equal(t, fixedNow, r.AssignedAt())
				order = append(order, r.BadgeApplicationID())
				return true, nil
			},
		).Times(3)

		err := f.ledger().Reserve(ctx, f.tx, promotionID, assignedBy, mustBatch(t, ids...))

		require.NoError(t, err)
		require.Len(t, order, 3)
		for i := 1; i < len(order); i++ {
			assert.Negative(t, bytes.Compare(order[i-1][:], order[i][:]))
		}
	})

	t.Run("error: conflict names the owning promotion", func(t *testing.T) {
		f := newFixture(t)
		id, owner := uuid.New(), uuid.New()

		f.reads.EXPECT().BadgeApplicationForReservation(gomock.Any(), id).Return(acceptedApp(id), nil)
		f.reservations.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.reads.EXPECT().ActiveReservationOwner(gomock.Any(), id).Return(owner, nil)

		err := f.ledger().Reserve(ctx, f.tx, promotionID, assignedBy, mustBatch(t, id))

		var conflict *commands.ReservationConflictError
		require.True(t, errs.As(err, &conflict))
		assert.Equal(t, id, conflict.BadgeApplicationID)
		assert.Equal(t, owner, conflict.OwningPromotionID)
		assert.True(t, errs.Is(err, commands.ErrReservationConflict))
	})

	t.Run("success: owner released between insert and lookup, retry wins", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()

		f.reads.EXPECT().BadgeApplicationForReservation(gomock.Any(), id).Return(acceptedApp(id), nil)
		gomock.InOrder(
			f.reservations.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil),
			f.reads.EXPECT().ActiveReservationOwner(gomock.Any(), id).Return(uuid.Nil, notFound("no active reservation")),
			f.reservations.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil),
		)

		err := f.ledger().Reserve(ctx, f.tx, promotionID, assignedBy, mustBatch(t, id))

		assert.NoError(t, err)
	})

	t.Run("error: conflict after repeated releases still names the owner", func(t *testing.T) {
		f := newFixture(t)
		id, owner := uuid.New(), uuid.New()

		f.reads.EXPECT().BadgeApplicationForReservation(gomock.Any(), id).Return(acceptedApp(id), nil)
		gomock.InOrder(
			f.reservations.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil),
			f.reads.EXPECT().ActiveReservationOwner(gomock.Any(), id).Return(uuid.Nil, notFound("no active reservation")),
			f.reservations.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil),
			f.reads.EXPECT().ActiveReservationOwner(gomock.Any(), id).Return(uuid.Nil, notFound("no active reservation")),
			f.reservations.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil),
			f.reads.EXPECT().ActiveReservationOwner(gomock.Any(), id).Return(owner, nil),
		)

		err := f.ledger().Reserve(ctx, f.tx, promotionID, assignedBy, mustBatch(t, id))

		var conflict *commands.ReservationConflictError
		require.True(t, errs.As(err, &conflict))
		assert.Equal(t, owner, conflict.OwningPromotionID)
		assert.NotEqual(t, uuid.Nil, conflict.OwningPromotionID)
	})

	t.Run("error: cancelled context stops the retry", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		cctx, cancel := context.WithCancel(ctx)

		f.reads.EXPECT().BadgeApplicationForReservation(gomock.Any(), id).Return(acceptedApp(id), nil)
		f.reservations.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.reads.EXPECT().ActiveReservationOwner(gomock.Any(), id).DoAndReturn(
			func(context.Context, uuid.UUID) (uuid.UUID, error) {
				cancel()
				return uuid.Nil, notFound("no active reservation")
			},
		)

		err := f.ledger().Reserve(cctx, f.tx, promotionID, assignedBy, mustBatch(t, id))

		assert.True(t, errs.Is(err, context.Canceled))
		assert.False(t, errs.Is(err, commands.ErrReservationConflict))
	})

	t.Run("error: missing badge application", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.reads.EXPECT().BadgeApplicationForReservation(gomock.Any(), id).Return(nil, notFound("badge application not found"))

		err := f.ledger().Reserve(ctx, f.tx, promotionID, assignedBy, mustBatch(t, id))

		var nf *commands.BadgeNotFoundError
		require.True(t, errs.As(err, &nf))
		assert.Equal(t, id, nf.BadgeApplicationID)
	})

	t.Run("error: application not accepted", func(t *testing.T) {
		f := newFixture(t)
		app := builder.NewBadgeApplicationBuilder().With(func(b *builder.BadgeApplicationBuilder) {
			b.Status = badge.StatusUsedInPromotion
		}).BuildDomain()
		f.reads.EXPECT().BadgeApplicationForReservation(gomock.Any(), app.ID()).Return(app, nil)

		err := f.ledger().Reserve(ctx, f.tx, promotionID, assignedBy, mustBatch(t, app.ID()))

		var ne *commands.BadgeNotEligibleError
		require.True(t, errs.As(err, &ne))
		assert.Equal(t, badge.StatusUsedInPromotion, ne.Status)
	})

	t.Run("error: insert failure is passed through", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.reads.EXPECT().BadgeApplicationForReservation(gomock.Any(), id).Return(acceptedApp(id), nil)
		f.reservations.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, infra.WrapRepoErr("failed to insert reservation", errDBDown))

		err := f.ledger().Reserve(ctx, f.tx, promotionID, assignedBy, mustBatch(t, id))

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestReservationLedger_ReleaseAndConsume(t *testing.T) {
	ctx := context.Background()
	promotionID := uuid.New()

	t.Run("release twice is a no-op the second time", func(t *testing.T) {
		f := newFixture(t)
		freed := []uuid.UUID{uuid.New()}
		gomock.InOrder(
			f.reservations.EXPECT().ReleaseAll(gomock.Any(), gomock.Any(), promotionID).Return(freed, nil),
			f.reservations.EXPECT().ReleaseAll(gomock.Any(), gomock.Any(), promotionID).Return(nil, nil),
		)

		first, err := f.ledger().Release(ctx, f.tx, promotionID)
		require.NoError(t, err)
		second, err := f.ledger().Release(ctx, f.tx, promotionID)
		require.NoError(t, err)

		assert.Equal(t, freed, first)
		assert.Empty(t, second)
	})

	t.Run("consume reports affected rows", func(t *testing.T) {
		f := newFixture(t)
		f.reservations.EXPECT().ConsumeAll(gomock.Any(), gomock.Any(), promotionID).Return(int64(4), nil)

		n, err := f.ledger().Consume(ctx, f.tx, promotionID)

		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
	})
}

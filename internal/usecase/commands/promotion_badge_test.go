//go:build unit

package commands_test

import (
	"context"
	"testing"

	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/domain/reservation"
	"badge-promotion-engine/internal/domain/user"
	"badge-promotion-engine/internal/pkg/errs"
	"badge-promotion-engine/internal/testutil/builder"
	"badge-promotion-engine/internal/usecase/commands"
	"badge-promotion-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBadgeCommands_AddBadges(t *testing.T) {
	ctx := context.Background()

	t.Run("success: owner reserves accepted applications", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewPromotionBuilder()
		p := b.BuildDomain()
		ids := []uuid.UUID{uuid.New(), uuid.New()}

		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)
		f.promotions.EXPECT().LockDraft(gomock.Any(), gomock.Any(), p.ID(), fixedNow).Return(p, nil)
		f.reads.EXPECT().BadgeApplicationForReservation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id uuid.UUID) (*badge.Application, error) { return acceptedApp(id), nil },
		).Times(2)
		f.reservations.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
		f.expectAudit(shared.AuditPromotionBadgesReserved)

		result, err := f.badgeCommands().AddBadges(ctx, b.Owner(), p.ID(), ids)

		require.NoError(t, err)
		assert.Equal(t, p.ID(), result.PromotionID)
		assert.Equal(t, ids, result.BadgeApplicationIDs)
		assert.Equal(t, 2, result.Count())
	})

	t.Run("error: empty batch is rejected before the transaction", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.badgeCommands().AddBadges(ctx, user.NewActor(uuid.New(), false), uuid.New(), nil)

		assert.True(t, errs.Is(err, reservation.ErrEmptyBatch))
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("error: duplicate ids", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()

		_, err := f.badgeCommands().AddBadges(ctx, user.NewActor(uuid.New(), false), uuid.New(), []uuid.UUID{id, id})

		assert.True(t, errs.Is(err, reservation.ErrDuplicateBadge))
	})

	t.Run("error: admin who is not the owner cannot edit", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewPromotionBuilder().BuildDomain()
		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)

		_, err := f.badgeCommands().AddBadges(ctx, user.NewActor(uuid.New(), true), p.ID(), []uuid.UUID{uuid.New()})

		assert.True(t, errs.Is(err, commands.ErrNotOwner))
	})

	t.Run("error: submitted promotion is frozen", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewPromotionBuilder().WithStatus(promotion.StatusSubmitted)
		p := b.BuildDomain()
		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)

		_, err := f.badgeCommands().AddBadges(ctx, b.Owner(), p.ID(), []uuid.UUID{uuid.New()})

		var is *commands.InvalidStatusError
		require.True(t, errs.As(err, &is))
		assert.Equal(t, promotion.StatusSubmitted, is.Current)
	})

	t.Run("error: conflict aborts the batch without audit", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewPromotionBuilder()
		p := b.BuildDomain()
		id, owner := uuid.New(), uuid.New()

		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)
		f.promotions.EXPECT().LockDraft(gomock.Any(), gomock.Any(), p.ID(), fixedNow).Return(p, nil)
		f.reads.EXPECT().BadgeApplicationForReservation(gomock.Any(), id).Return(acceptedApp(id), nil)
		f.reservations.EXPECT().Insert(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.reads.EXPECT().ActiveReservationOwner(gomock.Any(), id).Return(owner, nil)

		_, err := f.badgeCommands().AddBadges(ctx, b.Owner(), p.ID(), []uuid.UUID{id})

		assert.True(t, errs.Is(err, commands.ErrReservationConflict))
	})
}

func TestBadgeCommands_RemoveBadges(t *testing.T) {
	ctx := context.Background()

	t.Run("success: only held ids are reported", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewPromotionBuilder()
		p := b.BuildDomain()
		held, stranger := uuid.New(), uuid.New()

		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)
		f.promotions.EXPECT().LockDraft(gomock.Any(), gomock.Any(), p.ID(), fixedNow).Return(p, nil)
		f.reservations.EXPECT().ReleaseSome(gomock.Any(), gomock.Any(), p.ID(), []uuid.UUID{held, stranger}).
			Return([]uuid.UUID{held}, nil)
		f.expectAudit(shared.AuditPromotionBadgesReleased)

		result, err := f.badgeCommands().RemoveBadges(ctx, b.Owner(), p.ID(), []uuid.UUID{held, stranger})

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{held}, result.BadgeApplicationIDs)
	})

	t.Run("success: nothing held yields an empty list and no audit", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewPromotionBuilder()
		p := b.BuildDomain()

		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)
		f.promotions.EXPECT().LockDraft(gomock.Any(), gomock.Any(), p.ID(), fixedNow).Return(p, nil)
		f.reservations.EXPECT().ReleaseSome(gomock.Any(), gomock.Any(), p.ID(), gomock.Any()).Return(nil, nil)

		result, err := f.badgeCommands().RemoveBadges(ctx, b.Owner(), p.ID(), []uuid.UUID{uuid.New()})

		require.NoError(t, err)
		assert.NotNil(t, result.BadgeApplicationIDs)
		assert.Zero(t, result.Count())
	})

	t.Run("error: promotion deleted concurrently", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewPromotionBuilder()
		p := b.BuildDomain()

		gomock.InOrder(
			f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil),
			f.promotions.EXPECT().LockDraft(gomock.Any(), gomock.Any(), p.ID(), fixedNow).Return(nil, notFound("failed to lock promotion")),
			f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(nil, notFound("promotion not found")),
		)

		_, err := f.badgeCommands().RemoveBadges(ctx, b.Owner(), p.ID(), []uuid.UUID{uuid.New()})

		assert.True(t, errs.Is(err, commands.ErrPromotionNotFound))
	})
}

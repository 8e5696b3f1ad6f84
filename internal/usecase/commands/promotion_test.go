//go:build unit

package commands_test

import (
	"context"
	"testing"

	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/domain/user"
	"badge-promotion-engine/internal/infra"
	"badge-promotion-engine/internal/pkg/errs"
	"badge-promotion-engine/internal/testutil/builder"
	"badge-promotion-engine/internal/usecase/commands"
	"badge-promotion-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBDown = errs.New("connection refused")

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}

func bronzeTechnical(n int) []badge.Key {
	keys := make([]badge.Key, n)
	for i := range keys {
		keys[i] = badge.Key{Category: badge.CategoryTechnical, Level: badge.LevelBronze}
	}
	return keys
}

// =============================================================================
// Create Tests
// =============================================================================

func TestPromotionCommands_Create(t *testing.T) {
	ctx := context.Background()
	actor := user.NewActor(uuid.New(), false)

	t.Run("success: draft copied from active template", func(t *testing.T) {
		f := newFixture(t)
		tmpl := builder.NewTemplateBuilder().BuildDomain()

		f.reads.EXPECT().TemplateByID(gomock.Any(), tmpl.ID()).Return(tmpl, nil)
		f.promotions.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.expectAudit(shared.AuditPromotionCreated)

		p, err := f.promotionCommands().Create(ctx, actor, tmpl.ID())

		require.NoError(t, err)
		assert.Equal(t, promotion.StatusDraft, p.Status())
		assert.Equal(t, actor.UserID(), p.CreatedBy())
		assert.Equal(t, tmpl.Path(), p.Path())
		assert.Equal(t, tmpl.ToLevel(), p.ToLevel())
		assert.Equal(t, fixedNow, p.CreatedAt())
	})

	t.Run("error: template not found", func(t *testing.T) {
		f := newFixture(t)
		templateID := uuid.New()
		f.reads.EXPECT().TemplateByID(gomock.Any(), templateID).Return(nil, notFound("promotion template not found"))

		_, err := f.promotionCommands().Create(ctx, actor, templateID)

		assert.True(t, errs.Is(err, commands.ErrTemplateNotFound))
	})

	t.Run("error: template inactive", func(t *testing.T) {
		f := newFixture(t)
		tmpl := builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) { b.Active = false }).BuildDomain()
		f.reads.EXPECT().TemplateByID(gomock.Any(), tmpl.ID()).Return(tmpl, nil)

		_, err := f.promotionCommands().Create(ctx, actor, tmpl.ID())

		assert.True(t, errs.Is(err, promotion.ErrTemplateInactive))
	})
}

// =============================================================================
// Submit Tests
// =============================================================================

func TestPromotionCommands_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rules satisfied, applications marked used", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewPromotionBuilder()
		p := b.BuildDomain()
		tmpl := builder.NewTemplateBuilder().BuildDomain()

		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)
		f.promotions.EXPECT().Submit(gomock.Any(), gomock.Any(), p).Return(nil)
		f.reads.EXPECT().TemplateByID(gomock.Any(), p.TemplateID()).Return(tmpl, nil)
		f.reads.EXPECT().HeldBadgeKeys(gomock.Any(), p.ID()).Return(bronzeTechnical(3), nil)
		f.badgeApps.EXPECT().MarkUsedByPromotion(gomock.Any(), gomock.Any(), p.ID()).Return(int64(3), nil)
		f.reads.EXPECT().ActiveReservationCount(gomock.Any(), p.ID()).Return(int64(3), nil)
		f.expectAudit(shared.AuditPromotionSubmitted)

		got, err := f.promotionCommands().Submit(ctx, b.Owner(), p.ID())

		require.NoError(t, err)
		assert.Equal(t, promotion.StatusSubmitted, got.Status())
		require.NotNil(t, got.SubmittedAt())
		assert.Equal(t, fixedNow, *got.SubmittedAt())
	})

	t.Run("error: unmet rules fail validation and nothing is marked", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewPromotionBuilder()
		p := b.BuildDomain()
		tmpl := builder.NewTemplateBuilder().BuildDomain()

		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)
		f.promotions.EXPECT().Submit(gomock.Any(), gomock.Any(), p).Return(nil)
		f.reads.EXPECT().TemplateByID(gomock.Any(), p.TemplateID()).Return(tmpl, nil)
		f.reads.EXPECT().HeldBadgeKeys(gomock.Any(), p.ID()).Return(bronzeTechnical(1), nil)

		_, err := f.promotionCommands().Submit(ctx, b.Owner(), p.ID())

		var vf *commands.ValidationFailedError
		require.True(t, errs.As(err, &vf))
		require.Len(t, vf.Missing, 1)
		assert.Equal(t, 2, vf.Missing[0].Count)
		assert.Equal(t, badge.LevelBronze, vf.Missing[0].Level)
		assert.True(t, errs.Is(err, commands.ErrValidationFailed))
	})

	t.Run("error: non-owner is rejected before any write", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewPromotionBuilder().BuildDomain()
		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)

		_, err := f.promotionCommands().Submit(ctx, user.NewActor(uuid.New(), true), p.ID())

		assert.True(t, errs.Is(err, commands.ErrNotOwner))
	})

	t.Run("error: already submitted reports current status", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewPromotionBuilder().WithStatus(promotion.StatusSubmitted)
		p := b.BuildDomain()
		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)

		_, err := f.promotionCommands().Submit(ctx, b.Owner(), p.ID())

		var is *commands.InvalidStatusError
		require.True(t, errs.As(err, &is))
		assert.Equal(t, promotion.StatusSubmitted, is.Current)
	})

	t.Run("error: guard miss after concurrent submit reports fresh status", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewPromotionBuilder()
		p := b.BuildDomain()
		moved := builder.NewPromotionBuilder().With(func(pb *builder.PromotionBuilder) {
			pb.ID = p.ID()
			pb.CreatedBy = p.CreatedBy()
			pb.Status = promotion.StatusSubmitted
		}).BuildDomain()

		gomock.InOrder(
			f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil),
			f.promotions.EXPECT().Submit(gomock.Any(), gomock.Any(), p).Return(notFound("failed to submit promotion: status guard not met")),
			f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(moved, nil),
		)

		_, err := f.promotionCommands().Submit(ctx, b.Owner(), p.ID())

		var is *commands.InvalidStatusError
		require.True(t, errs.As(err, &is))
		assert.Equal(t, promotion.StatusSubmitted, is.Current)
	})

	t.Run("error: reserved applications changed status", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewPromotionBuilder()
		p := b.BuildDomain()
		tmpl := builder.NewTemplateBuilder().BuildDomain()

		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)
		f.promotions.EXPECT().Submit(gomock.Any(), gomock.Any(), p).Return(nil)
		f.reads.EXPECT().TemplateByID(gomock.Any(), p.TemplateID()).Return(tmpl, nil)
		f.reads.EXPECT().HeldBadgeKeys(gomock.Any(), p.ID()).Return(bronzeTechnical(3), nil)
		f.badgeApps.EXPECT().MarkUsedByPromotion(gomock.Any(), gomock.Any(), p.ID()).Return(int64(2), nil)
		f.reads.EXPECT().ActiveReservationCount(gomock.Any(), p.ID()).Return(int64(3), nil)

		_, err := f.promotionCommands().Submit(ctx, b.Owner(), p.ID())

		assert.True(t, errs.Is(err, commands.ErrReservationsStale))
	})

	t.Run("error: promotion not found", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.reads.EXPECT().PromotionByID(gomock.Any(), id).Return(nil, notFound("promotion not found"))

		_, err := f.promotionCommands().Submit(ctx, user.NewActor(uuid.New(), false), id)

		assert.True(t, errs.Is(err, commands.ErrPromotionNotFound))
	})
}

// =============================================================================
// Approve / Reject Tests
// =============================================================================

func TestPromotionCommands_Approve(t *testing.T) {
	ctx := context.Background()
	admin := user.NewActor(uuid.New(), true)

	t.Run("success: approved, executed and reservations consumed", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewPromotionBuilder().WithStatus(promotion.StatusSubmitted).BuildDomain()

		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)
		f.promotions.EXPECT().Approve(gomock.Any(), gomock.Any(), p).Return(nil)
		f.reservations.EXPECT().ConsumeAll(gomock.Any(), gomock.Any(), p.ID()).Return(int64(3), nil)
		f.expectAudit(shared.AuditPromotionApproved)

		got, err := f.promotionCommands().Approve(ctx, admin, p.ID())

		require.NoError(t, err)
		assert.Equal(t, promotion.StatusApproved, got.Status())
		assert.True(t, got.Executed())
		require.NotNil(t, got.ApprovedBy())
		assert.Equal(t, admin.UserID(), *got.ApprovedBy())
	})

	t.Run("error: member cannot approve", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewPromotionBuilder().WithStatus(promotion.StatusSubmitted)
		p := b.BuildDomain()
		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)

		_, err := f.promotionCommands().Approve(ctx, b.Owner(), p.ID())

		assert.True(t, errs.Is(err, commands.ErrForbidden))
	})

	t.Run("error: draft cannot be approved", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewPromotionBuilder().BuildDomain()
		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)

		_, err := f.promotionCommands().Approve(ctx, admin, p.ID())

		var is *commands.InvalidStatusError
		require.True(t, errs.As(err, &is))
		assert.Equal(t, promotion.StatusDraft, is.Current)
		assert.True(t, errs.Is(err, commands.ErrInvalidStatus))
	})
}

func TestPromotionCommands_Reject(t *testing.T) {
	ctx := context.Background()
	admin := user.NewActor(uuid.New(), true)

	t.Run("success: reservations released and applications reverted", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewPromotionBuilder().WithStatus(promotion.StatusSubmitted).BuildDomain()
		released := []uuid.UUID{uuid.New(), uuid.New()}

		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)
		f.promotions.EXPECT().Reject(gomock.Any(), gomock.Any(), p).Return(nil)
		f.reservations.EXPECT().ReleaseAll(gomock.Any(), gomock.Any(), p.ID()).Return(released, nil)
		f.badgeApps.EXPECT().RevertToAccepted(gomock.Any(), gomock.Any(), released).Return(int64(2), nil)
		f.expectAudit(shared.AuditPromotionRejected)

		got, err := f.promotionCommands().Reject(ctx, admin, p.ID(), "  needs more leadership evidence ")

		require.NoError(t, err)
		assert.Equal(t, promotion.StatusRejected, got.Status())
		require.NotNil(t, got.RejectReason())
		assert.Equal(t, "needs more leadership evidence", *got.RejectReason())
	})

	t.Run("error: blank reason is a validation error", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.promotionCommands().Reject(ctx, admin, uuid.New(), "   ")

		assert.True(t, errs.Is(err, promotion.ErrInvalidRejectReason))
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("error: release failure rolls back", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewPromotionBuilder().WithStatus(promotion.StatusSubmitted).BuildDomain()

		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)
		f.promotions.EXPECT().Reject(gomock.Any(), gomock.Any(), p).Return(nil)
		f.reservations.EXPECT().ReleaseAll(gomock.Any(), gomock.Any(), p.ID()).Return(nil, infra.WrapRepoErr("failed to release reservations", errDBDown))

		_, err := f.promotionCommands().Reject(ctx, admin, p.ID(), "no")

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Delete Tests
// =============================================================================

func TestPromotionCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success: admin deletes someone else's draft", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewPromotionBuilder().BuildDomain()

		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)
		f.promotions.EXPECT().LockDraft(gomock.Any(), gomock.Any(), p.ID(), fixedNow).Return(p, nil)
		f.reservations.EXPECT().ReleaseAll(gomock.Any(), gomock.Any(), p.ID()).Return([]uuid.UUID{uuid.New()}, nil)
		f.promotions.EXPECT().DeleteDraft(gomock.Any(), gomock.Any(), p.ID()).Return(nil)
		f.expectAudit(shared.AuditPromotionDeleted)

		err := f.promotionCommands().Delete(ctx, user.NewActor(uuid.New(), true), p.ID())

		assert.NoError(t, err)
	})

	t.Run("error: stranger cannot delete", func(t *testing.T) {
		f := newFixture(t)
		p := builder.NewPromotionBuilder().BuildDomain()
		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)

		err := f.promotionCommands().Delete(ctx, user.NewActor(uuid.New(), false), p.ID())

		assert.True(t, errs.Is(err, commands.ErrNotOwner))
	})

	t.Run("error: submitted promotion cannot be deleted", func(t *testing.T) {
		f := newFixture(t)
		b := builder.NewPromotionBuilder().WithStatus(promotion.StatusSubmitted)
		p := b.BuildDomain()
		f.reads.EXPECT().PromotionByID(gomock.Any(), p.ID()).Return(p, nil)

		err := f.promotionCommands().Delete(ctx, b.Owner(), p.ID())

		var is *commands.InvalidStatusError
		require.True(t, errs.As(err, &is))
		assert.Equal(t, promotion.StatusSubmitted, is.Current)
	})
}

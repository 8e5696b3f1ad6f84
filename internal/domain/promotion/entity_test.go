package promotion_test

import (
	"strings"
	"testing"
	"time"

	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/domain/user"
	"badge-promotion-engine/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewPromotion(t *testing.T) {
	t.Run("copies path and levels from the template", func(t *testing.T) {
		tmpl := builder.NewTemplateBuilder().BuildDomain()
		creator := uuid.New()

		p, err := promotion.NewPromotion(tmpl, creator, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, tmpl.ID(), p.TemplateID())
		assert.Equal(t, tmpl.Path(), p.Path())
		assert.Equal(t, "J2", p.FromLevel().String())
		assert.Equal(t, "S1", p.ToLevel().String())
		assert.Equal(t, creator, p.CreatedBy())
		assert.Equal(t, promotion.StatusDraft, p.Status())
		assert.False(t, p.Executed())
	})

	t.Run("inactive template", func(t *testing.T) {
		tmpl := builder.NewTemplateBuilder().With(func(b *builder.TemplateBuilder) { b.Active = false }).BuildDomain()

		_, err := promotion.NewPromotion(tmpl, uuid.New(), now)
		assert.ErrorIs(t, err, promotion.ErrTemplateInactive)
	})
}

func TestPromotion_Submit(t *testing.T) {
	t.Run("owner submits draft", func(t *testing.T) {
		b := builder.NewPromotionBuilder()
		p := b.BuildDomain()

		require.NoError(t, p.Submit(b.Owner(), now))
		assert.Equal(t, promotion.StatusSubmitted, p.Status())
		require.NotNil(t, p.SubmittedAt())
		assert.Equal(t, now, *p.SubmittedAt())
	})

	t.Run("admin is not the owner", func(t *testing.T) {
		p := builder.NewPromotionBuilder().BuildDomain()

		err := p.Submit(user.NewActor(uuid.New(), true), now)
		assert.ErrorIs(t, err, promotion.ErrNotOwner)
	})

	t.Run("already submitted", func(t *testing.T) {
		b := builder.NewPromotionBuilder().WithStatus(promotion.StatusSubmitted)
		p := b.BuildDomain()

		err := p.Submit(b.Owner(), now)
		var ite *promotion.InvalidTransitionError
		require.ErrorAs(t, err, &ite)
		assert.Equal(t, promotion.StatusSubmitted, ite.From)
	})
}

func TestPromotion_ApproveReject(t *testing.T) {
	admin := user.NewActor(uuid.New(), true)
	reason, err := promotion.NewRejectReason("  not enough leadership evidence ")
	require.NoError(t, err)

	t.Run("approve sets executed", func(t *testing.T) {
		p := builder.NewPromotionBuilder().WithStatus(promotion.StatusSubmitted).BuildDomain()

		require.NoError(t, p.Approve(admin, now))
		assert.Equal(t, promotion.StatusApproved, p.Status())
		assert.True(t, p.Executed())
		assert.Equal(t, admin.UserID(), *p.ApprovedBy())
	})

	t.Run("reject stores the trimmed reason", func(t *testing.T) {
		p := builder.NewPromotionBuilder().WithStatus(promotion.StatusSubmitted).BuildDomain()

		require.NoError(t, p.Reject(admin, reason, now))
		assert.Equal(t, promotion.StatusRejected, p.Status())
		assert.Equal(t, "not enough leadership evidence", *p.RejectReason())
		assert.False(t, p.Executed())
	})

	t.Run("non-admin", func(t *testing.T) {
		b := builder.NewPromotionBuilder().WithStatus(promotion.StatusSubmitted)
		p := b.BuildDomain()

		assert.ErrorIs(t, p.Approve(b.Owner(), now), promotion.ErrAdminRequired)
		assert.ErrorIs(t, p.Reject(b.Owner(), reason, now), promotion.ErrAdminRequired)
	})

	t.Run("terminal states refuse further moves", func(t *testing.T) {
		for _, st := range []promotion.Status{promotion.StatusApproved, promotion.StatusRejected, promotion.StatusDraft} {
			p := builder.NewPromotionBuilder().WithStatus(st).BuildDomain()
			var ite *promotion.InvalidTransitionError
			assert.ErrorAs(t, p.Approve(admin, now), &ite, st)
			assert.ErrorAs(t, p.Reject(admin, reason, now), &ite, st)
		}
	})
}

func TestPromotion_Access(t *testing.T) {
	b := builder.NewPromotionBuilder()
	p := b.BuildDomain()
	stranger := user.NewActor(uuid.New(), false)
	admin := user.NewActor(uuid.New(), true)

	assert.True(t, p.CanBeViewedBy(b.Owner()))
	assert.True(t, p.CanBeViewedBy(admin))
	assert.False(t, p.CanBeViewedBy(stranger))

	assert.NoError(t, p.EnsureEditableBy(b.Owner()))
	assert.ErrorIs(t, p.EnsureEditableBy(admin), promotion.ErrNotOwner)
	assert.NoError(t, p.EnsureDeletableBy(admin))
	assert.ErrorIs(t, p.EnsureDeletableBy(stranger), promotion.ErrNotOwner)

	submitted := builder.NewPromotionBuilder().WithOwner(b.CreatedBy).WithStatus(promotion.StatusSubmitted).BuildDomain()
	var ite *promotion.InvalidTransitionError
	assert.ErrorAs(t, submitted.EnsureEditableBy(b.Owner()), &ite)
	assert.ErrorAs(t, submitted.EnsureDeletableBy(admin), &ite)
}

func TestNewRejectReason(t *testing.T) {
	_, err := promotion.NewRejectReason("   ")
	assert.ErrorIs(t, err, promotion.ErrInvalidRejectReason)

	_, err = promotion.NewRejectReason(strings.Repeat("a", promotion.MaxRejectReasonLength))
	assert.NoError(t, err)

	_, err = promotion.NewRejectReason(strings.Repeat("a", promotion.MaxRejectReasonLength+1))
	assert.ErrorIs(t, err, promotion.ErrInvalidRejectReason)

	_, err = promotion.NewRejectReason(strings.Repeat("ż", promotion.MaxRejectReasonLength))
	assert.NoError(t, err)
}

func TestPositionLevel(t *testing.T) {
	_, err := promotion.NewPositionLevel("")
	assert.ErrorIs(t, err, promotion.ErrInvalidPositionLevel)
	_, err = promotion.NewPositionLevel(strings.Repeat("X", promotion.MaxPositionLevelLength+1))
	assert.ErrorIs(t, err, promotion.ErrInvalidPositionLevel)
	l, err := promotion.NewPositionLevel(" S2 ")
	require.NoError(t, err)
	assert.Equal(t, "S2", l.String())
}

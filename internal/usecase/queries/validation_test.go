//go:build unit

package queries_test

import (
	"context"
	"testing"

	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/domain/user"
	"badge-promotion-engine/internal/pkg/errs"
	queriesmock "badge-promotion-engine/internal/testutil/mock/queries"
	"badge-promotion-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestValidationQueries_Validate(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	rules := []promotion.Rule{
		{Category: promotion.ExactCategory(badge.CategoryTechnical), Level: badge.LevelSilver, Count: 2},
		{Category: promotion.AnyCategory(), Level: badge.LevelBronze, Count: 1},
	}
	input := func(id uuid.UUID, held ...badge.Key) *queries.ValidationInput {
		return &queries.ValidationInput{PromotionID: id, CreatedBy: owner, Rules: rules, Held: held}
	}
	silverTech := badge.Key{Category: badge.CategoryTechnical, Level: badge.LevelSilver}
	goldTech := badge.Key{Category: badge.CategoryTechnical, Level: badge.LevelGold}
	bronzeOther := badge.Key{Category: badge.CategoryOrganizational, Level: badge.LevelBronze}

	t.Run("valid when every rule is met", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockValidationReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().LoadValidationInput(ctx, id).Return(input(id, silverTech, silverTech, bronzeOther), nil)

		view, err := queries.NewValidationQueries(store).Validate(ctx, id, user.NewActor(owner, false))

		require.NoError(t, err)
		assert.True(t, view.IsValid)
		assert.Empty(t, view.Missing)
		assert.Len(t, view.Requirements, 2)
	})

	t.Run("higher level does not count toward a lower rule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockValidationReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().LoadValidationInput(ctx, id).Return(input(id, silverTech, goldTech, bronzeOther), nil)

		view, err := queries.NewValidationQueries(store).Validate(ctx, id, user.NewActor(uuid.New(), true))

		require.NoError(t, err)
		assert.False(t, view.IsValid)
		require.Len(t, view.Missing, 1)
		assert.Equal(t, badge.LevelSilver, view.Missing[0].Level)
		assert.Equal(t, 1, view.Missing[0].Count)
	})

	t.Run("hidden from other members", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockValidationReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().LoadValidationInput(ctx, id).Return(input(id), nil)

		_, err := queries.NewValidationQueries(store).Validate(ctx, id, user.NewActor(uuid.New(), false))

		assert.True(t, errs.Is(err, queries.ErrPromotionNotFound))
	})
}

//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/infra"
	"badge-promotion-engine/internal/infra/readstore"
	sqlc "badge-promotion-engine/internal/infra/sqlc/generated"
	"badge-promotion-engine/internal/pkg/pgconv"
	readstoremock "badge-promotion-engine/internal/testutil/mock/readstore"
	"badge-promotion-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func promotionRow(id, templateID uuid.UUID) sqlc.Promotions {
	return sqlc.Promotions{
		ID:         id,
		TemplateID: templateID,
		Path:       "technical",
		FromLevel:  "J2",
		ToLevel:    "S1",
		CreatedBy:  uuid.New(),
		Status:     "draft",
		CreatedAt:  pgconv.TimeToPgtype(fixedTime),
		UpdatedAt:  pgconv.TimeToPgtype(fixedTime),
	}
}

func templateRow(id uuid.UUID, rules string) sqlc.PromotionTemplates {
	return sqlc.PromotionTemplates{
		ID:        id,
		Name:      "Technical J2 to S1",
		Path:      "technical",
		FromLevel: "J2",
		ToLevel:   "S1",
		Rules:     []byte(rules),
		IsActive:  true,
		CreatedAt: pgconv.TimeToPgtype(fixedTime),
		UpdatedAt: pgconv.TimeToPgtype(fixedTime),
	}
}

// =============================================================================
// FindDetailByID Tests
// =============================================================================

func TestPromotionReadStore_FindDetailByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockPromotionReadQueries, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		expectBadges  int
	}{
		{
			name: "success: promotion with badges",
			setupMock: func(m *readstoremock.MockPromotionReadQueries, id uuid.UUID) {
				m.EXPECT().GetPromotionViewByID(ctx, gomock.Any(), id).Return(sqlc.GetPromotionViewByIDRow{
					ID:           id,
					TemplateName: "Technical J2 to S1",
					Status:       "submitted",
					SubmittedAt:  pgconv.TimeToPgtype(fixedTime),
					CreatedAt:    pgconv.TimeToPgtype(fixedTime),
					UpdatedAt:    pgconv.TimeToPgtype(fixedTime),
				}, nil)
				m.EXPECT().ListPromotionBadgeViews(ctx, gomock.Any(), id).Return([]sqlc.ListPromotionBadgeViewsRow{
					{BadgeApplicationID: uuid.New(), Category: "technical", Level: "bronze", AssignedAt: pgconv.TimeToPgtype(fixedTime)},
					{BadgeApplicationID: uuid.New(), Category: "softskilled", Level: "gold", AssignedAt: pgconv.TimeToPgtype(fixedTime)},
				}, nil)
			},
			expectBadges: 2,
		},
		{
			name: "error: promotion not found",
			setupMock: func(m *readstoremock.MockPromotionReadQueries, id uuid.UUID) {
				m.EXPECT().GetPromotionViewByID(ctx, gomock.Any(), id).Return(sqlc.GetPromotionViewByIDRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: badge listing fails",
			setupMock: func(m *readstoremock.MockPromotionReadQueries, id uuid.UUID) {
				m.EXPECT().GetPromotionViewByID(ctx, gomock.Any(), id).Return(sqlc.GetPromotionViewByIDRow{ID: id}, nil)
				m.EXPECT().ListPromotionBadgeViews(ctx, gomock.Any(), id).Return(nil, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockPromotionReadQueries(ctrl)
			store := readstore.NewPromotionReadStore(mockQueries, &mockDBTX{})
			id := uuid.New()
			tc.setupMock(mockQueries, id)

			result, actualError := store.FindDetailByID(ctx, id)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, actualError)
				assert.Nil(t, result, "result should be nil when error occurs")
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, id, result.Promotion.ID)
			require.NotNil(t, result.Promotion.SubmittedAt)
			assert.True(t, fixedTime.Equal(*result.Promotion.SubmittedAt))
			assert.Len(t, result.Badges, tc.expectBadges)
		})
	}
}

// =============================================================================
// LoadValidationInput Tests
// =============================================================================

func TestPromotionReadStore_LoadValidationInput(t *testing.T) {
	ctx := context.Background()
	rules := `[{"category":"technical","level":"silver","count":2},{"category":"any","level":"bronze","count":1}]`

	t.Run("success: rules and held keys from one read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockPromotionReadQueries(ctrl)
		id, templateID := uuid.New(), uuid.New()
		row := promotionRow(id, templateID)

		m.EXPECT().GetPromotionByID(ctx, gomock.Any(), id).Return(row, nil)
		m.EXPECT().GetPromotionTemplateByID(ctx, gomock.Any(), templateID).Return(templateRow(templateID, rules), nil)
		m.EXPECT().ListHeldBadgeKeys(ctx, gomock.Any(), id).Return([]sqlc.ListHeldBadgeKeysRow{
			{Category: "technical", Level: "silver"},
			{Category: "organizational", Level: "bronze"},
		}, nil)

		input, err := readstore.NewPromotionReadStore(m, &mockDBTX{}).LoadValidationInput(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, row.CreatedBy, input.CreatedBy)
		require.Len(t, input.Rules, 2)
		assert.True(t, input.Rules[1].Category.IsAny())
		assert.Equal(t, []badge.Key{
			{Category: badge.CategoryTechnical, Level: badge.LevelSilver},
			{Category: badge.CategoryOrganizational, Level: badge.LevelBronze},
		}, input.Held)
	})

	t.Run("error: dangling template is a data integrity failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockPromotionReadQueries(ctrl)
		id, templateID := uuid.New(), uuid.New()

		m.EXPECT().GetPromotionByID(ctx, gomock.Any(), id).Return(promotionRow(id, templateID), nil)
		m.EXPECT().GetPromotionTemplateByID(ctx, gomock.Any(), templateID).Return(sqlc.PromotionTemplates{}, pgx.ErrNoRows)

		_, err := readstore.NewPromotionReadStore(m, &mockDBTX{}).LoadValidationInput(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindDataIntegrity))
	})

	t.Run("error: malformed rules", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockPromotionReadQueries(ctrl)
		id, templateID := uuid.New(), uuid.New()

		m.EXPECT().GetPromotionByID(ctx, gomock.Any(), id).Return(promotionRow(id, templateID), nil)
		m.EXPECT().GetPromotionTemplateByID(ctx, gomock.Any(), templateID).Return(templateRow(templateID, `[]`), nil)

		_, err := readstore.NewPromotionReadStore(m, &mockDBTX{}).LoadValidationInput(ctx, id)

		assert.True(t, infra.IsKind(err, infra.KindDataIntegrity))
	})
}

// =============================================================================
// FindFirstPage / FindKeyset Tests
// =============================================================================

func TestPromotionReadStore_FindFirstPage(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	submitted := promotion.StatusSubmitted

	testCases := []struct {
		name           string
		filters        queries.PromotionFilters
		expectedParams sqlc.ListPromotionsFirstPageParams
	}{
		{
			name:    "no filters",
			filters: queries.PromotionFilters{},
			expectedParams: sqlc.ListPromotionsFirstPageParams{
				RowLimit: 21,
			},
		},
		{
			name:    "creator and status",
			filters: queries.PromotionFilters{CreatedBy: &owner, Status: &submitted},
			expectedParams: sqlc.ListPromotionsFirstPageParams{
				CreatedBy: pgtype.UUID{Bytes: owner, Valid: true},
				Status:    pgtype.Text{String: "submitted", Valid: true},
				RowLimit:  21,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := readstoremock.NewMockPromotionReadQueries(ctrl)
			m.EXPECT().ListPromotionsFirstPage(ctx, gomock.Any(), tc.expectedParams).Return([]sqlc.ListPromotionsFirstPageRow{
				{ID: uuid.New(), BadgeCount: 3, CreatedAt: pgconv.TimeToPgtype(fixedTime)},
			}, nil)

			items, err := readstore.NewPromotionReadStore(m, &mockDBTX{}).FindFirstPage(ctx, tc.filters, 21)

			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, int32(3), items[0].BadgeCount)
			assert.True(t, fixedTime.Equal(items[0].CreatedAt))
		})
	}
}

func TestPromotionReadStore_FindKeyset(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m := readstoremock.NewMockPromotionReadQueries(ctrl)
	lastID := uuid.New()

	m.EXPECT().ListPromotionsKeyset(ctx, gomock.Any(), sqlc.ListPromotionsKeysetParams{
		AfterCreatedAt: pgconv.TimeToPgtype(fixedTime),
		AfterID:        lastID,
		RowLimit:       11,
	}).Return(nil, errDBConnectionLost)

	_, err := readstore.NewPromotionReadStore(m, &mockDBTX{}).FindKeyset(ctx, queries.PromotionFilters{}, fixedTime, lastID, 11)

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}

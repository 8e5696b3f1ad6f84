//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/domain/user"
	"badge-promotion-engine/internal/infra"
	"badge-promotion-engine/internal/pkg/errs"
	queriesmock "badge-promotion-engine/internal/testutil/mock/queries"
	"badge-promotion-engine/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnectionLost = errors.New("database connection lost")

func detailOwnedBy(owner uuid.UUID) *queries.PromotionDetail {
	return &queries.PromotionDetail{
		Promotion: &queries.PromotionView{ID: uuid.New(), CreatedBy: owner, Status: string(promotion.StatusDraft)},
		Badges:    []*queries.PromotionBadgeView{},
	}
}

func listItems(n int) []*queries.PromotionListItem {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := make([]*queries.PromotionListItem, n)
	for i := range items {
		items[i] = &queries.PromotionListItem{ID: uuid.New(), CreatedAt: base.Add(-time.Duration(i) * time.Minute)}
	}
	return items
}

// =============================================================================
// GetByID Tests
// =============================================================================

func TestPromotionQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	testCases := []struct {
		name      string
		actor     user.Actor
		setupMock func(*queriesmock.MockPromotionReadStore, uuid.UUID)
		wantErr   error
	}{
		{
			name:  "success: owner sees own promotion",
			actor: user.NewActor(owner, false),
			setupMock: func(m *queriesmock.MockPromotionReadStore, id uuid.UUID) {
				m.EXPECT().FindDetailByID(ctx, id).Return(detailOwnedBy(owner), nil)
			},
		},
		{
			name:  "success: admin sees any promotion",
			actor: user.NewActor(uuid.New(), true),
			setupMock: func(m *queriesmock.MockPromotionReadStore, id uuid.UUID) {
				m.EXPECT().FindDetailByID(ctx, id).Return(detailOwnedBy(owner), nil)
			},
		},
		{
			name:  "error: other member gets not found",
			actor: user.NewActor(uuid.New(), false),
			setupMock: func(m *queriesmock.MockPromotionReadStore, id uuid.UUID) {
				m.EXPECT().FindDetailByID(ctx, id).Return(detailOwnedBy(owner), nil)
			},
			wantErr: queries.ErrPromotionNotFound,
		},
		{
			name:  "error: missing promotion",
			actor: user.NewActor(owner, false),
			setupMock: func(m *queriesmock.MockPromotionReadStore, id uuid.UUID) {
				m.EXPECT().FindDetailByID(ctx, id).Return(nil, infra.WrapRepoErr("promotion not found", pgx.ErrNoRows, infra.KindNotFound))
			},
			wantErr: queries.ErrPromotionNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockPromotionReadStore(ctrl)
			id := uuid.New()
			tc.setupMock(store, id)

			detail, err := queries.NewPromotionQueries(store).GetByID(ctx, id, tc.actor)

			if tc.wantErr != nil {
				assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				assert.Nil(t, detail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, owner, detail.Promotion.CreatedBy)
		})
	}
}

// =============================================================================
// List Tests
// =============================================================================

func TestPromotionQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("member filter is forced to self", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPromotionReadStore(ctrl)
		member := user.NewActor(uuid.New(), false)
		other := uuid.New()

		store.EXPECT().FindFirstPage(ctx, gomock.Any(), int32(queries.DefaultListLimit+1)).DoAndReturn(
			func(_ context.Context, f queries.PromotionFilters, _ int32) ([]*queries.PromotionListItem, error) {
				require.NotNil(t, f.CreatedBy)
				assert.Equal(t, member.UserID(), *f.CreatedBy)
				return nil, nil
			},
		)

		_, _, err := queries.NewPromotionQueries(store).List(ctx, member, queries.PromotionFilters{CreatedBy: &other}, nil, 0)

		assert.NoError(t, err)
	})

	t.Run("admin filters pass through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPromotionReadStore(ctrl)
		status := promotion.StatusSubmitted
		filters := queries.PromotionFilters{Status: &status}

		store.EXPECT().FindFirstPage(ctx, filters, int32(11)).Return(nil, nil)

		_, _, err := queries.NewPromotionQueries(store).List(ctx, user.NewActor(uuid.New(), true), filters, nil, 10)

		assert.NoError(t, err)
	})

	t.Run("extra row produces next cursor from last kept item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPromotionReadStore(ctrl)
		items := listItems(4)

		store.EXPECT().FindFirstPage(ctx, gomock.Any(), int32(4)).Return(items, nil)

		rows, next, err := queries.NewPromotionQueries(store).List(ctx, user.NewActor(uuid.New(), true), queries.PromotionFilters{}, nil, 3)

		require.NoError(t, err)
		if diff := cmp.Diff(items[:3], rows); diff != "" {
			t.Errorf("rows mismatch (-want +got):\n%s", diff)
		}
		require.NotNil(t, next)
		ts, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, items[2].ID, id)
		assert.True(t, items[2].CreatedAt.Equal(ts))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPromotionReadStore(ctrl)
		store.EXPECT().FindFirstPage(ctx, gomock.Any(), gomock.Any()).Return(listItems(2), nil)

		rows, next, err := queries.NewPromotionQueries(store).List(ctx, user.NewActor(uuid.New(), true), queries.PromotionFilters{}, nil, 3)

		require.NoError(t, err)
		assert.Len(t, rows, 2)
		assert.Nil(t, next)
	})

	t.Run("cursor switches to keyset query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPromotionReadStore(ctrl)
		lastAt := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)
		lastID := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(lastAt, lastID)}

		store.EXPECT().FindKeyset(ctx, gomock.Any(), lastAt, lastID, int32(queries.DefaultListLimit+1)).Return(nil, nil)

		_, _, err := queries.NewPromotionQueries(store).List(ctx, user.NewActor(uuid.New(), true), queries.PromotionFilters{}, cursor, 0)

		assert.NoError(t, err)
	})

	t.Run("garbage cursor is a validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPromotionReadStore(ctrl)

		_, _, err := queries.NewPromotionQueries(store).List(ctx, user.NewActor(uuid.New(), true), queries.PromotionFilters{}, &queries.Cursor{After: "garbage"}, 0)

		assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("store failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPromotionReadStore(ctrl)
		store.EXPECT().FindFirstPage(ctx, gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to list promotions", errDBConnectionLost))

		_, _, err := queries.NewPromotionQueries(store).List(ctx, user.NewActor(uuid.New(), true), queries.PromotionFilters{}, nil, 0)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

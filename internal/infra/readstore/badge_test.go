//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/infra"
	"badge-promotion-engine/internal/infra/readstore"
	sqlc "badge-promotion-engine/internal/infra/sqlc/generated"
	readstoremock "badge-promotion-engine/internal/testutil/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBadgeReadStore_FindForReservation(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        sqlc.GetBadgeApplicationForReservationRow
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: accepted application",
			row: sqlc.GetBadgeApplicationForReservationRow{
				Status: "accepted", Category: "technical", Level: "gold", Title: "Distributed tracing", BadgeDefinitionVersionSnapshot: 2,
			},
		},
		{name: "error: not found", queryErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: connection lost", queryErr: errDBConnectionLost, expectKind: infra.KindDBFailure},
		{
			name:       "error: unknown level stored",
			row:        sqlc.GetBadgeApplicationForReservationRow{Status: "accepted", Category: "technical", Level: "platinum"},
			expectKind: infra.KindDataIntegrity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := readstoremock.NewMockBadgeReadQueries(ctrl)
			id := uuid.New()
			tc.row.ID = id
			m.EXPECT().GetBadgeApplicationForReservation(ctx, gomock.Any(), id).Return(tc.row, tc.queryErr)

			app, err := readstore.NewBadgeReadStore(m, &mockDBTX{}).FindForReservation(ctx, id)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, app)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, badge.StatusAccepted, app.Status())
			assert.Equal(t, badge.LevelGold, app.Level())
			assert.Equal(t, 2, app.DefinitionVersion())
		})
	}
}

func TestBadgeReadStore_ActiveReservationOwner(t *testing.T) {
	ctx := context.Background()

	t.Run("owner found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockBadgeReadQueries(ctrl)
		id, owner := uuid.New(), uuid.New()
		m.EXPECT().GetActiveReservationOwner(ctx, gomock.Any(), id).Return(owner, nil)

		got, err := readstore.NewBadgeReadStore(m, &mockDBTX{}).ActiveReservationOwner(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, owner, got)
	})

	t.Run("no active reservation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m := readstoremock.NewMockBadgeReadQueries(ctrl)
		m.EXPECT().GetActiveReservationOwner(ctx, gomock.Any(), gomock.Any()).Return(uuid.Nil, pgx.ErrNoRows)

		_, err := readstore.NewBadgeReadStore(m, &mockDBTX{}).ActiveReservationOwner(ctx, uuid.New())

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBadgeReadStore_HeldBadgeKeys(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m := readstoremock.NewMockBadgeReadQueries(ctrl)
	id := uuid.New()
	m.EXPECT().ListHeldBadgeKeys(ctx, gomock.Any(), id).Return([]sqlc.ListHeldBadgeKeysRow{
		{Category: "technical", Level: "bronze"},
		{Category: "unknown", Level: "bronze"},
	}, nil)

	_, err := readstore.NewBadgeReadStore(m, &mockDBTX{}).HeldBadgeKeys(ctx, id)

	assert.True(t, infra.IsKind(err, infra.KindDataIntegrity))
}

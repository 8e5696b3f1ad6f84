package pgconv_test

import (
	"testing"
	"time"

	"badge-promotion-engine/internal/pkg/errs"
	"badge-promotion-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestNullableConversions(t *testing.T) {
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgtype.UUID{}))
	assert.Nil(t, pgconv.StringPtrFromPgtype(pgtype.Text{}))
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))

	id := uuid.New()
	assert.Equal(t, id, *pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id)))

	s := "reason"
	assert.Equal(t, s, *pgconv.StringPtrFromPgtype(pgconv.StringPtrToPgtype(&s)))

	now := time.Date(2026, 2, 2, 2, 2, 2, 0, time.UTC)
	assert.Equal(t, now, *pgconv.TimePtrFromPgtype(pgconv.TimePtrToPgtype(&now)))
	assert.False(t, pgconv.TimePtrToPgtype(nil).Valid)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(errs.Wrap(pgx.ErrNoRows, "find promotion")))
	assert.False(t, pgconv.IsNoRows(errs.New("boom")))
}

//go:build integration

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// CreateDefinition inserts an active badge definition.
func CreateDefinition(t *testing.T, db DBLike, category, level string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO badge_definitions (title, category, level)
		VALUES ($1, $2, $3)
		RETURNING id`,
		category+" "+level, category, level,
	).Scan(&id)
	require.NoError(t, err, "failed to create badge definition")
	return id
}

func CreateApplication(t *testing.T, db DBLike, definitionID, applicantID uuid.UUID, status string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO badge_applications (applicant_id, badge_definition_id, badge_definition_version_snapshot, status)
		VALUES ($1, $2, 1, $3)
		RETURNING id`,
		applicantID, definitionID, status,
	).Scan(&id)
	require.NoError(t, err, "failed to create badge application")
	return id
}

// CreateTemplate inserts a template; rules is the raw JSON array stored in
// the rules column.
func CreateTemplate(t *testing.T, db DBLike, rules string, active bool) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO promotion_templates (name, path, from_level, to_level, rules, is_active)
		VALUES ('Engineer to Senior', 'technical', 'L2', 'L3', $1::jsonb, $2)
		RETURNING id`,
		rules, active,
	).Scan(&id)
	require.NoError(t, err, "failed to create promotion template")
	return id
}

func ApplicationStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		`SELECT status FROM badge_applications WHERE id = $1`, id,
	).Scan(&status)
	require.NoError(t, err)
	return status
}

func PromotionStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		`SELECT status FROM promotions WHERE id = $1`, id,
	).Scan(&status)
	require.NoError(t, err)
	return status
}

// ActiveReservations counts unconsumed reservations on one badge application.
func ActiveReservations(t *testing.T, db DBLike, badgeApplicationID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM promotion_badges WHERE badge_application_id = $1 AND consumed = false`,
		badgeApplicationID,
	).Scan(&n)
	require.NoError(t, err)
	return n
}

func ConsumedReservations(t *testing.T, db DBLike, promotionID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		`SELECT count(*) FROM promotion_badges WHERE promotion_id = $1 AND consumed = true`,
		promotionID,
	).Scan(&n)
	require.NoError(t, err)
	return n
}

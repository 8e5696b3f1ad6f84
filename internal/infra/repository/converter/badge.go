package converter

import (
	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/domain/reservation"
	sqlc "badge-promotion-engine/internal/infra/sqlc/generated"
	"badge-promotion-engine/internal/pkg/errs"
	"badge-promotion-engine/internal/pkg/pgconv"
)

func BadgeApplicationFromRow(row sqlc.GetBadgeApplicationForReservationRow) (*badge.Application, error) {
	category, err := badge.NewCategory(row.Category)
	if err != nil {
		return nil, errs.Wrapf(err, "badge application %s has invalid category", row.ID)
	}
	level, err := badge.NewLevel(row.Level)
	if err != nil {
		return nil, errs.Wrapf(err, "badge application %s has invalid level", row.ID)
	}
	status, err := badge.NewApplicationStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "badge application %s has invalid status", row.ID)
	}

	return badge.ReconstructApplication(
		row.ID,
		row.ApplicantID,
		row.BadgeDefinitionID,
		int(row.BadgeDefinitionVersionSnapshot),
		row.Title,
		category,
		level,
		status,
	), nil
}

func BadgeKeyFromRow(row sqlc.ListHeldBadgeKeysRow) (badge.Key, error) {
	category, err := badge.NewCategory(row.Category)
	if err != nil {
		return badge.Key{}, err
	}
	level, err := badge.NewLevel(row.Level)
	if err != nil {
		return badge.Key{}, err
	}
	return badge.Key{Category: category, Level: level}, nil
}

func ReservationToInsertParams(res *reservation.Reservation) sqlc.InsertPromotionBadgeParams {
	return sqlc.InsertPromotionBadgeParams{
		ID:                 res.ID(),
		PromotionID:        res.PromotionID(),
		BadgeApplicationID: res.BadgeApplicationID(),
		AssignedBy:         res.AssignedBy(),
		AssignedAt:         pgconv.TimeToPgtype(res.AssignedAt()),
	}
}

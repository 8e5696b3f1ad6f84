package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Reservation binds a badge application to a promotion. While unconsumed it is
// exclusive: no other promotion may hold the same badge application.
type Reservation struct {
	id                 uuid.UUID
	promotionID        uuid.UUID
	badgeApplicationID uuid.UUID
	assignedBy         uuid.UUID
	assignedAt         time.Time
	consumed           bool
}

func NewReservation(promotionID, badgeApplicationID, assignedBy uuid.UUID, now time.Time) *Reservation {
	return &Reservation{
		id:                 uuid.New(),
		promotionID:        promotionID,
		badgeApplicationID: badgeApplicationID,
		assignedBy:         assignedBy,
		assignedAt:         now,
	}
}

func Reconstruct(id, promotionID, badgeApplicationID, assignedBy uuid.UUID, assignedAt time.Time, consumed bool) *Reservation {
	return &Reservation{
		id:                 id,
		promotionID:        promotionID,
		badgeApplicationID: badgeApplicationID,
		assignedBy:         assignedBy,
		assignedAt:         assignedAt,
		consumed:           consumed,
	}
}

func (r *Reservation) ID() uuid.UUID                 { return r.id }
func (r *Reservation) PromotionID() uuid.UUID        { return r.promotionID }
func (r *Reservation) BadgeApplicationID() uuid.UUID { return r.badgeApplicationID }
func (r *Reservation) AssignedBy() uuid.UUID         { return r.assignedBy }
func (r *Reservation) AssignedAt() time.Time         { return r.assignedAt }
func (r *Reservation) Consumed() bool                { return r.consumed }

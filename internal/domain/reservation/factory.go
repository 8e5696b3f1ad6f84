package reservation

import (
	"badge-promotion-engine/internal/pkg/clock"

	"github.com/google/uuid"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// ForBatch builds one unconsumed reservation per id, all stamped with the same time.
func (f *Factory) ForBatch(promotionID, assignedBy uuid.UUID, batch Batch) []*Reservation {
	now := f.Clock.Now()
	out := make([]*Reservation, 0, batch.Len())
	for _, id := range batch.ids {
		out = append(out, NewReservation(promotionID, id, assignedBy, now))
	}
	return out
}

package reservation

import (
	"badge-promotion-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

const MaxBatchSize = 100

var (
	ErrEmptyBatch     = errs.Validation("at least one badge application id is required")
	ErrBatchTooLarge  = errs.Validation("at most 100 badge application ids per request")
	ErrDuplicateBadge = errs.Validation("badge application ids must be distinct")
	ErrNilBadgeID     = errs.Validation("badge application id must not be empty")
)

// Batch is a non-empty ordered set of distinct badge application ids.
type Batch struct {
	ids []uuid.UUID
}

func NewBatch(ids []uuid.UUID) (Batch, error) {
	if len(ids) == 0 {
		return Batch{}, ErrEmptyBatch
	}
	if len(ids) > MaxBatchSize {
		return Batch{}, ErrBatchTooLarge
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return Batch{}, ErrNilBadgeID
		}
		if _, dup := seen[id]; dup {
			return Batch{}, ErrDuplicateBadge
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return Batch{ids: out}, nil
}

func (b Batch) IDs() []uuid.UUID {
	out := make([]uuid.UUID, len(b.ids))
	copy(out, b.ids)
	return out
}

func (b Batch) Len() int { return len(b.ids) }

package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AuditEventType string

const (
	AuditPromotionCreated        AuditEventType = "promotion.created"
	AuditPromotionDeleted        AuditEventType = "promotion.deleted"
	AuditPromotionBadgesReserved AuditEventType = "promotion.badges_reserved"
	AuditPromotionBadgesReleased AuditEventType = "promotion.badges_released"
	AuditPromotionSubmitted      AuditEventType = "promotion.submitted"
	AuditPromotionApproved       AuditEventType = "promotion.approved"
	AuditPromotionRejected       AuditEventType = "promotion.rejected"
)

type AuditEvent struct {
	ID          uuid.UUID      `json:"id"`
	Type        AuditEventType `json:"type"`
	PromotionID uuid.UUID      `json:"promotionId"`
	ActorID     uuid.UUID      `json:"actorId"`
	OccurredAt  time.Time      `json:"occurredAt"`
	TraceID     string         `json:"traceId,omitempty"`
	Payload     map[string]any `json:"payload,omitempty"`
}

// AuditSink records committed mutations. Record must not block on I/O and
// never fails the caller; delivery is best effort.
type AuditSink interface {
	Record(ctx context.Context, event AuditEvent)
}

package promotion

import (
	"fmt"
	"time"

	"badge-promotion-engine/internal/domain/user"
	"badge-promotion-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotOwner      = errs.New("actor is not the promotion owner")
	ErrAdminRequired = errs.New("operation requires an administrator")
)

// InvalidTransitionError reports a lifecycle move attempted from the wrong state.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot move promotion from %s to %s", e.From, e.To)
}

type Promotion struct {
	id           uuid.UUID
	templateID   uuid.UUID
	path         Path
	fromLevel    PositionLevel
	toLevel      PositionLevel
	createdBy    uuid.UUID
	status       Status
	submittedAt  *time.Time
	approvedAt   *time.Time
	approvedBy   *uuid.UUID
	rejectedAt   *time.Time
	rejectedBy   *uuid.UUID
	rejectReason *string
	executed     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// Snapshot carries every persisted field of a promotion.
type Snapshot struct {
	ID           uuid.UUID
	TemplateID   uuid.UUID
	Path         Path
	FromLevel    PositionLevel
	ToLevel      PositionLevel
	CreatedBy    uuid.UUID
	Status       Status
	SubmittedAt  *time.Time
	ApprovedAt   *time.Time
	ApprovedBy   *uuid.UUID
	RejectedAt   *time.Time
	RejectedBy   *uuid.UUID
	RejectReason *string
	Executed     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewPromotion opens a draft for creator from an active template.
func NewPromotion(tmpl *Template, creator uuid.UUID, now time.Time) (*Promotion, error) {
	if !tmpl.IsActive() {
		return nil, ErrTemplateInactive
	}
	return &Promotion{
		id:         uuid.New(),
		templateID: tmpl.ID(),
		path:       tmpl.Path(),
		fromLevel:  tmpl.FromLevel(),
		toLevel:    tmpl.ToLevel(),
		createdBy:  creator,
		status:     StatusDraft,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func Reconstruct(s Snapshot) *Promotion {
	return &Promotion{
		id:           s.ID,
		templateID:   s.TemplateID,
		path:         s.Path,
		fromLevel:    s.FromLevel,
		toLevel:      s.ToLevel,
		createdBy:    s.CreatedBy,
		status:       s.Status,
		submittedAt:  s.SubmittedAt,
		approvedAt:   s.ApprovedAt,
		approvedBy:   s.ApprovedBy,
		rejectedAt:   s.RejectedAt,
		rejectedBy:   s.RejectedBy,
		rejectReason: s.RejectReason,
		executed:     s.Executed,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
	}
}

func (p *Promotion) Snapshot() Snapshot {
	return Snapshot{
		ID:           p.id,
		TemplateID:   p.templateID,
		Path:         p.path,
		FromLevel:    p.fromLevel,
		ToLevel:      p.toLevel,
		CreatedBy:    p.createdBy,
		Status:       p.status,
		SubmittedAt:  p.submittedAt,
		ApprovedAt:   p.approvedAt,
		ApprovedBy:   p.approvedBy,
		RejectedAt:   p.rejectedAt,
		RejectedBy:   p.rejectedBy,
		RejectReason: p.rejectReason,
		Executed:     p.executed,
		CreatedAt:    p.createdAt,
		UpdatedAt:    p.updatedAt,
	}
}

func (p *Promotion) ID() uuid.UUID            { return p.id }
func (p *Promotion) TemplateID() uuid.UUID    { return p.templateID }
func (p *Promotion) Path() Path               { return p.path }
func (p *Promotion) FromLevel() PositionLevel { return p.fromLevel }
func (p *Promotion) ToLevel() PositionLevel   { return p.toLevel }
func (p *Promotion) CreatedBy() uuid.UUID     { return p.createdBy }
func (p *Promotion) Status() Status           { return p.status }
func (p *Promotion) SubmittedAt() *time.Time  { return p.submittedAt }
func (p *Promotion) ApprovedAt() *time.Time   { return p.approvedAt }
func (p *Promotion) ApprovedBy() *uuid.UUID   { return p.approvedBy }
func (p *Promotion) RejectedAt() *time.Time   { return p.rejectedAt }
func (p *Promotion) RejectedBy() *uuid.UUID   { return p.rejectedBy }
func (p *Promotion) RejectReason() *string    { return p.rejectReason }
func (p *Promotion) Executed() bool           { return p.executed }
func (p *Promotion) CreatedAt() time.Time     { return p.createdAt }
func (p *Promotion) UpdatedAt() time.Time     { return p.updatedAt }

func (p *Promotion) IsOwnedBy(actor user.Actor) bool {
	return actor.Is(p.createdBy)
}

// CanBeViewedBy hides promotions from everyone but their owner and admins.
func (p *Promotion) CanBeViewedBy(actor user.Actor) bool {
	return actor.IsAdmin() || p.IsOwnedBy(actor)
}

// EnsureEditableBy guards badge reservation changes.
func (p *Promotion) EnsureEditableBy(actor user.Actor) error {
	if !p.IsOwnedBy(actor) {
		return ErrNotOwner
	}
	if p.status != StatusDraft {
		return &InvalidTransitionError{From: p.status, To: StatusDraft}
	}
	return nil
}

func (p *Promotion) EnsureDeletableBy(actor user.Actor) error {
	if !p.IsOwnedBy(actor) && !actor.IsAdmin() {
		return ErrNotOwner
	}
	if p.status != StatusDraft {
		return &InvalidTransitionError{From: p.status, To: StatusDraft}
	}
	return nil
}

func (p *Promotion) Submit(actor user.Actor, now time.Time) error {
	if !p.IsOwnedBy(actor) {
		return ErrNotOwner
	}
	if p.status != StatusDraft {
		return &InvalidTransitionError{From: p.status, To: StatusSubmitted}
	}
	p.status = StatusSubmitted
	p.submittedAt = &now
	p.updatedAt = now
	return nil
}

// Approve finalises a submitted promotion. Approval and execution are the
// same event.
func (p *Promotion) Approve(actor user.Actor, now time.Time) error {
	if !actor.IsAdmin() {
		return ErrAdminRequired
	}
	if p.status != StatusSubmitted {
		return &InvalidTransitionError{From: p.status, To: StatusApproved}
	}
	by := actor.UserID()
	p.status = StatusApproved
	p.approvedAt = &now
	p.approvedBy = &by
	p.executed = true
	p.updatedAt = now
	return nil
}

func (p *Promotion) Reject(actor user.Actor, reason RejectReason, now time.Time) error {
	if !actor.IsAdmin() {
		return ErrAdminRequired
	}
	if p.status != StatusSubmitted {
		return &InvalidTransitionError{From: p.status, To: StatusRejected}
	}
	by := actor.UserID()
	text := reason.String()
	p.status = StatusRejected
	p.rejectedAt = &now
	p.rejectedBy = &by
	p.rejectReason = &text
	p.updatedAt = now
	return nil
}

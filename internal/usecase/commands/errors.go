package commands

import (
	"fmt"

	"badge-promotion-engine/internal/domain/badge"
	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrPromotionNotFound   = errs.New("promotion not found")
	ErrTemplateNotFound    = errs.New("promotion template not found")
	ErrBadgeNotFound       = errs.New("badge application not found")
	ErrNotOwner            = errs.New("caller does not own the promotion")
	ErrForbidden           = errs.New("caller is not allowed to perform this operation")
	ErrInvalidStatus       = errs.New("promotion is not in the required status")
	ErrValidationFailed    = errs.New("promotion does not satisfy template rules")
	ErrReservationConflict = errs.New("badge application is reserved by another promotion")
	ErrBadgeNotEligible    = errs.New("badge application is not eligible for reservation")
	ErrReservationsStale   = errs.New("reserved badge applications changed status before submit")
)

// InvalidStatusError carries the status the promotion was actually in.
type InvalidStatusError struct {
	Current promotion.Status
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("promotion is %s", e.Current)
}

func (e *InvalidStatusError) Unwrap() error { return ErrInvalidStatus }

type ValidationFailedError struct {
	Missing []promotion.MissingRequirement
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("%d template rule(s) not satisfied", len(e.Missing))
}

func (e *ValidationFailedError) Unwrap() error { return ErrValidationFailed }

type ReservationConflictError struct {
	BadgeApplicationID uuid.UUID
	OwningPromotionID  uuid.UUID
}

func (e *ReservationConflictError) Error() string {
	return fmt.Sprintf("badge application %s is reserved by promotion %s", e.BadgeApplicationID, e.OwningPromotionID)
}

func (e *ReservationConflictError) Unwrap() error { return ErrReservationConflict }

type BadgeNotEligibleError struct {
	BadgeApplicationID uuid.UUID
	Status             badge.ApplicationStatus
}

func (e *BadgeNotEligibleError) Error() string {
	return fmt.Sprintf("badge application %s is %s, not accepted", e.BadgeApplicationID, e.Status)
}

func (e *BadgeNotEligibleError) Unwrap() error { return ErrBadgeNotEligible }

type BadgeNotFoundError struct {
	BadgeApplicationID uuid.UUID
}

func (e *BadgeNotFoundError) Error() string {
	return fmt.Sprintf("badge application %s not found", e.BadgeApplicationID)
}

func (e *BadgeNotFoundError) Unwrap() error { return ErrBadgeNotFound }

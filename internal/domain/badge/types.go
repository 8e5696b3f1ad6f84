package badge

import (
	"badge-promotion-engine/internal/pkg/errs"
)

var (
	ErrInvalidCategory          = errs.Validation("invalid badge category")
	ErrInvalidLevel             = errs.Validation("invalid badge level")
	ErrInvalidApplicationStatus = errs.Validation("invalid badge application status")
)

type Category string

const (
	CategoryTechnical      Category = "technical"
	CategoryOrganizational Category = "organizational"
	CategorySoftSkilled    Category = "softskilled"
)

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryTechnical, CategoryOrganizational, CategorySoftSkilled:
		return true
	default:
		return false
	}
}

func (c Category) String() string { return string(c) }

type Level string

const (
	LevelGold   Level = "gold"
	LevelSilver Level = "silver"
	LevelBronze Level = "bronze"
)

func NewLevel(s string) (Level, error) {
	l := Level(s)
	if !l.IsValid() {
		return "", ErrInvalidLevel
	}
	return l, nil
}

func (l Level) IsValid() bool {
	switch l {
	case LevelGold, LevelSilver, LevelBronze:
		return true
	default:
		return false
	}
}

func (l Level) String() string { return string(l) }

type ApplicationStatus string

const (
	StatusDraft           ApplicationStatus = "draft"
	StatusSubmitted       ApplicationStatus = "submitted"
	StatusAccepted        ApplicationStatus = "accepted"
	StatusRejected        ApplicationStatus = "rejected"
	StatusUsedInPromotion ApplicationStatus = "used_in_promotion"
)

func NewApplicationStatus(s string) (ApplicationStatus, error) {
	st := ApplicationStatus(s)
	switch st {
	case StatusDraft, StatusSubmitted, StatusAccepted, StatusRejected, StatusUsedInPromotion:
		return st, nil
	default:
		return "", ErrInvalidApplicationStatus
	}
}

func (s ApplicationStatus) String() string { return string(s) }

// Key identifies the bucket a held badge counts toward.
type Key struct {
	Category Category
	Level    Level
}

func (k Key) String() string { return string(k.Category) + ":" + string(k.Level) }

package promotion

import (
	"strings"

	"badge-promotion-engine/internal/pkg/errs"
)

const MaxPositionLevelLength = 16

var (
	ErrInvalidStatus        = errs.Validation("invalid promotion status")
	ErrInvalidPath          = errs.Validation("invalid promotion path")
	ErrInvalidPositionLevel = errs.Validation("invalid position level")
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusDraft, StatusSubmitted, StatusApproved, StatusRejected:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Path string

const (
	PathTechnical  Path = "technical"
	PathFinancial  Path = "financial"
	PathManagement Path = "management"
)

func NewPath(s string) (Path, error) {
	p := Path(s)
	switch p {
	case PathTechnical, PathFinancial, PathManagement:
		return p, nil
	default:
		return "", ErrInvalidPath
	}
}

func (p Path) String() string { return string(p) }

// PositionLevel is an opaque career ladder code such as "J1" or "S2".
type PositionLevel struct {
	code string
}

func NewPositionLevel(s string) (PositionLevel, error) {
	t := strings.TrimSpace(s)
	if t == "" || len(t) > MaxPositionLevelLength {
		return PositionLevel{}, ErrInvalidPositionLevel
	}
	return PositionLevel{code: t}, nil
}

func (l PositionLevel) String() string { return l.code }

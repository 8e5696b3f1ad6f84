package promotion

import (
	"strings"
	"unicode/utf8"

	"badge-promotion-engine/internal/pkg/errs"
)

const MaxRejectReasonLength = 2000

var ErrInvalidRejectReason = errs.Validation("reject reason must be between 1 and 2000 characters")

type RejectReason struct {
	text string
}

func NewRejectReason(s string) (RejectReason, error) {
	t := strings.TrimSpace(s)
	if t == "" || utf8.RuneCountInString(t) > MaxRejectReasonLength {
		return RejectReason{}, ErrInvalidRejectReason
	}
	return RejectReason{text: t}, nil
}

func (r RejectReason) String() string { return r.text }

package api

import (
	"log/slog"
	"net/http"

	"badge-promotion-engine/internal/domain/promotion"
	"badge-promotion-engine/internal/handler/httperr"
	"badge-promotion-engine/internal/handler/middleware"
	"badge-promotion-engine/internal/pkg/errs"
	"badge-promotion-engine/internal/usecase/commands"
	"badge-promotion-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorScope int

const (
	scopeLifecycle errorScope = iota
	// Badge edits report a non-draft promotion as 403 not_draft.
	scopeBadgeEdit
)

const stackLines = 12

// respondError maps use-case errors onto the HTTP error contract. Anything
// unrecognised is logged with its stack and returned as a bare 500.
func respondError(c *gin.Context, err error, scope errorScope) {
	var (
		invalidStatus *commands.InvalidStatusError
		validation    *commands.ValidationFailedError
		conflict      *commands.ReservationConflictError
		notEligible   *commands.BadgeNotEligibleError
		badgeMissing  *commands.BadgeNotFoundError
	)

	switch {
	// Corrupt stored rows may carry validation marks from their value
	// objects; they are server faults, never caller input.
	case errs.Is(err, errs.ErrDataIntegrity):
		abortInternal(c, err, "stored data failed integrity check")
	case errs.As(err, &notEligible):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadgeNotEligible,
			"Badge application is not eligible for reservation",
			gin.H{"badgeApplicationId": notEligible.BadgeApplicationID, "status": notEligible.Status})
	case errs.Is(err, promotion.ErrTemplateInactive):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeTemplateInactive, "Promotion template is inactive", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, err.Error(), nil)

	case errs.Is(err, commands.ErrNotOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, httperr.CodeNotOwner, "Only the promotion owner may do this", nil)
	case errs.Is(err, commands.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, httperr.CodeForbidden, "Operation not permitted", nil)

	case errs.As(err, &badgeMissing):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Badge application not found",
			gin.H{"badgeApplicationId": badgeMissing.BadgeApplicationID})
	case errs.Is(err, commands.ErrPromotionNotFound), errs.Is(err, queries.ErrPromotionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Promotion not found", nil)
	case errs.Is(err, commands.ErrTemplateNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, httperr.CodeNotFound, "Promotion template not found", nil)

	case errs.As(err, &invalidStatus):
		if scope == scopeBadgeEdit {
			httperr.AbortWithError(c, http.StatusForbidden, err, httperr.CodeNotDraft, "Promotion is not a draft",
				gin.H{"current_status": invalidStatus.Current})
			return
		}
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeInvalidStatus, "Promotion is not in the required status",
			gin.H{"current_status": invalidStatus.Current})
	case errs.As(err, &validation):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeValidationFailed, "Promotion does not satisfy template rules",
			gin.H{"missing": validation.Missing})
	case errs.As(err, &conflict):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeReservationConflict, "Badge application is reserved by another promotion",
			gin.H{"badgeApplicationId": conflict.BadgeApplicationID, "owningPromotionId": conflict.OwningPromotionID})
	case errs.Is(err, commands.ErrReservationsStale):
		httperr.AbortWithError(c, http.StatusConflict, err, httperr.CodeReservationConflict, "Reserved badge applications changed, retry", nil)

	default:
		abortInternal(c, err, "unhandled request error")
	}
}

// abortInternal logs err with its stack and answers with a bare 500.
func abortInternal(c *gin.Context, err error, logMsg string) {
	slog.Error(logMsg,
		"error", err.Error(),
		"path", c.FullPath(),
		"request_id", middleware.GetRequestID(c),
		"stack", errs.ExtractStackLines(err, stackLines),
	)
	httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.CodeInternal, "Internal server error", nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.CodeBadRequest, msg, nil)
}

func abortUnauthorized(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, httperr.CodeUnauthorized, "Unauthorized", nil)
}

var errUnauthenticated = errs.New("request is not authenticated")

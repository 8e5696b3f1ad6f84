package httperr

import (
	"github.com/gin-gonic/gin"
)

// Machine-readable error codes returned in error.code.
const (
	CodeBadRequest          = "bad_request"
	CodeUnauthorized        = "unauthorized"
	CodeForbidden           = "forbidden"
	CodeNotOwner            = "not_owner"
	CodeNotDraft            = "not_draft"
	CodeNotFound            = "not_found"
	CodeInvalidStatus       = "invalid_status"
	CodeValidationFailed    = "validation_failed"
	CodeReservationConflict = "reservation_conflict"
	CodeBadgeNotEligible    = "badge_not_eligible"
	CodeTemplateInactive    = "template_inactive"
	CodeUnavailable         = "unavailable"
	CodeInternal            = "internal_error"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string, detail any) Response {
	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, code, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

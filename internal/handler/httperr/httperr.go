package httperr

import (
	"github.com/gin-gonic/gin"
)

const (
	CodeValidation              = "VALIDATION_ERROR"
	CodeResourceUnavailable     = "RESOURCE_UNAVAILABLE"
	CodeHoldExpired             = "HOLD_EXPIRED"
	CodeHoldAlreadyConsumed     = "HOLD_ALREADY_CONSUMED"
	CodeHoldNotFound            = "HOLD_NOT_FOUND"
	CodeBookingNotReschedulable = "BOOKING_NOT_RESCHEDULABLE"
	CodeAlreadyCancelled        = "ALREADY_CANCELLED"
	CodeNotFound                = "NOT_FOUND"
	CodeAlreadyExists           = "ALREADY_EXISTS"
	CodeIdempotencyConflict     = "IDEMPOTENCY_CONFLICT"
	CodeServiceUnavailable      = "SERVICE_UNAVAILABLE"
	CodeUnauthorized            = "UNAUTHORIZED"
	CodeInternal                = "INTERNAL_ERROR"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, code, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	resp.Error.Code = code
	return resp
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, code string, err error, msg string, detail any) {
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

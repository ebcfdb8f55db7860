package api

import (
	"log/slog"
	"net/http"

	"booking-core/internal/handler/httperr"
	"booking-core/internal/handler/middleware"
	"booking-core/internal/pkg/errs"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// first match wins; more specific errors come before their generic marks
var errorMappings = []errorMapping{
	{commands.ErrValidation, http.StatusBadRequest, httperr.CodeValidation, "Invalid request"},
	{queries.ErrInvalidQuery, http.StatusBadRequest, httperr.CodeValidation, "Invalid query"},
	{commands.ErrResourceUnavailable, http.StatusConflict, httperr.CodeResourceUnavailable, "The requested time is no longer available"},
	{commands.ErrHoldExpired, http.StatusGone, httperr.CodeHoldExpired, "The hold has expired"},
	{commands.ErrHoldAlreadyConsumed, http.StatusConflict, httperr.CodeHoldAlreadyConsumed, "The hold was already used"},
	{commands.ErrHoldNotFound, http.StatusNotFound, httperr.CodeHoldNotFound, "Hold not found"},
	{queries.ErrHoldNotFound, http.StatusNotFound, httperr.CodeHoldNotFound, "Hold not found"},
	{commands.ErrBookingNotReschedulable, http.StatusConflict, httperr.CodeBookingNotReschedulable, "The booking cannot be rescheduled"},
	{commands.ErrAlreadyCancelled, http.StatusConflict, httperr.CodeAlreadyCancelled, "The booking is already cancelled"},
	{commands.ErrBookingNotFound, http.StatusNotFound, httperr.CodeNotFound, "Booking not found"},
	{queries.ErrBookingNotFound, http.StatusNotFound, httperr.CodeNotFound, "Booking not found"},
	{commands.ErrNotFound, http.StatusNotFound, httperr.CodeNotFound, "Not found"},
	{queries.ErrNotFound, http.StatusNotFound, httperr.CodeNotFound, "Not found"},
	{commands.ErrAlreadyExists, http.StatusConflict, httperr.CodeAlreadyExists, "Already exists"},
	{commands.ErrIdempotencyConflict, http.StatusConflict, httperr.CodeIdempotencyConflict, "Idempotency key conflict"},
	{commands.ErrServiceUnavailable, http.StatusServiceUnavailable, httperr.CodeServiceUnavailable, "Service temporarily unavailable"},
}

func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, m.code, err, m.message, nil)
			return
		}
	}
	slog.Error("unhandled error", "error", err, "path", c.FullPath(), "request_id", middleware.GetRequestID(c))
	httperr.AbortWithError(c, http.StatusInternalServerError, httperr.CodeInternal, err, "Internal server error", nil)
}

func respondBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, httperr.CodeValidation, err, msg, err.Error())
}

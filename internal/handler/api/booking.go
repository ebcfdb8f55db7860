package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "booking-core/internal/handler/dto/request"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNotesRequired = errors.New("notes is required")

type BookingHandler struct {
	holds    commands.HoldCommands
	bookings commands.BookingCommands
	queries  queries.BookingQueries
	guard    *commands.IdempotencyGuard
}

func NewBookingHandler(
	holdCommands commands.HoldCommands,
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
	guard *commands.IdempotencyGuard,
) *BookingHandler {
	return &BookingHandler{
		holds:    holdCommands,
		bookings: bookingCommands,
		queries:  bookingQueries,
		guard:    guard,
	}
}

// @Summary Create hold
// @Description Tentatively reserve resources for a time range until the hold expires
// @Tags holds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.CreateHoldRequest true "Hold"
// @Success 200 {object} resdto.HoldEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response "RESOURCE_UNAVAILABLE"
// @Router /booking/bookings/holds [post]
func (h *BookingHandler) CreateHold(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	scope, ok := idempotencyScope(c, tenantID)
	if !ok {
		return
	}

	var req reqdto.CreateHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request format")
		return
	}

	view, replayed, err := commands.Idempotent(c.Request.Context(), h.guard, scope, req,
		func(ctx context.Context) (*queries.HoldView, uuid.UUID, error) {
			v, err := h.holds.CreateHold(ctx, req.ToInput(tenantID))
			if err != nil {
				return nil, uuid.Nil, err
			}
			return v, v.ID, nil
		},
		h.loadHold(tenantID),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	markReplay(c, replayed)
	c.JSON(http.StatusOK, resdto.FromHoldView(view))
}

// @Summary Get hold
// @Tags holds
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hold ID"
// @Success 200 {object} resdto.HoldEnvelope
// @Failure 404 {object} httperr.Response "HOLD_NOT_FOUND"
// @Router /booking/bookings/holds/{id} [get]
func (h *BookingHandler) GetHold(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetHold(c.Request.Context(), tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHoldView(view))
}

// @Summary Release hold
// @Description Give a hold's resources back before it expires; releasing twice is harmless
// @Tags holds
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hold ID"
// @Success 200 {object} resdto.HoldEnvelope
// @Failure 404 {object} httperr.Response "HOLD_NOT_FOUND"
// @Router /booking/bookings/holds/{id} [delete]
func (h *BookingHandler) ReleaseHold(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.holds.ReleaseHold(c.Request.Context(), tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHoldView(view))
}

// @Summary Create booking
// @Description Confirm a hold (holdId) or book resources directly (startAt, endAt, resourceIds)
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response "HOLD_NOT_FOUND"
// @Failure 409 {object} httperr.Response "RESOURCE_UNAVAILABLE or HOLD_ALREADY_CONSUMED"
// @Failure 410 {object} httperr.Response "HOLD_EXPIRED"
// @Router /booking/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	scope, ok := idempotencyScope(c, tenantID)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request format")
		return
	}
	cmd, err := req.ToCommand(tenantID)
	if err != nil {
		respondBadRequest(c, err, "Invalid request format")
		return
	}

	view, replayed, err := commands.Idempotent(c.Request.Context(), h.guard, scope, req,
		bookingResult(func(ctx context.Context) (*queries.BookingView, error) {
			return h.bookings.Create(ctx, cmd)
		}),
		h.loadBooking(tenantID),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	markReplay(c, replayed)
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "CONFIRMED or CANCELLED"
// @Param resourceId query string false "Resource ID"
// @Param fromDate query string false "Overlap range start (RFC 3339 or YYYY-MM-DD)"
// @Param toDate query string false "Overlap range end (RFC 3339 or YYYY-MM-DD, inclusive day)"
// @Param page query int false "1-based page"
// @Param pageSize query int false "Page size (max 200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /booking/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var q reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, err, "Invalid query")
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		respondBadRequest(c, err, "Invalid query")
		return
	}

	list, err := h.queries.ListBookings(c.Request.Context(), tenantID, filter, q.Page, q.PageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingList(list))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 404 {object} httperr.Response
// @Router /booking/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetBooking(c.Request.Context(), tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Reschedule booking
// @Description Move a confirmed booking; on conflict the booking keeps its original time
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param id path string true "Booking ID"
// @Param request body reqdto.RescheduleBookingRequest true "New interval"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response "RESOURCE_UNAVAILABLE or BOOKING_NOT_RESCHEDULABLE"
// @Router /booking/bookings/{id}/reschedule [patch]
func (h *BookingHandler) Reschedule(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	scope, ok := idempotencyScope(c, tenantID)
	if !ok {
		return
	}

	var req reqdto.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request format")
		return
	}

	view, replayed, err := commands.Idempotent(c.Request.Context(), h.guard, scope, req,
		bookingResult(func(ctx context.Context) (*queries.BookingView, error) {
			return h.bookings.Reschedule(ctx, req.ToInput(tenantID, id))
		}),
		h.loadBooking(tenantID),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	markReplay(c, replayed)
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Update booking notes
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateNotesRequest true "Notes"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking/bookings/{id}/notes [patch]
func (h *BookingHandler) UpdateNotes(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	scope, ok := idempotencyScope(c, tenantID)
	if !ok {
		return
	}

	var req reqdto.UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request format")
		return
	}
	if req.Notes == nil {
		respondBadRequest(c, errNotesRequired, "Invalid request format")
		return
	}

	view, replayed, err := commands.Idempotent(c.Request.Context(), h.guard, scope, req,
		bookingResult(func(ctx context.Context) (*queries.BookingView, error) {
			return h.bookings.UpdateNotes(ctx, tenantID, id, *req.Notes)
		}),
		h.loadBooking(tenantID),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	markReplay(c, replayed)
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel a confirmed booking and free its resources
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param id path string true "Booking ID"
// @Param request body reqdto.CancelBookingRequest false "Reason"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "ALREADY_CANCELLED"
// @Router /booking/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	scope, ok := idempotencyScope(c, tenantID)
	if !ok {
		return
	}

	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err, "Invalid request format")
			return
		}
	}

	view, replayed, err := commands.Idempotent(c.Request.Context(), h.guard, scope, req,
		bookingResult(func(ctx context.Context) (*queries.BookingView, error) {
			return h.bookings.Cancel(ctx, tenantID, id, req.Reason)
		}),
		h.loadBooking(tenantID),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	markReplay(c, replayed)
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) loadHold(tenantID uuid.UUID) func(context.Context, uuid.UUID) (*queries.HoldView, error) {
	return func(ctx context.Context, id uuid.UUID) (*queries.HoldView, error) {
		return h.queries.GetHold(ctx, tenantID, id)
	}
}

func (h *BookingHandler) loadBooking(tenantID uuid.UUID) func(context.Context, uuid.UUID) (*queries.BookingView, error) {
	return func(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
		return h.queries.GetBooking(ctx, tenantID, id)
	}
}

func bookingResult(fn func(ctx context.Context) (*queries.BookingView, error)) func(context.Context) (*queries.BookingView, uuid.UUID, error) {
	return func(ctx context.Context) (*queries.BookingView, uuid.UUID, error) {
		v, err := fn(ctx)
		if err != nil {
			return nil, uuid.Nil, err
		}
		return v, v.ID, nil
	}
}

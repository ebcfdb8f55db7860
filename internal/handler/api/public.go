package api

import (
	"context"
	"net/http"

	reqdto "booking-core/internal/handler/dto/request"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/handler/middleware"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublicHandler serves booking pages to end customers. The tenant comes from the page slug.
type PublicHandler struct {
	commands     commands.PublicCommands
	pages        queries.PageQueries
	availability queries.AvailabilityQueries
	bookings     queries.BookingQueries
	guard        *commands.IdempotencyGuard
}

func NewPublicHandler(
	publicCommands commands.PublicCommands,
	pageQueries queries.PageQueries,
	availabilityQueries queries.AvailabilityQueries,
	bookingQueries queries.BookingQueries,
	guard *commands.IdempotencyGuard,
) *PublicHandler {
	return &PublicHandler{
		commands:     publicCommands,
		pages:        pageQueries,
		availability: availabilityQueries,
		bookings:     bookingQueries,
		guard:        guard,
	}
}

// @Summary Get booking page
// @Tags public
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} resdto.PageEnvelope
// @Failure 404 {object} httperr.Response
// @Router /public/booking/pages/{slug} [get]
func (h *PublicHandler) GetPage(c *gin.Context) {
	view, ok := h.page(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromPageView(view))
}

// @Summary Page availability
// @Description Bookable slots for one service of a published page
// @Tags public
// @Produce json
// @Param slug path string true "Page slug"
// @Param serviceId query string true "Service ID"
// @Param resourceId query string false "Pin a resource"
// @Param staffId query string false "Pin a staff member"
// @Param from query string false "Range start"
// @Param to query string false "Range end"
// @Param day query string false "Single local day (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /public/booking/pages/{slug}/availability [get]
func (h *PublicHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, err, "Invalid query")
		return
	}
	in, err := q.ToInput()
	if err != nil {
		respondBadRequest(c, err, "Invalid query")
		return
	}

	view, err := h.availability.PageAvailability(c.Request.Context(), c.Param("slug"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Hold a public slot
// @Description Hold the first free candidate of a service for the chosen start time
// @Tags public
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key"
// @Param slug path string true "Page slug"
// @Param request body reqdto.PublicHoldRequest true "Slot"
// @Success 200 {object} resdto.HoldEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response "RESOURCE_UNAVAILABLE"
// @Router /public/booking/pages/{slug}/holds [post]
func (h *PublicHandler) Hold(c *gin.Context) {
	p, ok := h.page(c)
	if !ok {
		return
	}
	scope, ok := idempotencyScope(c, p.TenantID)
	if !ok {
		return
	}

	var req reqdto.PublicHoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request format")
		return
	}

	view, replayed, err := commands.Idempotent(c.Request.Context(), h.guard, scope, req,
		func(ctx context.Context) (*queries.HoldView, uuid.UUID, error) {
			v, err := h.commands.HoldSlot(ctx, req.ToInput(p.Slug))
			if err != nil {
				return nil, uuid.Nil, err
			}
			return v, v.ID, nil
		},
		func(ctx context.Context, id uuid.UUID) (*queries.HoldView, error) {
			return h.bookings.GetHold(ctx, p.TenantID, id)
		},
	)
	if err != nil {
		respondError(c, err)
		return
	}

	markReplay(c, replayed)
	c.JSON(http.StatusOK, resdto.FromHoldView(view))
}

// @Summary Confirm a public hold
// @Tags public
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key"
// @Param slug path string true "Page slug"
// @Param request body reqdto.PublicConfirmRequest true "Customer details"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response "HOLD_NOT_FOUND"
// @Failure 409 {object} httperr.Response "HOLD_ALREADY_CONSUMED"
// @Failure 410 {object} httperr.Response "HOLD_EXPIRED"
// @Router /public/booking/pages/{slug}/confirm [post]
func (h *PublicHandler) Confirm(c *gin.Context) {
	p, ok := h.page(c)
	if !ok {
		return
	}
	scope, ok := idempotencyScope(c, p.TenantID)
	if !ok {
		return
	}

	var req reqdto.PublicConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request format")
		return
	}

	view, replayed, err := commands.Idempotent(c.Request.Context(), h.guard, scope, req,
		bookingResult(func(ctx context.Context) (*queries.BookingView, error) {
			return h.commands.Confirm(ctx, req.ToInput(p.Slug))
		}),
		func(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
			return h.bookings.GetBooking(ctx, p.TenantID, id)
		},
	)
	if err != nil {
		respondError(c, err)
		return
	}

	markReplay(c, replayed)
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// page resolves the published page addressed by :slug and records its tenant for logging.
func (h *PublicHandler) page(c *gin.Context) (*queries.PageView, bool) {
	view, err := h.pages.GetPublicPage(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	middleware.SetTenantID(c, view.TenantID)
	return view, true
}

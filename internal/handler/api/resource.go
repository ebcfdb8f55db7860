package api

import (
	"context"
	"net/http"

	reqdto "booking-core/internal/handler/dto/request"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/usecase/commands"
	"booking-core/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ResourceHandler struct {
	commands     commands.ResourceCommands
	queries      queries.ResourceQueries
	availability queries.AvailabilityQueries
	guard        *commands.IdempotencyGuard
}

func NewResourceHandler(
	resourceCommands commands.ResourceCommands,
	resourceQueries queries.ResourceQueries,
	availabilityQueries queries.AvailabilityQueries,
	guard *commands.IdempotencyGuard,
) *ResourceHandler {
	return &ResourceHandler{
		commands:     resourceCommands,
		queries:      resourceQueries,
		availability: availabilityQueries,
		guard:        guard,
	}
}

// @Summary Register resource
// @Description Register a bookable room, staff member or piece of equipment
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "Idempotency key"
// @Param request body reqdto.RegisterResourceRequest true "Resource"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /booking/resources [post]
func (h *ResourceHandler) Register(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	scope, ok := idempotencyScope(c, tenantID)
	if !ok {
		return
	}

	var req reqdto.RegisterResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request format")
		return
	}

	view, replayed, err := commands.Idempotent(c.Request.Context(), h.guard, scope, req,
		func(ctx context.Context) (*queries.ResourceView, uuid.UUID, error) {
			v, err := h.commands.Register(ctx, req.ToInput(tenantID))
			if err != nil {
				return nil, uuid.Nil, err
			}
			return v, v.ID, nil
		},
		func(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
			return h.queries.GetResource(ctx, tenantID, id)
		},
	)
	if err != nil {
		respondError(c, err)
		return
	}

	markReplay(c, replayed)
	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

// @Summary List resources
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ResourceListResponse
// @Failure 401 {object} httperr.Response
// @Router /booking/resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	views, err := h.queries.ListResources(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}

// @Summary Get resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 404 {object} httperr.Response
// @Router /booking/resources/{id} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.queries.GetResource(c.Request.Context(), tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

// @Summary Update resource
// @Description Rename, resize or (de)activate a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.UpdateResourceRequest true "Changes"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking/resources/{id} [patch]
func (h *ResourceHandler) Update(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.commands.Update(c.Request.Context(), req.ToInput(tenantID, id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceView(view))
}

// @Summary Resource availability
// @Description Free slots across the given resources within the default working hours
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param resourceIds query []string true "Resource IDs" collectionFormat(multi)
// @Param durationMinutes query int true "Slot length in minutes"
// @Param from query string false "Range start (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Range end (RFC 3339 or YYYY-MM-DD)"
// @Param requireAll query bool false "Require every resource at once"
// @Param timezone query string false "IANA timezone"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /booking/resources/availability [get]
func (h *ResourceHandler) Availability(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var q reqdto.ResourceAvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, err, "Invalid query")
		return
	}
	in, err := q.ToInput()
	if err != nil {
		respondBadRequest(c, err, "Invalid query")
		return
	}

	view, err := h.availability.ResourceAvailability(c.Request.Context(), tenantID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Resource occupancy
// @Description Intervals currently blocking a resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param from query string true "Range start"
// @Param to query string true "Range end"
// @Success 200 {object} resdto.OccupancyResponse
// @Failure 400 {object} httperr.Response
// @Router /booking/resources/{id}/occupancy [get]
func (h *ResourceHandler) Occupancy(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var q reqdto.OccupancyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, err, "Invalid query")
		return
	}
	from, to, err := q.Range()
	if err != nil {
		respondBadRequest(c, err, "Invalid query")
		return
	}

	allocs, err := h.availability.Occupied(c.Request.Context(), tenantID, []uuid.UUID{id}, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAllocations(allocs))
}

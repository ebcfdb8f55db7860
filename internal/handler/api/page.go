package api

import (
	"net/http"

	reqdto "booking-core/internal/handler/dto/request"
	resdto "booking-core/internal/handler/dto/response"
	"booking-core/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	commands commands.PageCommands
}

func NewPageHandler(pageCommands commands.PageCommands) *PageHandler {
	return &PageHandler{commands: pageCommands}
}

// @Summary Create booking page
// @Description Publish a self-service booking page with its weekly working hours
// @Tags pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePageRequest true "Page"
// @Success 200 {object} resdto.PageEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response "ALREADY_EXISTS"
// @Router /booking/pages [post]
func (h *PageHandler) CreatePage(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req reqdto.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.commands.CreatePage(c.Request.Context(), req.ToInput(tenantID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPageView(view))
}

// @Summary Add service to page
// @Tags pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Page ID"
// @Param request body reqdto.AddServiceRequest true "Service"
// @Success 200 {object} resdto.ServiceEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /booking/pages/{id}/services [post]
func (h *PageHandler) AddService(c *gin.Context) {
	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	pageID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reqdto.AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err, "Invalid request format")
		return
	}

	view, err := h.commands.AddService(c.Request.Context(), req.ToInput(tenantID, pageID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(view))
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"booking-core/internal/handler/api"
	"booking-core/internal/handler/middleware"
	"booking-core/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine           *gin.Engine
	Config           config.Config
	Logger           *middleware.Logger
	TenantMiddleware *middleware.TenantMiddleware
	Resources        *api.ResourceHandler
	Bookings         *api.BookingHandler
	Pages            *api.PageHandler
	Public           *api.PublicHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.Tracing())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	bookingGroup := engine.Group("/booking")
	bookingGroup.Use(p.TenantMiddleware.RequireTenant())
	{
		addRoutes(bookingGroup.Group("/resources"), []route{
			{Method: http.MethodPost, Path: "", Handler: p.Resources.Register},
			{Method: http.MethodGet, Path: "", Handler: p.Resources.List},
			{Method: http.MethodGet, Path: "/availability", Handler: p.Resources.Availability},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Resources.Get},
			{Method: http.MethodPatch, Path: "/:id", Handler: p.Resources.Update},
			{Method: http.MethodGet, Path: "/:id/occupancy", Handler: p.Resources.Occupancy},
		})

		addRoutes(bookingGroup.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "/holds", Handler: p.Bookings.CreateHold},
			{Method: http.MethodGet, Path: "/holds/:id", Handler: p.Bookings.GetHold},
			{Method: http.MethodDelete, Path: "/holds/:id", Handler: p.Bookings.ReleaseHold},
			{Method: http.MethodPost, Path: "", Handler: p.Bookings.CreateBooking},
			{Method: http.MethodGet, Path: "", Handler: p.Bookings.ListBookings},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Bookings.GetBooking},
			{Method: http.MethodPatch, Path: "/:id/reschedule", Handler: p.Bookings.Reschedule},
			{Method: http.MethodPatch, Path: "/:id/notes", Handler: p.Bookings.UpdateNotes},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: p.Bookings.Cancel},
		})

		addRoutes(bookingGroup.Group("/pages"), []route{
			{Method: http.MethodPost, Path: "", Handler: p.Pages.CreatePage},
			{Method: http.MethodPost, Path: "/:id/services", Handler: p.Pages.AddService},
		})
	}

	addRoutes(engine.Group("/public/booking/pages"), []route{
		{Method: http.MethodGet, Path: "/:slug", Handler: p.Public.GetPage},
		{Method: http.MethodGet, Path: "/:slug/availability", Handler: p.Public.Availability},
		{Method: http.MethodPost, Path: "/:slug/holds", Handler: p.Public.Hold},
		{Method: http.MethodPost, Path: "/:slug/confirm", Handler: p.Public.Confirm},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tablebook/internal/domain/user"
	"tablebook/internal/handler/api"
	"tablebook/internal/handler/middleware"
	"tablebook/internal/handler/ws"
	"tablebook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Availability *api.AvailabilityHandler
	Reservation  *api.ReservationHandler
	Table        *api.TableHandler
	Settings     *api.SettingsHandler
	FloorPlan    *api.FloorPlanHandler
	Feed         *ws.FeedHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware, rdb *redis.Client) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, handlers, authMiddleware, rdb)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, rdb *redis.Client) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	rateLimited := middleware.NewRateLimiter(cfg.RateLimit, rdb)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Public guest surface: browsing availability and booking need no
		// account, only a rate limit.
		public := apiGroup.Group("")
		public.Use(rateLimited)
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.GetAvailability},
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.CreateReservation},
		})

		staff := apiGroup.Group("")
		staff.Use(authMiddleware.RequireAuth())
		{
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Reservation.ListReservations},
				{Method: http.MethodGet, Path: "/reservations/today/stats", Handler: h.Reservation.TodayStats},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Reservation.GetReservation},
				{Method: http.MethodPost, Path: "/reservations/:id/check-in", Handler: h.Reservation.CheckIn},
				{Method: http.MethodGet, Path: "/floorplan", Handler: h.FloorPlan.GetFloorPlan},
				{Method: http.MethodGet, Path: "/staffview", Handler: h.FloorPlan.GetStaffView},
				{Method: http.MethodGet, Path: "/settings", Handler: h.Settings.GetSettings},
				{Method: http.MethodGet, Path: "/feed", Handler: h.Feed.Serve},
			})

			manager := staff.Group("")
			manager.Use(authMiddleware.RequireRoleAtLeast(user.RoleManager))
			addRoutes(manager, []route{
				{Method: http.MethodPost, Path: "/reservations/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodDelete, Path: "/reservations/:id", Handler: h.Reservation.DeleteReservation},
				{Method: http.MethodPut, Path: "/settings", Handler: h.Settings.UpdateSettings},
				{Method: http.MethodGet, Path: "/tables", Handler: h.Table.ListTables},
				{Method: http.MethodPost, Path: "/tables", Handler: h.Table.CreateTable},
				{Method: http.MethodPut, Path: "/tables/:id", Handler: h.Table.UpdateTable},
				{Method: http.MethodDelete, Path: "/tables/:id", Handler: h.Table.DeleteTable},
			})
		}
	}
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
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
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

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookline/internal/handler/api"
	"bookline/internal/handler/middleware"
	"bookline/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	appointmentHandler *api.AppointmentHandler,
	serviceHandler *api.ServiceHandler,
	clientHandler *api.ClientHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, appointmentHandler, serviceHandler, clientHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	appointmentHandler *api.AppointmentHandler,
	serviceHandler *api.ServiceHandler,
	clientHandler *api.ClientHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		appointments := apiGroup.Group("/appointments")
		appointments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(appointments, []route{
				{Method: http.MethodPost, Path: "", Handler: appointmentHandler.CreateAppointment},
				{Method: http.MethodGet, Path: "", Handler: appointmentHandler.ListAppointments},
				{Method: http.MethodGet, Path: "/today", Handler: appointmentHandler.ListToday},
				{Method: http.MethodGet, Path: "/week", Handler: appointmentHandler.ListThisWeek},
				{Method: http.MethodGet, Path: "/month", Handler: appointmentHandler.ListThisMonth},
				{Method: http.MethodGet, Path: "/:id", Handler: appointmentHandler.GetAppointment},
				{Method: http.MethodPatch, Path: "/:id", Handler: appointmentHandler.UpdateAppointment},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: appointmentHandler.ChangeStatus},
				{Method: http.MethodPatch, Path: "/:id/paid", Handler: appointmentHandler.TogglePaid},
				{Method: http.MethodDelete, Path: "/:id", Handler: appointmentHandler.DeleteAppointment},
			})
		}

		services := apiGroup.Group("/services")
		services.Use(authMiddleware.RequireAuth())
		{
			addRoutes(services, []route{
				{Method: http.MethodPost, Path: "", Handler: serviceHandler.CreateService},
				{Method: http.MethodGet, Path: "", Handler: serviceHandler.ListServices},
				{Method: http.MethodGet, Path: "/:id", Handler: serviceHandler.GetService},
				{Method: http.MethodPatch, Path: "/:id", Handler: serviceHandler.UpdateService},
				{Method: http.MethodDelete, Path: "/:id", Handler: serviceHandler.DeleteService},
			})
		}

		clients := apiGroup.Group("/clients")
		clients.Use(authMiddleware.RequireAuth())
		{
			addRoutes(clients, []route{
				{Method: http.MethodPost, Path: "", Handler: clientHandler.CreateClient},
				{Method: http.MethodGet, Path: "", Handler: clientHandler.ListClients},
				{Method: http.MethodGet, Path: "/:id", Handler: clientHandler.GetClient},
				{Method: http.MethodPatch, Path: "/:id", Handler: clientHandler.UpdateClient},
				{Method: http.MethodDelete, Path: "/:id", Handler: clientHandler.DeleteClient},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}

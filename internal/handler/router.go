package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salon-broker/internal/handler/api"
	"salon-broker/internal/handler/middleware"
	"salon-broker/internal/pkg/config"
	"salon-broker/internal/usecase/shared"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	intakeHandler *api.IntakeHandler,
	salonHandler *api.SalonHandler,
	clientHandler *api.ClientHandler,
	earningsHandler *api.EarningsHandler,
	webhookHandler *api.PaymentWebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, intakeHandler, salonHandler, clientHandler, earningsHandler, webhookHandler, authMiddleware, rateLimiter)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	intakeHandler *api.IntakeHandler,
	salonHandler *api.SalonHandler,
	clientHandler *api.ClientHandler,
	earningsHandler *api.EarningsHandler,
	webhookHandler *api.PaymentWebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := []gin.HandlerFunc{rateLimiter.Middleware()}

	apiGroup := engine.Group("/api")
	{
		// public, reached from referral and decision links
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/service-requests", Handler: intakeHandler.Create, Mw: limited},
			{Method: http.MethodGet, Path: "/requests/:id/decision", Handler: clientHandler.GetDecision, Mw: limited},
			{Method: http.MethodGet, Path: "/requests/:id/slots/:option/availability", Handler: clientHandler.CheckAvailability, Mw: limited},
			{Method: http.MethodPost, Path: "/requests/:id/select", Handler: clientHandler.SelectTime, Mw: limited},
			{Method: http.MethodPost, Path: "/requests/:id/cancel", Handler: clientHandler.CancelRequest, Mw: limited},
			{Method: http.MethodPost, Path: "/requests/:id/reschedule", Handler: clientHandler.RequestReschedule, Mw: limited},
			{Method: http.MethodPost, Path: "/checkout/:token/abandon", Handler: clientHandler.Abandon, Mw: limited},
			{Method: http.MethodPost, Path: "/checkout/:token/accept-alternative", Handler: clientHandler.AcceptAlternative, Mw: limited},
			{Method: http.MethodPost, Path: "/payments/webhook", Handler: webhookHandler.Handle},
		})

		salon := apiGroup.Group("/salon")
		salon.Use(authMiddleware.RequirePrincipal(shared.PrincipalSalon))
		{
			addRoutes(salon, []route{
				{Method: http.MethodPost, Path: "/requests/:id/respond", Handler: salonHandler.Respond},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: salonHandler.GetBooking},
				{Method: http.MethodPost, Path: "/bookings/:id/confirm", Handler: salonHandler.Confirm},
				{Method: http.MethodPost, Path: "/bookings/:id/alternatives", Handler: salonHandler.OfferAlternatives},
				{Method: http.MethodPost, Path: "/bookings/:id/refund", Handler: salonHandler.Refund},
			})
		}

		referrers := apiGroup.Group("/referrers")
		referrers.Use(authMiddleware.RequirePrincipal(shared.PrincipalReferrer))
		{
			addRoutes(referrers, []route{
				{Method: http.MethodGet, Path: "/:id/earnings", Handler: earningsHandler.GetEarnings},
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
			h = chainHandlers(append(append([]gin.HandlerFunc{}, r.Mw...), r.Handler)...)
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

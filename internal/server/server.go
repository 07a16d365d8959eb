// Package server wires the gateway routes, middleware and forwarders into a
// Fiber application.
package server

import (
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"alfredoptarigan/career-gateway/internal/config"
	"alfredoptarigan/career-gateway/internal/handlers"
	"alfredoptarigan/career-gateway/internal/metrics"
	"alfredoptarigan/career-gateway/internal/models"
	"alfredoptarigan/career-gateway/internal/services"
)

const requestIDKey = "requestid"

type Options struct {
	Config     *config.Config
	Logger     *zap.Logger
	Registry   *prometheus.Registry
	HTTPClient *http.Client
}

type routeHandlers struct {
	resume         *handlers.ResumeHandler
	recommendation *handlers.RecommendationHandler
	placement      *handlers.PlacementHandler
}

// New builds the gateway application. Nothing in it is shared between
// requests except read-only configuration and the HTTP client.
func New(opts Options) *fiber.App {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := opts.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	resolver := services.NewEndpointResolver(cfg.Services)
	deps := services.ForwarderDeps{
		Resolver:   resolver,
		HTTPClient: httpClient,
		Logger:     logger,
		Metrics:    metrics.New(registry),
	}

	routes := routeHandlers{
		resume: handlers.NewResumeHandler(
			services.NewResumeForwarder(deps, cfg.Timeouts.Extraction, cfg.Upload.ConvertPDF),
			logger,
		),
		recommendation: handlers.NewRecommendationHandler(
			services.NewRecommendationForwarder(deps, cfg.Timeouts.Recommendation),
			logger,
		),
		placement: handlers.NewPlacementHandler(
			services.NewPlacementForwarder(deps, cfg.Timeouts.Placement),
			logger,
		),
	}
	healthHandler := handlers.NewHealthHandler(services.NewHealthChecker(deps, cfg.Timeouts.Health))

	app := fiber.New(fiber.Config{
		AppName:               "Career Services Gateway",
		IdleTimeout:           60 * time.Second,
		BodyLimit:             math.MaxInt,
		UnescapePath:          true,
		DisableStartupMessage: true,
		ErrorHandler:          newErrorHandler(logger),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(accessLog(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Health and metrics
	app.Get("/health", healthHandler.HandleHealth)
	app.Get("/health/downstream", healthHandler.HandleDownstream)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Gateway routes, also mounted under /api for the web client
	registerRoutes(app, routes)
	registerRoutes(app.Group("/api"), routes)

	for _, target := range resolver.Targets() {
		logger.Info("downstream service resolved",
			zap.String("service", string(target.Name)),
			zap.String("base_url", target.BaseURL),
			zap.Bool("configured", target.ConfiguredValue != ""),
		)
	}

	return app
}

func registerRoutes(r fiber.Router, h routeHandlers) {
	r.Get("/resumes/upload", handlers.MethodNotAllowed(handlers.ResumeUploadGuidance))
	r.Post("/resumes/upload", h.resume.HandleUpload)

	r.Get("/jobs/recommend", handlers.MethodNotAllowed(handlers.RecommendGuidance))
	r.Get("/jobs/recommend/:studentId", h.recommendation.HandleByStudent)
	r.Post("/jobs/recommend", h.recommendation.HandleBySkills)

	r.Get("/placement", handlers.MethodNotAllowed(handlers.PlacementGuidance))
	r.Post("/placement", h.placement.HandlePredict)
}

// newErrorHandler keeps every failure in the JSON error shape. Errors that
// did not come from Fiber are reported generically.
func newErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		} else {
			logger.Error("unhandled error",
				zap.String("request_id", requestID(c)),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(models.ErrorResponse{Error: message})
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		return id
	}
	return ""
}

package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	swagger "github.com/go-swagno/swagno-fiber/swagger"
	"github.com/saturnino-fabrica-de-software/skintone/internal/api/docs"
	"github.com/saturnino-fabrica-de-software/skintone/internal/api/handler"
	"github.com/saturnino-fabrica-de-software/skintone/internal/api/middleware"
	"github.com/saturnino-fabrica-de-software/skintone/internal/domain"
	"github.com/saturnino-fabrica-de-software/skintone/internal/service"
)

type Dependencies struct {
	Analyzer *service.Analyzer
}

// Options carries the HTTP settings read from configuration
type Options struct {
	BodyLimit        int
	CORSAllowOrigins string
	RateLimitMax     int
	RateLimitWindow  time.Duration
}

type Router struct {
	app         *fiber.App
	logger      *slog.Logger
	deps        *Dependencies
	options     Options
	rateLimiter *middleware.RateLimiter
}

func NewRouter(logger *slog.Logger, options Options, deps *Dependencies) *Router {
	if options.CORSAllowOrigins == "" {
		options.CORSAllowOrigins = "*"
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "Skin Tone API",
		BodyLimit:    options.BodyLimit,
	})

	return &Router{
		app:     app,
		logger:  logger,
		deps:    deps,
		options: options,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: r.options.CORSAllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	locatorName := ""
	variant := domain.VariantClassical
	if r.deps != nil && r.deps.Analyzer != nil {
		locatorName = r.deps.Analyzer.Locator().Name()
		variant = r.deps.Analyzer.Variant()
	}

	// Swagger documentation
	sw := docs.NewSwagger(variant)
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	// Health check endpoints
	healthHandler := handler.NewHealthHandler(locatorName)
	r.app.Get("/", healthHandler.Live)
	r.app.Get("/health", healthHandler.Health)
	r.app.Get("/ready", healthHandler.Ready)

	// Only configure analysis routes if dependencies were provided
	if r.deps != nil && r.deps.Analyzer != nil {
		analyzeHandler := handler.NewAnalyzeHandler(r.deps.Analyzer, r.logger)

		handlers := []fiber.Handler{}
		if r.options.RateLimitMax > 0 {
			r.rateLimiter = middleware.NewRateLimiter(middleware.RateLimiterConfig{
				Max:    r.options.RateLimitMax,
				Window: r.options.RateLimitWindow,
			})
			handlers = append(handlers, r.rateLimiter.Handler())
		}
		handlers = append(handlers, analyzeHandler.Analyze)

		r.app.Post("/analyze", handlers...)
	}
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

// Shutdown waits for in-flight requests until ctx expires
func (r *Router) Shutdown(ctx context.Context) error {
	// Stop rate limiter cleanup goroutine
	if r.rateLimiter != nil {
		r.rateLimiter.Stop()
	}

	return r.app.ShutdownWithContext(ctx)
}

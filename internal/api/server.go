// Package api configures and exposes the HTTP server, routes, metrics and
// related middleware for the job board service.
package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"jobboard/pkg/logger"
	"jobboard/pkg/metrics"

	"jobboard/internal/api/handler/v1handler"
	"jobboard/internal/config"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// HandlerOptions configures cookies and auth behavior of the v1 handlers.
	HandlerOptions v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// BodyLimit caps the request body size in bytes.
	BodyLimit int
	// CORSOrigin is the allowed origin for cross-origin requests.
	CORSOrigin string
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// UploadsDirectory, when non-empty, is served statically under /uploads.
	UploadsDirectory string
}

// NewOptions constructs an Options value from the provided application
// configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		HandlerOptions: v1handler.NewOptions(cfg),

		Addr:             cfg.HTTP.Addr,
		ReadTimeout:      cfg.HTTP.ReadTimeout,
		WriteTimeout:     cfg.HTTP.WriteTimeout,
		IdleTimeout:      cfg.HTTP.IdleTimeout,
		BodyLimit:        cfg.HTTP.BodyLimit,
		CORSOrigin:       cfg.HTTP.CORSOrigin,
		MetricsPath:      cfg.HTTP.MetricsPath,
		UploadsDirectory: cfg.Uploads.Directory,
	}
}

// Deps groups the services the HTTP layer depends on.
type Deps struct {
	v1handler.Deps
}

// NewServer wires up and returns a configured fiber application. It sets up:
// - panic recovery, CORS and request logging middleware
// - Prometheus metrics collection and endpoint (MetricsPath)
// - static serving of uploaded files
// - the v1 API routes under /api/v1
// The caller is responsible for Listen and ShutdownWithContext.
func NewServer(deps Deps, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:           opts.ReadTimeout,
		WriteTimeout:          opts.WriteTimeout,
		IdleTimeout:           opts.IdleTimeout,
		BodyLimit:             opts.BodyLimit,
		ErrorHandler:          v1handler.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     opts.CORSOrigin,
		AllowCredentials: true,
	}))
	app.Use(observe())

	app.Get(opts.MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	if opts.UploadsDirectory != "" {
		app.Static("/uploads", opts.UploadsDirectory)
	}

	v1handler.New(deps.Deps, opts.HandlerOptions).Register(app.Group("/api/v1"))

	return app
}

// observe logs every request and records the Prometheus metrics for it.
func observe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = v1handler.StatusOf(err)
		}
		elapsed := time.Since(start)
		method := c.Method()
		route := c.Route().Path

		metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())

		logger.Info(c.UserContext(), "http request",
			zap.String("method", method),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("duration", elapsed))

		return err
	}
}

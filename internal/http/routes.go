package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/metrics"
)

type Options struct {
	RateLimitPerMinute int
	Metrics            *metrics.Metrics
	Gatherer           prometheus.Gatherer
}

func Register(e *echo.Echo, h *Handler, opts Options) {
	e.HTTPErrorHandler = ErrorHandler(e)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Metrics(opts.Metrics))
	e.Use(middleware.AccessLog())
	// Innermost, so a recovered panic is still logged and counted as a 500.
	e.Use(echomw.Recover())

	e.GET("/healthz", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1", middleware.RateLimiter(opts.RateLimitPerMinute, time.Minute))
	api.POST("/event", h.CreateTask)
	api.GET("/event", h.ListTasks)
	api.GET("/event/:id", h.GetTask)
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"doorman/config"
	"doorman/internal/delivery/http/router/handler"
	"doorman/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

type RouterParams struct {
	fx.In

	Config              *config.Config
	VerificationHandler *handler.VerificationHandler
	Metrics             *metrics.AccessMetrics
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                 *config.Config
	verificationHandler *handler.VerificationHandler
	metrics             *metrics.AccessMetrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                 params.Config,
		verificationHandler: params.VerificationHandler,
		metrics:             params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Operational metrics, including the trigger-failure alert signal
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(
		r.metrics.Registry,
		promhttp.HandlerOpts{},
	)))

	// Scanning devices are unauthenticated; throttle them instead
	limiter := middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(r.cfg.RateLimit.Rate),
			Burst: r.cfg.RateLimit.Burst,
		}),
	})

	accessGroup := e.Group("/access")
	{
		accessGroup.POST("/verify", r.verificationHandler.VerifySecret, limiter)
		accessGroup.GET("/pass/:secret/qr", r.verificationHandler.PassQR, limiter)
	}
}

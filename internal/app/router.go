package app

import (
	"errors"

	"github.com/sunilmaharaj1991-max/BlinkLean/config"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/catalog"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/http"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	// RateLimiter is nil when rate limiting is disabled.
	RateLimiter *middleware.RateLimiter
	// Idempotency is nil when replay of repeated requests is disabled.
	Idempotency *middleware.IdempotencyConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(svc *ServiceComponents, cat *catalog.Catalog, cfg config.ServerConfig) *RouterComponents {
	handler := http.NewHandler(http.Services{
		Availability: svc.Availability,
		Pricer:       svc.Pricer,
		Addresses:    svc.Addresses,
		Assistant:    svc.Assistant,
		Zones:        cat.Zones,
		Rates:        cat.Rates,
	})

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("catalog", catalogCheck(cat))

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.RateLimit,
		RateWindow:        cfg.RateWindow,
		EnableIdempotency: cfg.EnableIdempotency,
		CORSOrigins:       cfg.CORSOrigins,
		SwaggerUser:       cfg.SwaggerUser,
		SwaggerPass:       cfg.SwaggerPass,
		RequestTimeout:    cfg.RequestTimeout,
	}
	if cfg.RateLimit > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	}
	if cfg.EnableIdempotency {
		idempotency := middleware.DefaultIdempotencyConfig()
		routerCfg.Idempotency = &idempotency
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
		RateLimiter:   routerCfg.RateLimiter,
		Idempotency:   routerCfg.Idempotency,
	}
}

func catalogCheck(cat *catalog.Catalog) http.HealthCheckFunc {
	return func() error {
		switch {
		case cat == nil:
			return errors.New("catalog not loaded")
		case cat.Zones == nil || cat.Zones.Len() == 0:
			return errors.New("no service zones")
		case cat.Rates == nil:
			return errors.New("no rate table")
		}
		return nil
	}
}

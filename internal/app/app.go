// Package app wires configuration, catalog, services and the HTTP router together.
package app

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"

	"github.com/sunilmaharaj1991-max/BlinkLean/config"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/catalog"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/http"
)

// App is a fully wired service instance.
type App struct {
	Catalog  *catalog.Catalog
	Services *ServiceComponents
	Router   *gin.Engine

	routerComponents *RouterComponents
	closeOnce        sync.Once
}

// InitializeApp loads the catalog and wires every component.
// A catalog that fails to load or validate is returned as an error.
func InitializeApp(cfg config.Config) (*App, error) {
	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, eris.Wrap(err, "initialize app")
	}
	log.Info().
		Int("zones", cat.Zones.Len()).
		Int("materials", len(cat.Rates.Entries())).
		Int("addresses", cat.Addresses.Len()).
		Str("source", catalogSource(cfg.Catalog.Path)).
		Msg("Catalog loaded")

	return NewApp(cat, cfg), nil
}

// NewApp wires an already loaded catalog.
func NewApp(cat *catalog.Catalog, cfg config.Config) *App {
	services := InitializeServices(cat, cfg.Engine, cfg.Cache)
	routerComponents := InitializeRouter(services, cat, cfg.Server)

	return &App{
		Catalog:          cat,
		Services:         services,
		Router:           http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		routerComponents: routerComponents,
	}
}

// Close stops background workers. Safe to call more than once.
func (a *App) Close() {
	a.closeOnce.Do(func() {
		a.Services.Close()
		if a.routerComponents.RateLimiter != nil {
			a.routerComponents.RateLimiter.Stop()
		}
		if a.routerComponents.Idempotency != nil {
			a.routerComponents.Idempotency.Stop()
		}
	})
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

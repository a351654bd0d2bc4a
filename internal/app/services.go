package app

import (
	"github.com/sunilmaharaj1991-max/BlinkLean/config"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/catalog"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/service"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/service/cache"
)

// ServiceComponents holds the engines and the services built on them.
type ServiceComponents struct {
	Resolver        *service.ZoneResolver
	AddressResolver *service.ZoneResolver
	Pricer          *service.ScrapPricer
	Availability    *service.AvailabilityService
	Addresses       *service.AddressService
	Assistant       *service.AssistantService
	// ResultCache is nil when caching is disabled.
	ResultCache *cache.TTL[string, model.ServiceabilityResult]
}

// InitializeServices builds the services over a loaded catalog.
func InitializeServices(cat *catalog.Catalog, engine config.EngineConfig, cacheCfg config.CacheConfig) *ServiceComponents {
	resolver := service.NewZoneResolver(cat.Zones, service.WithNearThreshold(engine.NearThreshold))
	addressResolver := service.NewZoneResolver(cat.Zones, service.WithNearThreshold(engine.AddressNearThreshold))

	pricer := service.NewScrapPricer(cat.Rates,
		service.WithFluctuationRange(engine.FluctuationMin, engine.FluctuationMax),
		service.WithFraudThreshold(engine.FraudThresholdKg),
		service.WithLargeBasketThreshold(engine.LargeBasketThreshold),
	)

	components := &ServiceComponents{
		Resolver:        resolver,
		AddressResolver: addressResolver,
		Pricer:          pricer,
		Addresses:       service.NewAddressService(cat.Addresses, addressResolver),
		Assistant:       service.NewAssistantService(cat.Assistant),
	}

	var opts []service.AvailabilityOption
	if cacheCfg.Size > 0 {
		components.ResultCache = cache.NewTTL[string, model.ServiceabilityResult]("availability", cacheCfg.Size, cacheCfg.TTL)
		opts = append(opts, service.WithResultCache(components.ResultCache))
	}
	components.Availability = service.NewAvailabilityService(resolver, opts...)

	return components
}

// Close releases background resources.
func (s *ServiceComponents) Close() {
	if s.ResultCache != nil {
		s.ResultCache.Stop()
	}
}

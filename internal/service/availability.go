package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/service/cache"
)

// Advisory and rule texts.
const (
	advisoryAvailable     = "BlinkLean services are available in your area."
	advisoryLaunchingNear = "BlinkLean services are launching soon in your area. Nearest service zone: %s."
	advisoryLaunching     = "BlinkLean services are launching soon in your area."

	ruleScrapEverywhere = "scrap pickup available through all platforms"
	ruleAppOnly         = "cleaning, vehicle, and laundry are app-only"
	ruleAllLocked       = "all services locked"
)

// AvailabilityChecker answers serviceability questions for customers.
type AvailabilityChecker interface {
	Check(ctx context.Context, q model.AvailabilityQuery) (model.AvailabilityReport, error)
}

// AvailabilityOption configures an AvailabilityService.
type AvailabilityOption func(*AvailabilityService)

// AvailabilityService composes resolver output into availability reports.
type AvailabilityService struct {
	resolver Resolver
	cache    cache.Cache[string, model.ServiceabilityResult]
}

// NewAvailabilityService creates the service around a resolver.
func NewAvailabilityService(resolver Resolver, opts ...AvailabilityOption) *AvailabilityService {
	s := &AvailabilityService{resolver: resolver}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithResultCache memoizes resolutions. Resolution is deterministic, so cached
// results never go stale while the registry is unchanged.
func WithResultCache(c cache.Cache[string, model.ServiceabilityResult]) AvailabilityOption {
	return func(s *AvailabilityService) {
		s.cache = c
	}
}

// Check resolves the query point and builds the report.
func (s *AvailabilityService) Check(ctx context.Context, q model.AvailabilityQuery) (model.AvailabilityReport, error) {
	if err := ctx.Err(); err != nil {
		return model.AvailabilityReport{}, err
	}

	result := s.resolve(q.Point)
	report := BuildReport(result)
	report.Pincode = q.Pincode

	log.Ctx(ctx).Debug().
		Float64("latitude", q.Point.Latitude).
		Float64("longitude", q.Point.Longitude).
		Str("proximity", string(result.Proximity)).
		Str("nearest_zone", result.NearestZone).
		Msg("Availability checked")
	return report, nil
}

func (s *AvailabilityService) resolve(p model.GeoPoint) model.ServiceabilityResult {
	if s.cache == nil || !p.IsFinite() {
		return s.resolver.Resolve(p)
	}

	key := cacheKey(p)
	if r, ok := s.cache.Get(key); ok {
		return r
	}
	r := s.resolver.Resolve(p)
	s.cache.Set(key, r)
	return r
}

func cacheKey(p model.GeoPoint) string {
	return fmt.Sprintf("%.6f,%.6f", p.Latitude, p.Longitude)
}

// BuildReport maps a resolution to allowed services, rules and advisory text.
// The near advisory names the nearest zone; the far advisory does not.
func BuildReport(r model.ServiceabilityResult) model.AvailabilityReport {
	report := model.AvailabilityReport{ServiceabilityResult: r}
	switch r.Proximity {
	case model.ProximityContained:
		report.AllowedServices = []string{
			model.ServiceScrap, model.ServiceCleaning, model.ServiceVehicle, model.ServiceLaundry,
		}
		report.RestrictionRules = []string{ruleScrapEverywhere, ruleAppOnly}
		report.Advisory = advisoryAvailable
	case model.ProximityNear:
		report.AllowedServices = []string{}
		report.RestrictionRules = []string{ruleAllLocked}
		report.Advisory = fmt.Sprintf(advisoryLaunchingNear, r.NearestZone)
	default:
		report.AllowedServices = []string{}
		report.RestrictionRules = []string{ruleAllLocked}
		report.Advisory = advisoryLaunching
	}
	return report
}

// Package service contains the decision engines of the BlinkLean service and
// the thin services built around them.
package service

import (
	"math"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/catalog"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/geometry"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/metrics"
)

// DefaultNearThreshold is the distance in degrees under which an uncovered
// point is classified as near a zone.
const DefaultNearThreshold = 0.02

// Resolver decides serviceability of a point.
type Resolver interface {
	Resolve(point model.GeoPoint) model.ServiceabilityResult
}

// ResolverOption configures a ZoneResolver.
type ResolverOption func(*ZoneResolver)

// ZoneResolver resolves points against an ordered zone registry.
// It holds no mutable state and is safe for concurrent use.
type ZoneResolver struct {
	zones         []catalog.ServiceZone
	nearThreshold float64
}

// NewZoneResolver creates a resolver over the registry's zones.
func NewZoneResolver(registry *catalog.ZoneRegistry, opts ...ResolverOption) *ZoneResolver {
	r := &ZoneResolver{
		zones:         registry.Zones(),
		nearThreshold: DefaultNearThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithNearThreshold sets the near/far cut-off in degrees.
func WithNearThreshold(deg float64) ResolverOption {
	return func(r *ZoneResolver) {
		if deg > 0 {
			r.nearThreshold = deg
		}
	}
}

// NearThreshold returns the configured near/far cut-off.
func (r *ZoneResolver) NearThreshold() float64 {
	return r.nearThreshold
}

// Resolve classifies the point. The first zone in registry order that contains
// the point wins. Otherwise the zone with the smallest boundary distance is
// reported, ties going to the earlier zone.
func (r *ZoneResolver) Resolve(point model.GeoPoint) model.ServiceabilityResult {
	result := r.resolve(point)
	metrics.RecordResolution(string(result.Proximity))
	return result
}

func (r *ZoneResolver) resolve(point model.GeoPoint) model.ServiceabilityResult {
	if len(r.zones) == 0 {
		return model.ServiceabilityResult{DistanceDeg: math.Inf(1), Proximity: model.ProximityFar}
	}
	if !point.IsFinite() {
		return model.ServiceabilityResult{
			NearestZone: r.zones[0].Name,
			DistanceDeg: math.Inf(1),
			Proximity:   model.ProximityFar,
		}
	}

	for _, z := range r.zones {
		if geometry.Contains(z.Polygon, point.Longitude, point.Latitude) {
			return model.ServiceabilityResult{
				Serviceable: true,
				NearestZone: z.Name,
				DistanceDeg: 0,
				Proximity:   model.ProximityContained,
			}
		}
	}

	nearest := r.zones[0].Name
	best := math.Inf(1)
	for _, z := range r.zones {
		if d := geometry.DistanceToBoundary(z.Polygon, point.Longitude, point.Latitude); d < best {
			best = d
			nearest = z.Name
		}
	}

	proximity := model.ProximityFar
	if best < r.nearThreshold {
		proximity = model.ProximityNear
	}
	return model.ServiceabilityResult{
		NearestZone: nearest,
		DistanceDeg: best,
		Proximity:   proximity,
	}
}

// Package model defines the core domain entities for the serviceability and scrap pricing service.
package model

import "math"

// Proximity classifies where a point lies relative to the nearest service zone.
type Proximity string

const (
	// ProximityContained means the point is inside (or on the boundary of) a zone.
	ProximityContained Proximity = "contained"
	// ProximityNear means the point is outside every zone but closer than the near threshold.
	ProximityNear Proximity = "near"
	// ProximityFar means the point is outside every zone and beyond the near threshold.
	ProximityFar Proximity = "far"
)

// GeoPoint is a coordinate pair in degrees, longitude first.
//
// @Description Geographic point in degrees
type GeoPoint struct {
	Longitude float64 `json:"longitude" example:"77.535"`
	Latitude  float64 `json:"latitude" example:"12.965"`
}

// NewGeoPoint builds a GeoPoint from the latitude/longitude order used by clients.
func NewGeoPoint(latitude, longitude float64) GeoPoint {
	return GeoPoint{Longitude: longitude, Latitude: latitude}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p GeoPoint) IsFinite() bool {
	return !math.IsNaN(p.Longitude) && !math.IsInf(p.Longitude, 0) &&
		!math.IsNaN(p.Latitude) && !math.IsInf(p.Latitude, 0)
}

// ServiceabilityResult is the outcome of resolving a point against the zone registry.
//
// NearestZone is populated for every proximity class, including far.
//
// @Description Zone resolution result
// @Example {"serviceable": true, "nearest_zone": "Vijayanagar", "distance_deg": 0, "proximity": "contained"}
type ServiceabilityResult struct {
	Serviceable bool      `json:"serviceable" example:"true"`
	NearestZone string    `json:"nearest_zone,omitempty" example:"Vijayanagar"`
	DistanceDeg float64   `json:"distance_deg" example:"0"`
	Proximity   Proximity `json:"proximity" example:"contained"`
}

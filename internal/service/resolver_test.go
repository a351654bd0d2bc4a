package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
)

func TestZoneResolver_DefaultCatalog(t *testing.T) {
	r := NewZoneResolver(defaultCatalog(t).Zones)

	tests := []struct {
		name            string
		lat, lon        float64
		wantServiceable bool
		wantZone        string
		wantProximity   model.Proximity
		wantDistance    float64
	}{
		{
			name:            "Vijayanagar centre",
			lat:             12.965,
			lon:             77.535,
			wantServiceable: true,
			wantZone:        "Vijayanagar",
			wantProximity:   model.ProximityContained,
		},
		{
			name:            "interior of Rajarajeshwari Nagar only",
			lat:             12.925,
			lon:             77.520,
			wantServiceable: true,
			wantZone:        "Rajarajeshwari Nagar",
			wantProximity:   model.ProximityContained,
		},
		{
			name:            "overlap goes to the earlier zone",
			lat:             12.957,
			lon:             77.530,
			wantServiceable: true,
			wantZone:        "Vijayanagar",
			wantProximity:   model.ProximityContained,
		},
		{
			name:          "just east of Vijayanagar is near",
			lat:           12.965,
			lon:           77.550,
			wantZone:      "Vijayanagar",
			wantProximity: model.ProximityNear,
			wantDistance:  0.005,
		},
		{
			name:          "Indiranagar is far but still names a zone",
			lat:           12.978,
			lon:           77.640,
			wantZone:      "Rajajinagar",
			wantProximity: model.ProximityFar,
			wantDistance:  0.075,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(model.NewGeoPoint(tt.lat, tt.lon))

			assert.Equal(t, tt.wantServiceable, got.Serviceable)
			assert.Equal(t, tt.wantZone, got.NearestZone)
			assert.Equal(t, tt.wantProximity, got.Proximity)
			assert.InDelta(t, tt.wantDistance, got.DistanceDeg, 1e-9)
		})
	}
}

func TestZoneResolver_Boundary(t *testing.T) {
	r := NewZoneResolver(squareRegistry(t, square("A", 0, 0, 1)))

	for _, p := range []model.GeoPoint{
		{Longitude: 0, Latitude: 0.5},
		{Longitude: 1, Latitude: 1},
		{Longitude: 0.5, Latitude: 0},
	} {
		got := r.Resolve(p)
		assert.True(t, got.Serviceable, "%+v", p)
		assert.Equal(t, model.ProximityContained, got.Proximity)
		assert.Zero(t, got.DistanceDeg)
	}
}

func TestZoneResolver_NearestTieGoesToFirstZone(t *testing.T) {
	r := NewZoneResolver(squareRegistry(t,
		square("West", 0, 0, 1),
		square("East", 3, 0, 1),
	))

	got := r.Resolve(model.GeoPoint{Longitude: 2, Latitude: 0.5})
	assert.False(t, got.Serviceable)
	assert.Equal(t, "West", got.NearestZone)
	assert.InDelta(t, 1.0, got.DistanceDeg, 1e-12)
	assert.Equal(t, model.ProximityFar, got.Proximity)
}

func TestZoneResolver_NearThreshold(t *testing.T) {
	reg := squareRegistry(t, square("A", 0, 0, 1))
	p := model.GeoPoint{Longitude: 1.03, Latitude: 0.5}

	assert.Equal(t, model.ProximityFar, NewZoneResolver(reg).Resolve(p).Proximity)

	wide := NewZoneResolver(reg, WithNearThreshold(DefaultAddressNearThreshold))
	assert.Equal(t, DefaultAddressNearThreshold, wide.NearThreshold())
	assert.Equal(t, model.ProximityNear, wide.Resolve(p).Proximity)

	ignored := NewZoneResolver(reg, WithNearThreshold(-1))
	assert.Equal(t, DefaultNearThreshold, ignored.NearThreshold())
}

func TestZoneResolver_ThresholdIsExclusive(t *testing.T) {
	reg := squareRegistry(t, square("A", 0, 0, 1))
	r := NewZoneResolver(reg, WithNearThreshold(0.5))

	assert.Equal(t, model.ProximityFar, r.Resolve(model.GeoPoint{Longitude: 1.5, Latitude: 0.5}).Proximity)
	assert.Equal(t, model.ProximityNear, r.Resolve(model.GeoPoint{Longitude: 1.25, Latitude: 0.5}).Proximity)
}

func TestZoneResolver_NonFinitePoint(t *testing.T) {
	r := NewZoneResolver(squareRegistry(t, square("A", 0, 0, 1), square("B", 5, 5, 1)))

	for _, p := range []model.GeoPoint{
		{Longitude: math.NaN(), Latitude: 0},
		{Longitude: 0, Latitude: math.Inf(-1)},
	} {
		got := r.Resolve(p)
		assert.False(t, got.Serviceable)
		assert.Equal(t, "A", got.NearestZone)
		assert.True(t, math.IsInf(got.DistanceDeg, 1))
		assert.Equal(t, model.ProximityFar, got.Proximity)
	}
}

package catalog

import (
	"errors"
	"fmt"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/geometry"
)

var (
	// ErrNoZones is returned when a registry would hold no zones.
	ErrNoZones = errors.New("zone registry requires at least one zone")
	// ErrDuplicateZone is returned when two zones share a name.
	ErrDuplicateZone = errors.New("duplicate zone name")
)

// ZoneDefinition is the configuration form of a service zone.
type ZoneDefinition struct {
	Name     string       `yaml:"name" validate:"required"`
	Vertices [][2]float64 `yaml:"vertices" validate:"min=3"`
}

// ServiceZone is a named service-area polygon.
type ServiceZone struct {
	Name    string
	Polygon *geometry.Polygon
}

// ZoneRegistry is the immutable, ordered table of service zones.
// Iteration order is the definition order and drives every tie-break.
type ZoneRegistry struct {
	zones  []ServiceZone
	byName map[string]int
}

// NewZoneRegistry validates the definitions and builds the registry.
func NewZoneRegistry(defs []ZoneDefinition) (*ZoneRegistry, error) {
	if len(defs) == 0 {
		return nil, ErrNoZones
	}

	r := &ZoneRegistry{
		zones:  make([]ServiceZone, 0, len(defs)),
		byName: make(map[string]int, len(defs)),
	}
	for _, def := range defs {
		if _, exists := r.byName[def.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateZone, def.Name)
		}

		vertices := make([]geometry.Vertex, len(def.Vertices))
		for i, v := range def.Vertices {
			vertices[i] = geometry.Vertex(v)
		}
		poly, err := geometry.NewPolygon(vertices)
		if err != nil {
			return nil, fmt.Errorf("zone %q: %w", def.Name, err)
		}

		r.byName[def.Name] = len(r.zones)
		r.zones = append(r.zones, ServiceZone{Name: def.Name, Polygon: poly})
	}
	return r, nil
}

// Zones returns the zones in definition order.
func (r *ZoneRegistry) Zones() []ServiceZone {
	out := make([]ServiceZone, len(r.zones))
	copy(out, r.zones)
	return out
}

// Len returns the number of zones.
func (r *ZoneRegistry) Len() int {
	return len(r.zones)
}

// Lookup finds a zone by exact name.
func (r *ZoneRegistry) Lookup(name string) (ServiceZone, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return ServiceZone{}, false
	}
	return r.zones[idx], true
}

// Names returns zone names in definition order.
func (r *ZoneRegistry) Names() []string {
	names := make([]string, len(r.zones))
	for i, z := range r.zones {
		names[i] = z.Name
	}
	return names
}

// Package geometry provides the planar primitives used to match points against service zones.
//
// Coordinates are raw degrees with longitude on the x-axis and latitude on the y-axis.
// Distances are Euclidean in degree space, which is accurate enough for zones a few
// kilometres across and is only ever compared against small thresholds.
package geometry

import (
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/location"
)

// ErrDegeneratePolygon is returned when a polygon has fewer than 3 distinct vertices.
var ErrDegeneratePolygon = errors.New("polygon requires at least 3 distinct vertices")

// Vertex is a (longitude, latitude) pair.
type Vertex [2]float64

// Polygon is an immutable simple polygon with a single closed outer ring.
type Polygon struct {
	poly   *geom.Polygon
	ring   []float64
	bounds *geom.Bounds
}

// NewPolygon builds a polygon from an ordered vertex list.
// The ring is closed automatically when the last vertex differs from the first.
func NewPolygon(vertices []Vertex) (*Polygon, error) {
	if countDistinct(vertices) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrDegeneratePolygon, countDistinct(vertices))
	}

	flat := make([]float64, 0, (len(vertices)+1)*2)
	for _, v := range vertices {
		flat = append(flat, v[0], v[1])
	}
	if first, last := vertices[0], vertices[len(vertices)-1]; first != last {
		flat = append(flat, first[0], first[1])
	}

	poly := geom.NewPolygonFlat(geom.XY, flat, []int{len(flat)})
	return &Polygon{
		poly:   poly,
		ring:   poly.LinearRing(0).FlatCoords(),
		bounds: poly.Bounds(),
	}, nil
}

// Geom exposes the underlying go-geom polygon for encoding.
// Callers must not mutate it.
func (p *Polygon) Geom() *geom.Polygon {
	return p.poly
}

// Vertices returns the closed ring as a vertex list.
func (p *Polygon) Vertices() []Vertex {
	out := make([]Vertex, 0, len(p.ring)/2)
	for i := 0; i+1 < len(p.ring); i += 2 {
		out = append(out, Vertex{p.ring[i], p.ring[i+1]})
	}
	return out
}

// Contains reports whether the point lies inside the polygon.
// Points on the boundary count as contained.
func Contains(p *Polygon, lon, lat float64) bool {
	pt := geom.Coord{lon, lat}
	if !p.bounds.OverlapsPoint(geom.XY, pt) {
		return false
	}
	return xy.LocatePointInRing(geom.XY, pt, p.ring) != location.Exterior
}

// DistanceToBoundary returns 0 for contained points, otherwise the minimum
// distance from the point to any edge segment of the polygon.
func DistanceToBoundary(p *Polygon, lon, lat float64) float64 {
	if Contains(p, lon, lat) {
		return 0
	}
	return xy.DistanceFromPointToLineString(geom.XY, geom.Coord{lon, lat}, p.ring)
}

func countDistinct(vertices []Vertex) int {
	seen := make(map[Vertex]struct{}, len(vertices))
	for _, v := range vertices {
		seen[v] = struct{}{}
	}
	return len(seen)
}

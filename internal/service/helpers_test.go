package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/catalog"
)

// sequenceSource replays fixed multipliers, cycling when exhausted.
type sequenceSource struct {
	mu     sync.Mutex
	values []float64
	next   int
	calls  int
}

func newSequence(values ...float64) *sequenceSource {
	return &sequenceSource{values: values}
}

func (s *sequenceSource) Multiplier(_, _ float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.next%len(s.values)]
	s.next++
	s.calls++
	return v
}

func defaultCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func squareRegistry(t *testing.T, defs ...catalog.ZoneDefinition) *catalog.ZoneRegistry {
	t.Helper()
	r, err := catalog.NewZoneRegistry(defs)
	require.NoError(t, err)
	return r
}

func square(name string, x0, y0, size float64) catalog.ZoneDefinition {
	return catalog.ZoneDefinition{
		Name: name,
		Vertices: [][2]float64{
			{x0, y0}, {x0 + size, y0}, {x0 + size, y0 + size}, {x0, y0 + size},
		},
	}
}

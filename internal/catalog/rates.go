package catalog

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrMissingFallback is returned when the fallback material has no rate.
	ErrMissingFallback = errors.New("fallback material missing from rate table")
	// ErrInvalidRate is returned for non-positive base rates.
	ErrInvalidRate = errors.New("base rate must be positive")
	// ErrDuplicateMaterial is returned when two entries normalize to the same name.
	ErrDuplicateMaterial = errors.New("duplicate material")
)

// RateEntry is a material and its base rate per kilogram.
type RateEntry struct {
	Material  string  `yaml:"name" json:"material" validate:"required"`
	RatePerKg float64 `yaml:"rate_per_kg" json:"rate_per_kg" validate:"gt=0"`
}

// RateTable maps case-folded material names to base rates.
// It is immutable once built.
type RateTable struct {
	entries  []RateEntry
	rates    map[string]float64
	fallback RateEntry
	currency string
}

// NormalizeMaterial case-folds a material name. No other normalization is applied:
// whitespace, plurals and synonyms are significant.
func NormalizeMaterial(material string) string {
	// A Caser is stateful, so each call gets its own.
	return cases.Fold().String(material)
}

// DisplayMaterial lower-cases a material name for echoing back to clients.
// Unlike NormalizeMaterial it keeps characters such as ß intact.
func DisplayMaterial(material string) string {
	return cases.Lower(language.Und).String(material)
}

// NewRateTable builds a rate table. The fallback material must be one of the entries.
func NewRateTable(entries []RateEntry, fallback, currency string) (*RateTable, error) {
	t := &RateTable{
		entries:  make([]RateEntry, 0, len(entries)),
		rates:    make(map[string]float64, len(entries)),
		currency: currency,
	}
	for _, e := range entries {
		if !(e.RatePerKg > 0) {
			return nil, fmt.Errorf("%w: %q has %v", ErrInvalidRate, e.Material, e.RatePerKg)
		}
		key := NormalizeMaterial(e.Material)
		if _, exists := t.rates[key]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMaterial, key)
		}
		t.rates[key] = e.RatePerKg
		t.entries = append(t.entries, RateEntry{Material: DisplayMaterial(e.Material), RatePerKg: e.RatePerKg})
	}

	rate, ok := t.rates[NormalizeMaterial(fallback)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingFallback, fallback)
	}
	t.fallback = RateEntry{Material: DisplayMaterial(fallback), RatePerKg: rate}
	return t, nil
}

// Lookup matches material by case folding and returns its lower-cased name
// with the base rate. Unknown materials silently get the fallback rate; known
// reports whether the material itself was found.
func (t *RateTable) Lookup(material string) (name string, rate float64, known bool) {
	name = DisplayMaterial(material)
	if rate, ok := t.rates[NormalizeMaterial(material)]; ok {
		return name, rate, true
	}
	return name, t.fallback.RatePerKg, false
}

// Fallback returns the designated fallback entry.
func (t *RateTable) Fallback() RateEntry {
	return t.fallback
}

// Currency returns the ISO currency code rates are expressed in.
func (t *RateTable) Currency() string {
	return t.currency
}

// Entries returns all entries in definition order.
func (t *RateTable) Entries() []RateEntry {
	out := make([]RateEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Package catalog holds the immutable reference tables the service runs on:
// service zones, material rates, the address lookup table and the assistant script.
//
// A catalog is loaded once at startup and shared read-only by every request.
package catalog

import (
	_ "embed"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/rotisserie/eris"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// DefaultFallbackReply answers unmatched chat messages when the catalog has no fallback.
var DefaultFallbackReply = Reply{
	Response: "I can help with our services, scrap pricing, booking and availability. How can I assist you?",
	Action:   "Contact Support if you need specific help.",
}

// File is the on-disk catalog schema.
type File struct {
	Zones     []ZoneDefinition `yaml:"zones" validate:"min=1,dive"`
	Rates     RatesSection     `yaml:"rates"`
	Addresses []model.Address  `yaml:"addresses" validate:"dive"`
	Assistant AssistantScript  `yaml:"assistant"`
}

// RatesSection is the rate table part of the catalog file.
type RatesSection struct {
	Currency  string      `yaml:"currency" validate:"omitempty,len=3"`
	Fallback  string      `yaml:"fallback" validate:"required"`
	Materials []RateEntry `yaml:"materials" validate:"min=1,dive"`
}

// Catalog bundles the loaded reference tables.
type Catalog struct {
	Zones     *ZoneRegistry
	Rates     *RateTable
	Addresses *AddressBook
	Assistant *AssistantScript
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path. An empty path selects the embedded default.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: read %s", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "catalog: load %s", path)
	}
	return c, nil
}

// Parse decodes and validates a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrap(err, "catalog: decode yaml")
	}
	return Build(f)
}

// Build validates a decoded catalog file and constructs the tables.
func Build(f File) (*Catalog, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(f); err != nil {
		return nil, eris.Wrap(err, "catalog: validate")
	}

	zones, err := NewZoneRegistry(f.Zones)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: zones")
	}

	currency := f.Rates.Currency
	if currency == "" {
		currency = "INR"
	}
	rates, err := NewRateTable(f.Rates.Materials, f.Rates.Fallback, currency)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: rates")
	}

	script := f.Assistant
	if script.Fallback.Response == "" {
		script.Fallback = DefaultFallbackReply
	}
	return &Catalog{
		Zones:     zones,
		Rates:     rates,
		Addresses: NewAddressBook(f.Addresses),
		Assistant: &script,
	}, nil
}

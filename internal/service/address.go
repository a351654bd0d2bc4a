package service

import (
	"fmt"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/catalog"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
)

// DefaultAddressNearThreshold is the wider "nearby" cut-off used for address hints.
const DefaultAddressNearThreshold = 0.05

const (
	addressAvailable     = "Pickup is available at this location."
	addressLaunchingNear = "This address is outside our current service area. Service launching soon near %s."
	addressOutside       = "This address is outside our current service area."
)

// AddressSuggester annotates address lookups with serviceability.
type AddressSuggester interface {
	Suggest(query string) []model.AddressSuggestion
}

// AddressService searches the address book and resolves every hit.
type AddressService struct {
	book     *catalog.AddressBook
	resolver Resolver
}

// NewAddressService creates the service. The resolver should be configured
// with the address near threshold.
func NewAddressService(book *catalog.AddressBook, resolver Resolver) *AddressService {
	return &AddressService{book: book, resolver: resolver}
}

// Suggest returns the matching addresses in address-book order.
func (s *AddressService) Suggest(query string) []model.AddressSuggestion {
	matches := s.book.Search(query)
	out := make([]model.AddressSuggestion, 0, len(matches))
	for _, a := range matches {
		r := s.resolver.Resolve(a.Point())
		out = append(out, model.AddressSuggestion{
			Address:     a,
			Serviceable: r.Serviceable,
			Proximity:   r.Proximity,
			Message:     addressMessage(r),
		})
	}
	return out
}

func addressMessage(r model.ServiceabilityResult) string {
	switch r.Proximity {
	case model.ProximityContained:
		return addressAvailable
	case model.ProximityNear:
		return fmt.Sprintf(addressLaunchingNear, r.NearestZone)
	default:
		return addressOutside
	}
}

package catalog

import (
	"strings"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
)

// AddressBook is the static address lookup table.
type AddressBook struct {
	entries []model.Address
}

// NewAddressBook copies the entries into an immutable address book.
func NewAddressBook(entries []model.Address) *AddressBook {
	b := &AddressBook{entries: make([]model.Address, len(entries))}
	copy(b.entries, entries)
	return b
}

// Search returns entries whose formatted address or pincode contains the query,
// in table order. Matching on the address is case-insensitive.
func (b *AddressBook) Search(query string) []model.Address {
	q := NormalizeMaterial(query)
	matches := make([]model.Address, 0)
	for _, a := range b.entries {
		if strings.Contains(NormalizeMaterial(a.FormattedAddress), q) || strings.Contains(a.Pincode, q) {
			matches = append(matches, a)
		}
	}
	return matches
}

// Len returns the number of entries.
func (b *AddressBook) Len() int {
	return len(b.entries)
}

// Intent is a keyword-triggered assistant reply.
type Intent struct {
	Name     string   `yaml:"name" validate:"required"`
	Keywords []string `yaml:"keywords" validate:"min=1,dive,required"`
	Response string   `yaml:"response" validate:"required"`
	Action   string   `yaml:"action"`
}

// Reply is a canned assistant answer.
type Reply struct {
	Response string `yaml:"response"`
	Action   string `yaml:"action"`
}

// AssistantScript holds the assistant's static rule set.
// Intents are evaluated in order; the first keyword hit wins.
type AssistantScript struct {
	ServiceablePincodes []string `yaml:"serviceable_pincodes" validate:"dive,numeric,len=6"`
	Intents             []Intent `yaml:"intents" validate:"dive"`
	Fallback            Reply    `yaml:"fallback"`
}

// IsServiceablePincode reports whether the pincode is on the serviceable list.
func (s *AssistantScript) IsServiceablePincode(pincode string) bool {
	for _, p := range s.ServiceablePincodes {
		if p == pincode {
			return true
		}
	}
	return false
}

// Match returns the first intent with a keyword contained in the message.
func (s *AssistantScript) Match(message string) (Intent, bool) {
	msg := strings.ToLower(message)
	for _, intent := range s.Intents {
		for _, kw := range intent.Keywords {
			if strings.Contains(msg, kw) {
				return intent, true
			}
		}
	}
	return Intent{}, false
}

package model

// Address is an entry of the address lookup table.
type Address struct {
	FormattedAddress string  `json:"formatted_address" yaml:"address" validate:"required"`
	Locality         string  `json:"locality" yaml:"locality" validate:"required"`
	Pincode          string  `json:"pincode" yaml:"pincode" validate:"required,numeric,len=6"`
	Latitude         float64 `json:"latitude" yaml:"lat" validate:"gte=-90,lte=90"`
	Longitude        float64 `json:"longitude" yaml:"lon" validate:"gte=-180,lte=180"`
}

// Point returns the address location.
func (a Address) Point() GeoPoint {
	return NewGeoPoint(a.Latitude, a.Longitude)
}

// AddressSuggestion is an address annotated with serviceability.
//
// @Description Address suggestion with serviceability annotation
type AddressSuggestion struct {
	Address
	Serviceable bool      `json:"serviceable" example:"true"`
	Proximity   Proximity `json:"proximity" example:"contained"`
	Message     string    `json:"message" example:"Pickup is available at this location."`
}

// ChatReply is the assistant's answer to a customer message.
//
// @Description Assistant reply
type ChatReply struct {
	Response        string `json:"response"`
	SuggestedAction string `json:"suggested_action,omitempty"`
}

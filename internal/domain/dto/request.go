// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import "github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"

// AvailabilityRequest represents the JSON request body for the availability check endpoint.
//
// Coordinates are pointers so that an explicit 0 is accepted while a missing
// field is rejected.
//
// @Description Location to check for service availability
// @Example {"latitude": 12.965, "longitude": 77.535, "pincode": "560040"}
type AvailabilityRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required,gte=-90,lte=90" example:"12.965"`
	Longitude *float64 `json:"longitude" binding:"required,gte=-180,lte=180" example:"77.535"`
	// Pincode is optional free text echoed back in the report
	Pincode string `json:"pincode,omitempty" example:"560040"`
} // @name AvailabilityRequest

// Query converts the request to a domain query. Call only after binding succeeded.
func (r *AvailabilityRequest) Query() model.AvailabilityQuery {
	return model.AvailabilityQuery{
		Point:   model.NewGeoPoint(*r.Latitude, *r.Longitude),
		Pincode: r.Pincode,
	}
}

// ScrapItemRequest is one material line of a prediction request.
type ScrapItemRequest struct {
	Material string  `json:"material" binding:"required" example:"copper"`
	Weight   float64 `json:"weight" binding:"required,gt=0,lte=5000" example:"10"`
} // @name ScrapItemRequest

// PredictRequest represents the JSON request body for the scrap price prediction endpoint.
//
// Items must be present but may be empty.
//
// @Description Basket of scrap materials to value
// @Example {"items": [{"material": "copper", "weight": 10}], "location": "Vijayanagar"}
type PredictRequest struct {
	Items []ScrapItemRequest `json:"items" binding:"required,dive"`
	// Location is informational and does not affect the estimate
	Location string `json:"location,omitempty" example:"Vijayanagar"`
} // @name PredictRequest

// ScrapItems converts the request items to domain items, preserving order.
func (r *PredictRequest) ScrapItems() []model.ScrapItem {
	items := make([]model.ScrapItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = model.ScrapItem{Material: it.Material, WeightKg: it.Weight}
	}
	return items
}

// AddressSuggestRequest represents the JSON request body for address suggestions.
//
// @Description Free-text address or pincode search
// @Example {"query": "vijayanagar"}
type AddressSuggestRequest struct {
	Query string `json:"query" binding:"required" example:"vijayanagar"`
} // @name AddressSuggestRequest

// ChatRequest represents the JSON request body for the chat assistant.
//
// @Description Customer message for the assistant
// @Example {"message": "How much do you pay for copper?"}
type ChatRequest struct {
	Message string `json:"message" binding:"required" example:"How much do you pay for copper?"`
	// Pincode is optional; any value is answered, serviceable or not
	Pincode string `json:"pincode,omitempty" example:"560040"`
} // @name ChatRequest

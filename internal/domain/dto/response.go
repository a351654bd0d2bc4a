package dto

import (
	"net/http"
	"time"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"weight: must be greater than 0 and at most 5000 kg"`
	// Details maps offending fields to the rule they broke
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails attaches per-field details to the error response.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrCodeInvalidRequest
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// PredictResponse is the scrap valuation returned to clients.
//
// @Description Basket valuation with advisory text
type PredictResponse struct {
	model.BasketPrediction
	Currency string `json:"currency" example:"INR"`
	Advisory string `json:"advisory" example:"Estimated value is based on current market rates. Final value will be confirmed at pickup."`
} // @name PredictResponse

// AddressSuggestResponse lists the matching addresses.
//
// @Description Address suggestions annotated with serviceability
type AddressSuggestResponse struct {
	Suggestions []model.AddressSuggestion `json:"suggestions"`
} // @name AddressSuggestResponse

// RateResponse is one row of the published rate table.
type RateResponse struct {
	Material  string  `json:"material" example:"copper"`
	RatePerKg float64 `json:"rate_per_kg" example:"400"`
	Fallback  bool    `json:"fallback,omitempty" example:"false"`
} // @name RateResponse

// RatesResponse is the published base rate table.
//
// @Description Base market rates per kilogram
type RatesResponse struct {
	Currency string         `json:"currency" example:"INR"`
	Fallback string         `json:"fallback_material" example:"mixed scrap"`
	Rates    []RateResponse `json:"rates"`
} // @name RatesResponse

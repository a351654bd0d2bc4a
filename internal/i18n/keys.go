// Package i18n provides internationalization support for the BlinkLean service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyValidationCoordinates indicates latitude/longitude out of range.
	ErrKeyValidationCoordinates = "error.validation.coordinates"
	// ErrKeyValidationWeight indicates an item weight outside (0, 5000] kg.
	ErrKeyValidationWeight = "error.validation.weight"
	// ErrKeyValidationItems indicates a missing or malformed item list.
	ErrKeyValidationItems = "error.validation.items"
	// ErrKeyValidationQuery indicates an empty address query.
	ErrKeyValidationQuery = "error.validation.query"
	// ErrKeyValidationMessage indicates an empty chat message.
	ErrKeyValidationMessage = "error.validation.message"
)

package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeProductExists      = "PRODUCT_EXISTS"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeMissingTranslation = "MISSING_TRANSLATION"
	ErrCodeConfiguration      = "CONFIGURATION_ERROR"
	ErrCodeDispatchInFlight   = "DISPATCH_IN_FLIGHT"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// DomainError carries a stable error code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrProductExists      = NewDomainError(ErrCodeProductExists, "Product with this ID already exists")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrMissingTranslation = NewDomainError(ErrCodeMissingTranslation, "Translation is missing for the requested locale")
	ErrConfiguration      = NewDomainError(ErrCodeConfiguration, "Product price schedule is misconfigured")
	ErrDispatchInFlight   = NewDomainError(ErrCodeDispatchInFlight, "An order dispatch is already in flight")
	ErrNoProduct          = NewDomainError(ErrCodeProductNotFound, "No product loaded for order composition")
)

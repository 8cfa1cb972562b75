package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeMissingField         = "MISSING_FIELD"
	ErrCodeProductNotFound      = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidQuantityDelta = "INVALID_QUANTITY_DELTA"
	ErrCodeInvalidCatalog       = "INVALID_CATALOG"
	ErrCodeUnknownAction        = "UNKNOWN_ACTION"
	ErrCodeStorageUnavailable   = "STORAGE_UNAVAILABLE"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// Domain errors for business logic
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
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidQuantityDelta = NewDomainError(ErrCodeInvalidQuantityDelta, "Quantity can only change by one unit at a time")
	ErrInvalidCatalog       = NewDomainError(ErrCodeInvalidCatalog, "Catalogue document could not be parsed")
	ErrUnknownAction        = NewDomainError(ErrCodeUnknownAction, "Unknown storefront action")
	ErrStorageUnavailable   = NewDomainError(ErrCodeStorageUnavailable, "Cart storage is unavailable")
	ErrMissingField         = NewDomainError(ErrCodeMissingField, "Required field is missing")
)

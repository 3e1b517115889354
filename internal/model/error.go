package model

// Error codes attached to domain errors.
const (
	ErrCodeInvalidState   = "INVALID_STATE"
	ErrCodeUnknownOffice  = "UNKNOWN_OFFICE"
	ErrCodeInvalidProduct = "INVALID_PRODUCT"
)

// DomainError is an error raised by inventory business rules.
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
	ErrInvalidState   = NewDomainError(ErrCodeInvalidState, "office location has no country information")
	ErrUnknownOffice  = NewDomainError(ErrCodeUnknownOffice, "office must be one of (S)weden, (E)Spain or (U)USA")
	ErrInvalidProduct = NewDomainError(ErrCodeInvalidProduct, "product is missing required fields or has a negative price")
)

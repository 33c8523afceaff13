package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Standard error codes for API responses
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeUnauthorised  = "UNAUTHORIZED"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// DomainError is a business logic error carried across layer boundaries.
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
	ErrMissingFields       = NewDomainError(ErrCodeValidation, "All fields are required")
	ErrCredentialsRequired = NewDomainError(ErrCodeValidation, "Email and password are required")
	ErrFieldsNotNumeric    = NewDomainError(ErrCodeValidation, "Order ID, product ID, and quantity must be numbers")
	ErrQuantityNotNumeric  = NewDomainError(ErrCodeValidation, "ID and quantity must be numbers")
	ErrEmailTaken          = NewDomainError(ErrCodeConflict, "Email is already registered")
	ErrUserNotFound        = NewDomainError(ErrCodeNotFound, "User not found")
	ErrProductNotFound     = NewDomainError(ErrCodeNotFound, "Product not found")
	ErrOrderNotFound       = NewDomainError(ErrCodeNotFound, "Order not found")
	ErrOrderItemNotFound   = NewDomainError(ErrCodeNotFound, "Order item not found")
	ErrNoOrderItems        = NewDomainError(ErrCodeNotFound, "No order items available")
	ErrNoItemsForOrder     = NewDomainError(ErrCodeNotFound, "No order items found for this order")
	ErrWrongPassword       = NewDomainError(ErrCodeUnauthorised, "Incorrect password")
)

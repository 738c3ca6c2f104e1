package model

// Standard error codes surfaced to callers.
const (
	ErrCodeDuplicateProduct   = "DUPLICATE_PRODUCT"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeInsufficientStock  = "INSUFFICIENT_STOCK"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeInvalidDiscount    = "INVALID_DISCOUNT"
	ErrCodeSaleNotOpen        = "SALE_NOT_OPEN"
	ErrCodeInvalidPromoCode   = "INVALID_PROMO_CODE"
	ErrCodeInvalidPromoLength = "INVALID_PROMO_LENGTH"
)

// DomainError carries a stable code alongside a human-readable message.
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
	ErrDuplicateProduct   = NewDomainError(ErrCodeDuplicateProduct, "Product ID already exists in the catalog")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found in the catalog")
	ErrInsufficientStock  = NewDomainError(ErrCodeInsufficientStock, "Requested quantity exceeds available stock")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidDiscount    = NewDomainError(ErrCodeInvalidDiscount, "Discount must be between 0 and 100")
	ErrSaleNotOpen        = NewDomainError(ErrCodeSaleNotOpen, "Sale is no longer open")
	ErrInvalidPromoCode   = NewDomainError(ErrCodeInvalidPromoCode, "Promo code not recognised")
	ErrInvalidPromoLength = NewDomainError(ErrCodeInvalidPromoLength, "Promo code must be between 4 and 12 characters")
)

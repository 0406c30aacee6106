package errors

// Error code constants, format: CATEGORY_SPECIFIC_DETAIL. The frontend maps
// these codes to display copy.

const (
	// Auth
	AuthUnauthorized   = "AUTH_UNAUTHORIZED"
	AuthTokenInvalid   = "AUTH_TOKEN_INVALID"
	AuthTokenExpired   = "AUTH_TOKEN_EXPIRED"
	AuthEmailTaken     = "AUTH_EMAIL_TAKEN"
	AuthBadCredentials = "AUTH_BAD_CREDENTIALS"

	// Validation
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"

	// Catalog
	ProductNotFound    = "PRODUCT_NOT_FOUND"
	CollectionNotFound = "COLLECTION_NOT_FOUND"

	// Cart
	CartItemNotFound = "CART_ITEM_NOT_FOUND"

	// Generic
	InternalServerError = "INTERNAL_SERVER_ERROR"
)

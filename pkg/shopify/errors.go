package shopify

import "errors"

var (
	// ErrNotConfigured is returned when the store domain or access token is
	// missing. No network call is attempted in that case.
	ErrNotConfigured = errors.New("shopify client not configured")

	// ErrNetworkError is returned when the request could not reach the API
	ErrNetworkError = errors.New("network error")

	// ErrUnauthorized is returned when the access token is rejected
	ErrUnauthorized = errors.New("unauthorized: invalid storefront access token")

	// ErrRequestFailed is returned for unexpected HTTP status codes
	ErrRequestFailed = errors.New("storefront request failed")

	// ErrGraphQL is returned when the API responds with GraphQL-level errors
	ErrGraphQL = errors.New("graphql error")

	// ErrNotFound is returned when a product or collection does not exist
	ErrNotFound = errors.New("not found")
)

package shopify

import "fmt"

const defaultAPIVersion = "2023-10"

// Config represents the configuration for the Shopify Storefront API client
type Config struct {
	// Domain is the myshopify store domain, e.g. "lumiskin.myshopify.com"
	Domain string

	// AccessToken is the public Storefront API access token
	AccessToken string

	// APIVersion is the Storefront API version, e.g. "2023-10"
	APIVersion string
}

// Configured reports whether the client has enough configuration to reach the
// Storefront API. When false, every API method fails fast without network I/O.
func (c *Config) Configured() bool {
	return c.Domain != "" && c.AccessToken != ""
}

// Endpoint returns the GraphQL endpoint URL for the configured store.
func (c *Config) Endpoint() string {
	version := c.APIVersion
	if version == "" {
		version = defaultAPIVersion
	}
	return fmt.Sprintf("https://%s/api/%s/graphql.json", c.Domain, version)
}

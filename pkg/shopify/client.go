package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
	"github.com/elinacho/lumiskin-backend/pkg/logger"
)

const defaultPageSize = 20

// Client is a Shopify Storefront API client. All methods fail fast with
// ErrNotConfigured when the store domain or access token is missing, so a
// misconfigured deployment never attempts network calls.
type Client struct {
	config     Config
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a new Storefront client. An incomplete config is allowed;
// the client simply reports itself unconfigured.
func NewClient(config Config) *Client {
	return &Client{
		config:   config,
		endpoint: config.Endpoint(),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Configured reports whether remote calls are enabled.
func (c *Client) Configured() bool {
	return c.config.Configured()
}

// GetProducts returns one page of products. Callers page forward with
// opts.After = previous page's EndCursor.
func (c *Client) GetProducts(ctx context.Context, opts ListOptions) (*ProductPage, error) {
	if !c.config.Configured() {
		return nil, ErrNotConfigured
	}

	variables := map[string]interface{}{
		"first": pageSize(opts.First),
	}
	if opts.After != "" {
		variables["after"] = opts.After
	}
	if opts.Query != "" {
		variables["query"] = opts.Query
	}
	if opts.SortKey != "" {
		variables["sortKey"] = string(opts.SortKey)
		variables["reverse"] = opts.Reverse
	}

	data, err := c.doRequest(ctx, productsQuery, variables)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Products ProductConnection `json:"products"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal products response: %w", err)
	}

	return &ProductPage{
		Products:    normalizeProducts(resp.Products.Edges),
		HasNextPage: resp.Products.PageInfo.HasNextPage,
		EndCursor:   resp.Products.PageInfo.EndCursor,
	}, nil
}

// GetFeaturedProducts returns the first n products of the catalog.
func (c *Client) GetFeaturedProducts(ctx context.Context, n int) ([]model.Product, error) {
	page, err := c.GetProducts(ctx, ListOptions{First: n})
	if err != nil {
		return nil, err
	}
	return page.Products, nil
}

// GetRecentProducts returns the n most recently created products.
func (c *Client) GetRecentProducts(ctx context.Context, n int) ([]model.Product, error) {
	page, err := c.GetProducts(ctx, ListOptions{
		First:   n,
		SortKey: SortKeyCreatedAt,
		Reverse: true,
	})
	if err != nil {
		return nil, err
	}
	return page.Products, nil
}

// GetBestSellingProducts returns the top n products by sales.
func (c *Client) GetBestSellingProducts(ctx context.Context, n int) ([]model.Product, error) {
	page, err := c.GetProducts(ctx, ListOptions{
		First:   n,
		SortKey: SortKeyBestSelling,
	})
	if err != nil {
		return nil, err
	}
	return page.Products, nil
}

// SearchProducts runs a free-text search ranked by relevance.
func (c *Client) SearchProducts(ctx context.Context, query string, opts ListOptions) (*ProductPage, error) {
	opts.Query = query
	if opts.SortKey == "" {
		opts.SortKey = SortKeyRelevance
	}
	return c.GetProducts(ctx, opts)
}

// GetProductsByCollection returns one page of products in a collection.
func (c *Client) GetProductsByCollection(ctx context.Context, handle string, opts ListOptions) (*ProductPage, error) {
	if !c.config.Configured() {
		return nil, ErrNotConfigured
	}

	variables := map[string]interface{}{
		"handle": handle,
		"first":  pageSize(opts.First),
	}
	if opts.After != "" {
		variables["after"] = opts.After
	}

	data, err := c.doRequest(ctx, collectionProductsQuery, variables)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Collection *struct {
			Products ProductConnection `json:"products"`
		} `json:"collection"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal collection response: %w", err)
	}
	if resp.Collection == nil {
		return nil, fmt.Errorf("%w: collection %q", ErrNotFound, handle)
	}

	return &ProductPage{
		Products:    normalizeProducts(resp.Collection.Products.Edges),
		HasNextPage: resp.Collection.Products.PageInfo.HasNextPage,
		EndCursor:   resp.Collection.Products.PageInfo.EndCursor,
	}, nil
}

// GetProductByHandle fetches a single product by its URL handle.
func (c *Client) GetProductByHandle(ctx context.Context, handle string) (*model.Product, error) {
	if !c.config.Configured() {
		return nil, ErrNotConfigured
	}

	data, err := c.doRequest(ctx, productByHandleQuery, map[string]interface{}{
		"handle": handle,
	})
	if err != nil {
		return nil, err
	}

	var resp struct {
		Product *ProductNode `json:"product"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product response: %w", err)
	}
	if resp.Product == nil {
		return nil, fmt.Errorf("%w: product %q", ErrNotFound, handle)
	}

	product := NormalizeProduct(*resp.Product)
	return &product, nil
}

// GetProductByID fetches a single product by its global ID.
func (c *Client) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	if !c.config.Configured() {
		return nil, ErrNotConfigured
	}

	data, err := c.doRequest(ctx, productByIDQuery, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		return nil, err
	}

	var resp struct {
		Node *ProductNode `json:"node"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal product response: %w", err)
	}
	if resp.Node == nil || resp.Node.ID == "" {
		return nil, fmt.Errorf("%w: product %q", ErrNotFound, id)
	}

	product := NormalizeProduct(*resp.Node)
	return &product, nil
}

// GetCollections returns one page of collections.
func (c *Client) GetCollections(ctx context.Context, opts ListOptions) (*CollectionPage, error) {
	if !c.config.Configured() {
		return nil, ErrNotConfigured
	}

	variables := map[string]interface{}{
		"first": pageSize(opts.First),
	}
	if opts.After != "" {
		variables["after"] = opts.After
	}

	data, err := c.doRequest(ctx, collectionsQuery, variables)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Collections CollectionConnection `json:"collections"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal collections response: %w", err)
	}

	collections := make([]Collection, 0, len(resp.Collections.Edges))
	for _, edge := range resp.Collections.Edges {
		collections = append(collections, NormalizeCollection(edge.Node))
	}

	return &CollectionPage{
		Collections: collections,
		HasNextPage: resp.Collections.PageInfo.HasNextPage,
		EndCursor:   resp.Collections.PageInfo.EndCursor,
	}, nil
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// doRequest performs a GraphQL request against the Storefront endpoint and
// returns the raw data payload.
func (c *Client) doRequest(ctx context.Context, query string, variables map[string]interface{}) (json.RawMessage, error) {
	reqBody, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.config.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrRequestFailed, resp.StatusCode, string(body))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response envelope: %w", err)
	}
	if len(envelope.Errors) > 0 {
		logger.Warn("Storefront API returned GraphQL errors", map[string]interface{}{
			"count":   len(envelope.Errors),
			"message": envelope.Errors[0].Message,
		})
		return nil, fmt.Errorf("%w: %s", ErrGraphQL, envelope.Errors[0].Message)
	}

	return envelope.Data, nil
}

func pageSize(first int) int {
	if first <= 0 {
		return defaultPageSize
	}
	return first
}

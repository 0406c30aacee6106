package service

import (
	"context"
	"errors"
	"strings"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
	"github.com/elinacho/lumiskin-backend/internal/app/repository"
	"github.com/elinacho/lumiskin-backend/pkg/logger"
	"github.com/elinacho/lumiskin-backend/pkg/shopify"
)

var ErrProductNotFound = errors.New("product not found")

type ProductListOptions struct {
	Category    string
	Search      string
	First       int
	After       string
	SortKey     shopify.SortKey
	Reverse     bool
	InStockOnly bool
}

// ProductListResult is one page of products with forward-only pagination
// state. Static catalog results never paginate.
type ProductListResult struct {
	Products    []model.Product     `json:"products"`
	HasNextPage bool                `json:"has_next_page"`
	EndCursor   string              `json:"end_cursor"`
	Source      model.ProductSource `json:"source"`
}

type ProductService interface {
	ListProducts(ctx context.Context, opts ProductListOptions) *ProductListResult
	GetProductByID(ctx context.Context, id string) (*model.Product, error)
	GetProductByHandle(ctx context.Context, handle string) (*model.Product, error)
	SearchProducts(ctx context.Context, sessionID, query string, opts ProductListOptions) *ProductListResult
	GetProductsByCollection(ctx context.Context, handle string, opts ProductListOptions) (*ProductListResult, error)
	GetFeaturedProducts(ctx context.Context, n int) []model.Product
	GetBestSellingProducts(ctx context.Context, n int) []model.Product
	GetNewArrivals(ctx context.Context, n int) []model.Product
	GetCollections(ctx context.Context) []shopify.Collection
	GetCategories() []string
	GetRecentSearches(ctx context.Context, sessionID string) []string
}

type productService struct {
	catalogRepo repository.CatalogRepository
	searchRepo  repository.RecentSearchRepository
	shopify     *shopify.Client
}

func NewProductService(
	catalogRepo repository.CatalogRepository,
	searchRepo repository.RecentSearchRepository,
	shopifyClient *shopify.Client,
) ProductService {
	return &productService{
		catalogRepo: catalogRepo,
		searchRepo:  searchRepo,
		shopify:     shopifyClient,
	}
}

// ListProducts prefers the Storefront API and falls back to the static
// catalog when the client is unconfigured or the request fails. Remote
// misconfiguration and remote failure look identical to callers: local data.
func (s *productService) ListProducts(ctx context.Context, opts ProductListOptions) *ProductListResult {
	if s.shopify.Configured() {
		page, err := s.shopify.GetProducts(ctx, shopify.ListOptions{
			First:   opts.First,
			After:   opts.After,
			Query:   remoteQuery(opts),
			SortKey: opts.SortKey,
			Reverse: opts.Reverse,
		})
		if err == nil {
			return &ProductListResult{
				Products:    page.Products,
				HasNextPage: page.HasNextPage,
				EndCursor:   page.EndCursor,
				Source:      model.SourceShopify,
			}
		}
		logger.Error("Storefront product list failed, falling back to static catalog", err, map[string]interface{}{
			"category": opts.Category,
		})
	}

	return s.localList(opts)
}

func remoteQuery(opts ProductListOptions) string {
	var parts []string
	if opts.Search != "" {
		parts = append(parts, opts.Search)
	}
	if opts.Category != "" {
		parts = append(parts, "product_type:"+opts.Category)
	}
	if opts.InStockOnly {
		parts = append(parts, "available_for_sale:true")
	}
	return strings.Join(parts, " ")
}

func (s *productService) localList(opts ProductListOptions) *ProductListResult {
	products := s.catalogRepo.FindAll(repository.CatalogFilter{
		Category:    opts.Category,
		Search:      opts.Search,
		InStockOnly: opts.InStockOnly,
	})
	return &ProductListResult{
		Products: products,
		Source:   model.SourceLocal,
	}
}

// GetProductByID resolves static slugs first, then Shopify global IDs.
func (s *productService) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.catalogRepo.FindByID(id)
	if err == nil {
		return product, nil
	}

	if s.shopify.Configured() {
		remote, err := s.shopify.GetProductByID(ctx, id)
		if err == nil {
			return remote, nil
		}
		if !errors.Is(err, shopify.ErrNotFound) {
			logger.Error("Storefront product lookup failed", err, map[string]interface{}{
				"product_id": id,
			})
		}
	}

	return nil, ErrProductNotFound
}

// GetProductByHandle is remote-only: the static catalog has no handles.
func (s *productService) GetProductByHandle(ctx context.Context, handle string) (*model.Product, error) {
	if !s.shopify.Configured() {
		return nil, ErrProductNotFound
	}

	product, err := s.shopify.GetProductByHandle(ctx, handle)
	if err != nil {
		if !errors.Is(err, shopify.ErrNotFound) {
			logger.Error("Storefront product-by-handle failed", err, map[string]interface{}{
				"handle": handle,
			})
		}
		return nil, ErrProductNotFound
	}
	return product, nil
}

// SearchProducts records the term in the session's recent-search history
// (best-effort) and then behaves like ListProducts with a query filter.
func (s *productService) SearchProducts(ctx context.Context, sessionID, query string, opts ProductListOptions) *ProductListResult {
	query = strings.TrimSpace(query)
	if query != "" && sessionID != "" {
		if err := s.searchRepo.Add(ctx, sessionID, query); err != nil {
			logger.Warn("Failed to record recent search", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
	}

	opts.Search = query
	if opts.SortKey == "" {
		opts.SortKey = shopify.SortKeyRelevance
	}
	return s.ListProducts(ctx, opts)
}

func (s *productService) GetProductsByCollection(ctx context.Context, handle string, opts ProductListOptions) (*ProductListResult, error) {
	if s.shopify.Configured() {
		page, err := s.shopify.GetProductsByCollection(ctx, handle, shopify.ListOptions{
			First: opts.First,
			After: opts.After,
		})
		if err == nil {
			return &ProductListResult{
				Products:    page.Products,
				HasNextPage: page.HasNextPage,
				EndCursor:   page.EndCursor,
				Source:      model.SourceShopify,
			}, nil
		}
		if errors.Is(err, shopify.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		logger.Error("Storefront collection fetch failed, falling back to category", err, map[string]interface{}{
			"handle": handle,
		})
	}

	// Collection handles double as category names for the static catalog.
	result := s.localList(ProductListOptions{Category: handle})
	if len(result.Products) == 0 {
		return nil, ErrProductNotFound
	}
	return result, nil
}

// GetFeaturedProducts serves the scheduler-refreshed cache when present,
// otherwise falls through to remote then static data.
func (s *productService) GetFeaturedProducts(ctx context.Context, n int) []model.Product {
	if cached := s.catalogRepo.Featured(n); cached != nil {
		return cached
	}

	if s.shopify.Configured() {
		products, err := s.shopify.GetFeaturedProducts(ctx, n)
		if err == nil {
			return products
		}
		logger.Error("Storefront featured fetch failed, falling back to static catalog", err)
	}

	return s.localFirstN(n)
}

func (s *productService) GetBestSellingProducts(ctx context.Context, n int) []model.Product {
	if cached := s.catalogRepo.BestSelling(n); cached != nil {
		return cached
	}

	if s.shopify.Configured() {
		products, err := s.shopify.GetBestSellingProducts(ctx, n)
		if err == nil {
			return products
		}
		logger.Error("Storefront best-seller fetch failed, falling back to static catalog", err)
	}

	return s.localFirstN(n)
}

// GetNewArrivals returns the most recently created remote products. The
// static catalog has no creation dates, so the fallback is its tail: the seed
// data is ordered oldest-first.
func (s *productService) GetNewArrivals(ctx context.Context, n int) []model.Product {
	if s.shopify.Configured() {
		products, err := s.shopify.GetRecentProducts(ctx, n)
		if err == nil {
			return products
		}
		logger.Error("Storefront new-arrivals fetch failed, falling back to static catalog", err)
	}

	products := s.catalogRepo.FindAll(repository.CatalogFilter{InStockOnly: true})
	if n > 0 && n < len(products) {
		products = products[len(products)-n:]
	}
	return products
}

func (s *productService) localFirstN(n int) []model.Product {
	products := s.catalogRepo.FindAll(repository.CatalogFilter{InStockOnly: true})
	if n > 0 && n < len(products) {
		products = products[:n]
	}
	return products
}

// GetCollections returns remote collections when available; otherwise static
// categories are presented as pseudo-collections so the navigation never
// comes up empty.
func (s *productService) GetCollections(ctx context.Context) []shopify.Collection {
	if s.shopify.Configured() {
		page, err := s.shopify.GetCollections(ctx, shopify.ListOptions{})
		if err == nil {
			return page.Collections
		}
		logger.Error("Storefront collections fetch failed, falling back to categories", err)
	}

	categories := s.catalogRepo.Categories()
	collections := make([]shopify.Collection, 0, len(categories))
	for _, category := range categories {
		collections = append(collections, shopify.Collection{
			ID:     "local:" + category,
			Title:  strings.ToUpper(category[:1]) + category[1:],
			Handle: category,
		})
	}
	return collections
}

func (s *productService) GetCategories() []string {
	return s.catalogRepo.Categories()
}

// GetRecentSearches is best-effort: a Redis failure yields an empty history.
func (s *productService) GetRecentSearches(ctx context.Context, sessionID string) []string {
	terms, err := s.searchRepo.List(ctx, sessionID)
	if err != nil {
		logger.Warn("Failed to load recent searches", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
		return []string{}
	}
	return terms
}

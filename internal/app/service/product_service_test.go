package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
	"github.com/elinacho/lumiskin-backend/internal/app/repository"
	"github.com/elinacho/lumiskin-backend/pkg/shopify"
)

// setupProductServiceTest wires the service against the static catalog with an
// unconfigured Storefront client, the default deployment shape.
func setupProductServiceTest(t *testing.T) (ProductService, repository.CatalogRepository) {
	catalogRepo := repository.NewCatalogRepository(repository.SeedCatalog())
	searchRepo := repository.NewRecentSearchRepository(nil)
	svc := NewProductService(catalogRepo, searchRepo, shopify.NewClient(shopify.Config{}))
	return svc, catalogRepo
}

func TestProductService_ListProducts_FallsBackToStaticCatalog(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	result := svc.ListProducts(context.Background(), ProductListOptions{})
	require.NotNil(t, result)
	assert.Equal(t, model.SourceLocal, result.Source)
	assert.Len(t, result.Products, 8)
	assert.False(t, result.HasNextPage)
}

func TestProductService_ListProducts_CategoryFilter(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	result := svc.ListProducts(context.Background(), ProductListOptions{Category: "serum"})
	require.Len(t, result.Products, 2)
	for _, p := range result.Products {
		assert.Equal(t, "serum", p.Category)
	}
}

func TestProductService_GetProductByID_Local(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	product, err := svc.GetProductByID(context.Background(), "gentle-foaming-cleanser")
	require.NoError(t, err)
	assert.Equal(t, model.SourceLocal, product.Source)
	assert.Equal(t, "Gentle Foaming Cleanser", product.Name)
}

func TestProductService_GetProductByID_NotFound(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	product, err := svc.GetProductByID(context.Background(), "gid://shopify/Product/999")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, product)
}

func TestProductService_GetProductByHandle_UnconfiguredIsNotFound(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	// Handles only exist remotely; without a Storefront client there is
	// nothing to resolve against.
	product, err := svc.GetProductByHandle(context.Background(), "hydra-glow-serum")
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, product)
}

func TestProductService_SearchProducts(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	result := svc.SearchProducts(context.Background(), "session-1", "vitamin c", ProductListOptions{})
	require.NotEmpty(t, result.Products)
	assert.Equal(t, "vitamin-c-brightening-serum", result.Products[0].ID)
	assert.Equal(t, model.SourceLocal, result.Source)
}

func TestProductService_SearchProducts_TrimsWhitespace(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	result := svc.SearchProducts(context.Background(), "session-1", "  vitamin c  ", ProductListOptions{})
	require.NotEmpty(t, result.Products)
	assert.Equal(t, "vitamin-c-brightening-serum", result.Products[0].ID)
}

func TestProductService_GetProductsByCollection_FallsBackToCategory(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	result, err := svc.GetProductsByCollection(context.Background(), "serum", ProductListOptions{})
	require.NoError(t, err)
	assert.Len(t, result.Products, 2)
	assert.Equal(t, model.SourceLocal, result.Source)
}

func TestProductService_GetProductsByCollection_NotFound(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	result, err := svc.GetProductsByCollection(context.Background(), "no-such-collection", ProductListOptions{})
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Nil(t, result)
}

func TestProductService_GetFeaturedProducts_PrefersCache(t *testing.T) {
	svc, catalogRepo := setupProductServiceTest(t)

	catalogRepo.SetFeatured([]model.Product{
		{ID: "remote-1", Source: model.SourceShopify},
		{ID: "remote-2", Source: model.SourceShopify},
	})

	featured := svc.GetFeaturedProducts(context.Background(), 4)
	require.Len(t, featured, 2)
	assert.Equal(t, "remote-1", featured[0].ID)
}

func TestProductService_GetFeaturedProducts_FallsBackToStaticCatalog(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	featured := svc.GetFeaturedProducts(context.Background(), 4)
	assert.Len(t, featured, 4)
	for _, p := range featured {
		assert.True(t, p.InStock)
	}
}

func TestProductService_GetNewArrivals_FallsBackToCatalogTail(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	arrivals := svc.GetNewArrivals(context.Background(), 2)
	require.Len(t, arrivals, 2)
	// Seed data is ordered oldest-first, so the tail is the newest
	assert.Equal(t, "ceramide-barrier-balm", arrivals[1].ID)
}

func TestProductService_GetBestSellingProducts_FallsBackToStaticCatalog(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	best := svc.GetBestSellingProducts(context.Background(), 3)
	assert.Len(t, best, 3)
}

func TestProductService_GetCollections_FallsBackToCategories(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	collections := svc.GetCollections(context.Background())
	require.Len(t, collections, 6)
	assert.Equal(t, "cleanser", collections[0].Handle)
	assert.Equal(t, "Cleanser", collections[0].Title)
	assert.Equal(t, "local:cleanser", collections[0].ID)
}

func TestProductService_GetCategories(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	categories := svc.GetCategories()
	assert.Equal(t, []string{"cleanser", "moisturizer", "serum", "sunscreen", "toner", "treatment"}, categories)
}

func TestProductService_GetRecentSearches_NoRedisIsEmpty(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	terms := svc.GetRecentSearches(context.Background(), "session-1")
	assert.NotNil(t, terms)
	assert.Empty(t, terms)
}

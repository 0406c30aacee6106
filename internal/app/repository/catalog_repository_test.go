package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
)

func seededCatalog() CatalogRepository {
	return NewCatalogRepository(SeedCatalog())
}

func TestCatalogRepository_FindAll(t *testing.T) {
	repo := seededCatalog()

	all := repo.FindAll(CatalogFilter{})
	assert.Len(t, all, 8)
}

func TestCatalogRepository_FindAll_FilterByCategory(t *testing.T) {
	repo := seededCatalog()

	serums := repo.FindAll(CatalogFilter{Category: "serum"})
	require.Len(t, serums, 2)
	for _, p := range serums {
		assert.Equal(t, "serum", p.Category)
	}

	// Category match is case-insensitive
	assert.Len(t, repo.FindAll(CatalogFilter{Category: "Serum"}), 2)

	assert.Empty(t, repo.FindAll(CatalogFilter{Category: "perfume"}))
}

func TestCatalogRepository_FindAll_InStockOnly(t *testing.T) {
	repo := seededCatalog()

	inStock := repo.FindAll(CatalogFilter{InStockOnly: true})
	assert.Len(t, inStock, 7)
	for _, p := range inStock {
		assert.True(t, p.InStock)
	}
}

func TestCatalogRepository_FindAll_Search(t *testing.T) {
	repo := seededCatalog()

	// Name match
	byName := repo.FindAll(CatalogFilter{Search: "vitamin c"})
	require.NotEmpty(t, byName)
	assert.Equal(t, "vitamin-c-brightening-serum", byName[0].ID)

	// Key ingredient match
	byIngredient := repo.FindAll(CatalogFilter{Search: "niacinamide"})
	assert.NotEmpty(t, byIngredient)

	assert.Empty(t, repo.FindAll(CatalogFilter{Search: "no such thing"}))
}

func TestCatalogRepository_FindByID(t *testing.T) {
	repo := seededCatalog()

	product, err := repo.FindByID("gentle-foaming-cleanser")
	require.NoError(t, err)
	assert.Equal(t, "Gentle Foaming Cleanser", product.Name)

	_, err = repo.FindByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogRepository_FindByID_ReturnsCopy(t *testing.T) {
	repo := seededCatalog()

	product, err := repo.FindByID("gentle-foaming-cleanser")
	require.NoError(t, err)
	product.Name = "Mutated"

	fresh, err := repo.FindByID("gentle-foaming-cleanser")
	require.NoError(t, err)
	assert.Equal(t, "Gentle Foaming Cleanser", fresh.Name)
}

func TestCatalogRepository_Categories(t *testing.T) {
	repo := seededCatalog()

	categories := repo.Categories()
	assert.Equal(t, []string{"cleanser", "moisturizer", "serum", "sunscreen", "toner", "treatment"}, categories)
}

func TestCatalogRepository_FeaturedCache(t *testing.T) {
	repo := seededCatalog()

	// Empty until the scheduler fills it; nil signals "fall back"
	assert.Nil(t, repo.Featured(4))

	products := []model.Product{
		{ID: "r1", Source: model.SourceShopify},
		{ID: "r2", Source: model.SourceShopify},
		{ID: "r3", Source: model.SourceShopify},
	}
	repo.SetFeatured(products)

	featured := repo.Featured(2)
	require.Len(t, featured, 2)
	assert.Equal(t, "r1", featured[0].ID)

	// n beyond the cache size returns everything
	assert.Len(t, repo.Featured(10), 3)
	assert.Len(t, repo.Featured(0), 3)
}

func TestCatalogRepository_BestSellingCache(t *testing.T) {
	repo := seededCatalog()

	assert.Nil(t, repo.BestSelling(4))

	repo.SetBestSelling([]model.Product{{ID: "b1"}})
	best := repo.BestSelling(4)
	require.Len(t, best, 1)
	assert.Equal(t, "b1", best[0].ID)
}

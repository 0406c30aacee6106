package repository

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
)

var (
	// ErrNotFound is returned by in-memory repositories when no record matches.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when creating a user whose email is taken.
	ErrDuplicateEmail = errors.New("email already registered")
)

type CatalogFilter struct {
	Category    string
	Search      string
	InStockOnly bool
}

// CatalogRepository holds the static demo catalog plus the cached remote
// featured/best-seller lists refreshed by the scheduler.
type CatalogRepository interface {
	FindAll(filter CatalogFilter) []model.Product
	FindByID(id string) (*model.Product, error)
	Categories() []string
	Featured(n int) []model.Product
	SetFeatured(products []model.Product)
	BestSelling(n int) []model.Product
	SetBestSelling(products []model.Product)
}

type catalogRepository struct {
	mu          sync.RWMutex
	products    []model.Product
	featured    []model.Product
	bestSelling []model.Product
}

func NewCatalogRepository(products []model.Product) CatalogRepository {
	seeded := make([]model.Product, len(products))
	copy(seeded, products)
	for i := range seeded {
		seeded[i].EnsureDefaults()
	}
	return &catalogRepository{products: seeded}
}

func (r *catalogRepository) FindAll(filter CatalogFilter) []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]model.Product, 0, len(r.products))
	search := strings.ToLower(filter.Search)
	for _, p := range r.products {
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			continue
		}
		if filter.InStockOnly && !p.InStock {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		results = append(results, p)
	}
	return results
}

func matchesSearch(p model.Product, search string) bool {
	if strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Description), search) ||
		strings.Contains(strings.ToLower(p.AllIngredients), search) {
		return true
	}
	for _, ingredient := range p.KeyIngredients {
		if strings.Contains(strings.ToLower(ingredient.Name), search) {
			return true
		}
	}
	return false
}

func (r *catalogRepository) FindByID(id string) (*model.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			product := r.products[i]
			return &product, nil
		}
	}
	return nil, ErrNotFound
}

func (r *catalogRepository) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var categories []string
	for _, p := range r.products {
		if p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// Featured returns up to n cached remote featured products, or nil when the
// cache has never been filled. Callers fall back to the static catalog.
func (r *catalogRepository) Featured(n int) []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return firstN(r.featured, n)
}

func (r *catalogRepository) SetFeatured(products []model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.featured = products
}

func (r *catalogRepository) BestSelling(n int) []model.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return firstN(r.bestSelling, n)
}

func (r *catalogRepository) SetBestSelling(products []model.Product) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bestSelling = products
}

func firstN(products []model.Product, n int) []model.Product {
	if products == nil {
		return nil
	}
	if n <= 0 || n > len(products) {
		n = len(products)
	}
	result := make([]model.Product, n)
	copy(result, products[:n])
	return result
}

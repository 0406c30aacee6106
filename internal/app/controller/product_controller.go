package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elinacho/lumiskin-backend/internal/app/service"
	apperrors "github.com/elinacho/lumiskin-backend/internal/errors"
	"github.com/elinacho/lumiskin-backend/internal/middleware"
	"github.com/elinacho/lumiskin-backend/pkg/shopify"
)

type ProductController struct {
	productService service.ProductService
}

func NewProductController(productService service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

func listOptionsFromQuery(c *gin.Context) service.ProductListOptions {
	first, _ := strconv.Atoi(c.Query("first"))
	reverse, _ := strconv.ParseBool(c.Query("reverse"))
	inStock, _ := strconv.ParseBool(c.Query("in_stock"))

	var sortKey shopify.SortKey
	switch c.Query("sort") {
	case "title":
		sortKey = shopify.SortKeyTitle
	case "price":
		sortKey = shopify.SortKeyPrice
	case "best_selling":
		sortKey = shopify.SortKeyBestSelling
	case "created_at":
		sortKey = shopify.SortKeyCreatedAt
	}

	return service.ProductListOptions{
		Category:    c.Query("category"),
		First:       first,
		After:       c.Query("after"),
		SortKey:     sortKey,
		Reverse:     reverse,
		InStockOnly: inStock,
	}
}

func limitParam(c *gin.Context, fallback int) int {
	n, err := strconv.Atoi(c.Query("limit"))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// GetProducts lists products with optional category/search filters
// GET /api/v1/products
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	opts := listOptionsFromQuery(c)
	opts.Search = c.Query("search")

	result := ctrl.productService.ListProducts(c.Request.Context(), opts)
	c.JSON(http.StatusOK, result)
}

// GetProductByID returns a single product by slug or global ID
// GET /api/v1/products/:id
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, err := ctrl.productService.GetProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
			return
		}
		middleware.GetLoggerFromContext(c).Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "Failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// GetProductByHandle returns a Shopify product by its URL handle
// GET /api/v1/products/handle/:handle
func (ctrl *ProductController) GetProductByHandle(c *gin.Context) {
	handle := c.Param("handle")

	product, err := ctrl.productService.GetProductByHandle(c.Request.Context(), handle)
	if err != nil {
		apperrors.NotFound(c, apperrors.ProductNotFound, "Product not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// GetFeaturedProducts returns the home-page featured set
// GET /api/v1/products/featured
func (ctrl *ProductController) GetFeaturedProducts(c *gin.Context) {
	products := ctrl.productService.GetFeaturedProducts(c.Request.Context(), limitParam(c, 4))
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetBestSellingProducts returns the best-seller set
// GET /api/v1/products/best-selling
func (ctrl *ProductController) GetBestSellingProducts(c *gin.Context) {
	products := ctrl.productService.GetBestSellingProducts(c.Request.Context(), limitParam(c, 4))
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetNewArrivals returns the most recently added products
// GET /api/v1/products/new-arrivals
func (ctrl *ProductController) GetNewArrivals(c *gin.Context) {
	products := ctrl.productService.GetNewArrivals(c.Request.Context(), limitParam(c, 4))
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetCategories lists distinct static catalog categories
// GET /api/v1/products/categories
func (ctrl *ProductController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": ctrl.productService.GetCategories()})
}

// SearchProducts runs a free-text search and records it in the session's
// recent-search history
// GET /api/v1/search?q=...
func (ctrl *ProductController) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Missing search query")
		return
	}

	sessionID, _ := middleware.GetSessionID(c)
	result := ctrl.productService.SearchProducts(c.Request.Context(), sessionID, query, listOptionsFromQuery(c))
	c.JSON(http.StatusOK, result)
}

// GetRecentSearches returns the session's recent search terms
// GET /api/v1/search/recent
func (ctrl *ProductController) GetRecentSearches(c *gin.Context) {
	sessionID, _ := middleware.GetSessionID(c)
	terms := ctrl.productService.GetRecentSearches(c.Request.Context(), sessionID)
	c.JSON(http.StatusOK, gin.H{"searches": terms})
}

// GetCollections lists collections (remote or category-derived)
// GET /api/v1/collections
func (ctrl *ProductController) GetCollections(c *gin.Context) {
	collections := ctrl.productService.GetCollections(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

// GetCollectionProducts lists one collection's products
// GET /api/v1/collections/:handle/products
func (ctrl *ProductController) GetCollectionProducts(c *gin.Context) {
	handle := c.Param("handle")

	result, err := ctrl.productService.GetProductsByCollection(c.Request.Context(), handle, listOptionsFromQuery(c))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.CollectionNotFound, "Collection not found")
			return
		}
		middleware.GetLoggerFromContext(c).Error("Failed to fetch collection products", err, map[string]interface{}{
			"handle": handle,
		})
		apperrors.InternalError(c, "Failed to fetch collection")
		return
	}

	c.JSON(http.StatusOK, result)
}

package router

import (
	"github.com/gin-gonic/gin"

	"github.com/elinacho/lumiskin-backend/config"
	"github.com/elinacho/lumiskin-backend/internal/app/controller"
	"github.com/elinacho/lumiskin-backend/internal/middleware"
)

type Router struct {
	authController    *controller.AuthController
	productController *controller.ProductController
	cartController    *controller.CartController
	reviewController  *controller.ReviewController
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	productController *controller.ProductController,
	cartController *controller.CartController,
	reviewController *controller.ReviewController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:    authController,
		productController: productController,
		cartController:    cartController,
		reviewController:  reviewController,
		authMiddleware:    authMiddleware,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))
	router.Use(middleware.SessionMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Lumiskin API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", r.authController.Signup)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
			auth.GET("/me/orders", r.authMiddleware.Authenticate(), r.authController.GetOrders)
			auth.GET("/me/orders/export", r.authMiddleware.Authenticate(), r.authController.ExportOrders)
		}

		products := v1.Group("/products")
		{
			products.GET("", r.productController.GetProducts)
			products.GET("/featured", r.productController.GetFeaturedProducts)
			products.GET("/best-selling", r.productController.GetBestSellingProducts)
			products.GET("/new-arrivals", r.productController.GetNewArrivals)
			products.GET("/categories", r.productController.GetCategories)
			products.GET("/handle/:handle", r.productController.GetProductByHandle)
			products.GET("/:id", r.productController.GetProductByID)
			products.GET("/:id/reviews", r.reviewController.GetProductReviews)
			products.GET("/:id/reviews/stats", r.reviewController.GetReviewStats)
		}

		collections := v1.Group("/collections")
		{
			collections.GET("", r.productController.GetCollections)
			collections.GET("/:handle/products", r.productController.GetCollectionProducts)
		}

		search := v1.Group("/search")
		{
			search.GET("", r.productController.SearchProducts)
			search.GET("/recent", r.productController.GetRecentSearches)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("", r.cartController.AddToCart)
			cart.POST("/toggle", r.cartController.ToggleCart)
			cart.GET("/feed", r.cartController.CartFeed)
			cart.PUT("/items/:product_id", r.cartController.UpdateCartItem)
			cart.DELETE("/items/:product_id", r.cartController.RemoveFromCart)
			cart.DELETE("", r.cartController.ClearCart)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Session-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Session-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elinacho/lumiskin-backend/internal/app/service"
)

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// GetProductReviews returns all reviews for a product in stored order
// GET /api/v1/products/:id/reviews
func (ctrl *ReviewController) GetProductReviews(c *gin.Context) {
	productID := c.Param("id")
	reviews := ctrl.reviewService.GetProductReviews(productID)

	c.JSON(http.StatusOK, gin.H{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// GetReviewStats returns the average rating and per-star breakdown
// GET /api/v1/products/:id/reviews/stats
func (ctrl *ReviewController) GetReviewStats(c *gin.Context) {
	productID := c.Param("id")
	c.JSON(http.StatusOK, ctrl.reviewService.GetReviewStats(productID))
}

package service

import (
	"math"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
	"github.com/elinacho/lumiskin-backend/internal/app/repository"
)

// ReviewService is pure read-side computation over the fixed review set.
type ReviewService interface {
	GetProductReviews(productID string) []model.Review
	GetReviewStats(productID string) model.ReviewStats
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) GetProductReviews(productID string) []model.Review {
	return s.reviewRepo.FindByProductID(productID)
}

// GetReviewStats computes the mean rating rounded to one decimal and the
// per-star counts. Zero reviews yields average 0 and an all-zero breakdown,
// never a division by zero.
func (s *reviewService) GetReviewStats(productID string) model.ReviewStats {
	reviews := s.reviewRepo.FindByProductID(productID)

	stats := model.ReviewStats{
		Total:     len(reviews),
		Breakdown: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(reviews) == 0 {
		return stats
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
		if review.Rating >= 1 && review.Rating <= 5 {
			stats.Breakdown[review.Rating]++
		}
	}
	stats.Average = math.Round(float64(sum)/float64(len(reviews))*10) / 10
	return stats
}

package repository

import (
	"sync"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
)

// ReviewRepository is a read-only in-memory review store. Order of reviews is
// preserved as stored; callers re-sort as needed.
type ReviewRepository interface {
	FindByProductID(productID string) []model.Review
}

type reviewRepository struct {
	mu      sync.RWMutex
	reviews []model.Review
}

func NewReviewRepository(seed []model.Review) ReviewRepository {
	reviews := make([]model.Review, len(seed))
	copy(reviews, seed)
	return &reviewRepository{reviews: reviews}
}

func (r *reviewRepository) FindByProductID(productID string) []model.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := []model.Review{}
	for _, review := range r.reviews {
		if review.ProductID == productID {
			results = append(results, review)
		}
	}
	return results
}

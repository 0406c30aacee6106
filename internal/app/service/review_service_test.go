package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
	"github.com/elinacho/lumiskin-backend/internal/app/repository"
)

func reviewServiceWith(reviews []model.Review) ReviewService {
	return NewReviewService(repository.NewReviewRepository(reviews))
}

func reviewsWithRatings(productID string, ratings ...int) []model.Review {
	reviews := make([]model.Review, 0, len(ratings))
	for i, rating := range ratings {
		reviews = append(reviews, model.Review{
			ID:        fmt.Sprintf("rev-%d", i+1),
			ProductID: productID,
			Rating:    rating,
		})
	}
	return reviews
}

func TestReviewService_GetProductReviews(t *testing.T) {
	svc := reviewServiceWith(repository.SeedReviews())

	reviews := svc.GetProductReviews("vitamin-c-brightening-serum")
	assert.Len(t, reviews, 3)
}

func TestReviewService_GetReviewStats(t *testing.T) {
	svc := reviewServiceWith(reviewsWithRatings("p1", 5, 4, 5))

	stats := svc.GetReviewStats("p1")
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 4.7, stats.Average)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 1, 5: 2}, stats.Breakdown)
}

func TestReviewService_GetReviewStats_NoReviews(t *testing.T) {
	svc := reviewServiceWith(nil)

	stats := svc.GetReviewStats("unknown")
	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0.0, stats.Average)
	require.NotNil(t, stats.Breakdown)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, stats.Breakdown)
}

func TestReviewService_GetReviewStats_RoundsToOneDecimal(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{name: "Exact mean", ratings: []int{4, 4, 4}, want: 4.0},
		{name: "Rounds up", ratings: []int{5, 4, 5}, want: 4.7},
		{name: "Rounds down", ratings: []int{4, 4, 5}, want: 4.3},
		{name: "Single review", ratings: []int{3}, want: 3.0},
		{name: "Half rounds up", ratings: []int{4, 5}, want: 4.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := reviewServiceWith(reviewsWithRatings("p1", tt.ratings...))
			assert.Equal(t, tt.want, svc.GetReviewStats("p1").Average)
		})
	}
}

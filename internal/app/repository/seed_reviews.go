package repository

import (
	"time"

	"github.com/elinacho/lumiskin-backend/internal/app/model"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// SeedReviews is the fixed demo review set, keyed by static catalog IDs.
func SeedReviews() []model.Review {
	return []model.Review{
		{
			ID:        "rev-001",
			ProductID: "vitamin-c-brightening-serum",
			Rating:    5,
			Title:     "Visible difference in three weeks",
			Content:   "My dark spots from last summer have faded noticeably. The texture is light and it layers well under sunscreen.",
			Date:      day(2026, time.March, 14),
			Verified:  true,
			Helpful:   42,
			Unhelpful: 2,
			SkinType:  "combination",
			AgeRange:  "25-34",
			Pros:      []string{"fast results", "non-sticky"},
			Cons:      []string{"slight citrus smell"},
		},
		{
			ID:        "rev-002",
			ProductID: "vitamin-c-brightening-serum",
			Rating:    4,
			Title:     "Good, but tingles",
			Content:   "Works as promised but the first week my cheeks tingled every morning. It passed, so four stars.",
			Date:      day(2026, time.April, 2),
			Verified:  true,
			Helpful:   18,
			Unhelpful: 1,
			SkinType:  "sensitive",
			AgeRange:  "35-44",
		},
		{
			ID:        "rev-003",
			ProductID: "vitamin-c-brightening-serum",
			Rating:    5,
			Title:     "Repurchased twice",
			Content:   "Third bottle. Nothing else has kept my skin this even through winter.",
			Date:      day(2026, time.May, 21),
			Verified:  false,
			Helpful:   9,
			Unhelpful: 0,
			SkinType:  "normal",
			AgeRange:  "45-54",
		},
		{
			ID:        "rev-004",
			ProductID: "niacinamide-pore-serum",
			Rating:    4,
			Title:     "Solid everyday serum",
			Content:   "Pores around my nose look smaller after a month. No pilling under makeup.",
			Date:      day(2026, time.February, 8),
			Verified:  true,
			Helpful:   27,
			Unhelpful: 3,
			SkinType:  "oily",
			AgeRange:  "18-24",
			Pros:      []string{"matte finish"},
		},
		{
			ID:        "rev-005",
			ProductID: "niacinamide-pore-serum",
			Rating:    2,
			Title:     "Broke me out",
			Content:   "Gave it six weeks but my forehead kept breaking out. Might just be my skin.",
			Date:      day(2026, time.March, 30),
			Verified:  true,
			Helpful:   11,
			Unhelpful: 6,
			SkinType:  "acne-prone",
			AgeRange:  "18-24",
			Cons:      []string{"caused breakouts"},
		},
		{
			ID:        "rev-006",
			ProductID: "hyaluronic-hydra-moisturizer",
			Rating:    5,
			Title:     "Hydration without the grease",
			Content:   "Sinks in within a minute. My flaky patches are gone and it plays well with retinol nights.",
			Date:      day(2026, time.January, 17),
			Verified:  true,
			Helpful:   35,
			Unhelpful: 0,
			SkinType:  "dehydrated",
			AgeRange:  "25-34",
			Pros:      []string{"fast-absorbing", "fragrance-free"},
		},
		{
			ID:        "rev-007",
			ProductID: "daily-defense-spf50",
			Rating:    5,
			Title:     "Finally no white cast",
			Content:   "I have deep skin and this disappears completely. Wearing sunscreen daily for the first time.",
			Date:      day(2026, time.June, 5),
			Verified:  true,
			Helpful:   58,
			Unhelpful: 1,
			SkinType:  "combination",
			AgeRange:  "25-34",
			Pros:      []string{"invisible finish", "no eye sting"},
		},
		{
			ID:        "rev-008",
			ProductID: "daily-defense-spf50",
			Rating:    3,
			Title:     "Nice but pricey for the size",
			Content:   "Texture is great but I go through a tube every three weeks applying the proper amount.",
			Date:      day(2026, time.July, 12),
			Verified:  false,
			Helpful:   7,
			Unhelpful: 2,
			AgeRange:  "35-44",
			Cons:      []string{"small tube"},
		},
		{
			ID:        "rev-009",
			ProductID: "retinol-renewal-night-cream",
			Rating:    4,
			Title:     "Gentle introduction to retinol",
			Content:   "No peeling at all, which surprised me. Lines on my forehead look softer after two months.",
			Date:      day(2026, time.April, 25),
			Verified:  true,
			Helpful:   21,
			Unhelpful: 1,
			SkinType:  "mature",
			AgeRange:  "45-54",
		},
	}
}

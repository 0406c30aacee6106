package model

import "time"

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	Verified  bool      `json:"verified"`
	Helpful   int       `json:"helpful"`
	Unhelpful int       `json:"unhelpful"`
	SkinType  string    `json:"skin_type,omitempty"`
	AgeRange  string    `json:"age_range,omitempty"`
	Pros      []string  `json:"pros,omitempty"`
	Cons      []string  `json:"cons,omitempty"`
}

// ReviewStats is a pure function of the review set for one product.
// Breakdown maps star value (1..5) to review count.
type ReviewStats struct {
	Average   float64     `json:"average"`
	Total     int         `json:"total"`
	Breakdown map[int]int `json:"breakdown"`
}

package model

// AggregateView is computed fresh on every request and never persisted.
// AverageRating is nil when no records exist, a zero would imply a real score.
type AggregateView struct {
	MovieId       string   `json:"movieId"`
	AverageRating *float64 `json:"averageRating"`
	TotalReviews  int64    `json:"totalReviews"`
}

// Package memory holds in-memory repository doubles used by service and
// handler tests in place of a running mongo instance. Semantics match the
// mongo layer: newest-first listing, mongo.ErrNoDocuments for absent ids.
package memory

import (
	"context"
	"sync"
	"time"

	"review_platform/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReviewRepository struct {
	mux     sync.RWMutex
	reviews []*model.Review
}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{
		reviews: make([]*model.Review, 0),
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) (string, error) {
	r.mux.Lock()
	defer r.mux.Unlock()

	stored := *review
	stored.Id = primitive.NewObjectID()
	r.reviews = append(r.reviews, &stored)
	return stored.Id.Hex(), nil
}

func (r *ReviewRepository) GetById(ctx context.Context, reviewId string) (*model.Review, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()

	for i := range r.reviews {
		if r.reviews[i].Id.Hex() == reviewId {
			stored := *r.reviews[i]
			return &stored, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *ReviewRepository) GetByMovieId(ctx context.Context, movieId string) ([]model.Review, error) {
	return r.filter(func(rev *model.Review) bool {
		return rev.MovieId == movieId
	}), nil
}

func (r *ReviewRepository) GetByUserId(ctx context.Context, userId string) ([]model.Review, error) {
	return r.filter(func(rev *model.Review) bool {
		return rev.UserId == userId
	}), nil
}

func (r *ReviewRepository) Update(ctx context.Context, reviewId string, fields map[string]interface{}) error {
	r.mux.Lock()
	defer r.mux.Unlock()

	for _, rev := range r.reviews {
		if rev.Id.Hex() != reviewId {
			continue
		}
		for key, value := range fields {
			switch key {
			case "reviewText":
				rev.ReviewText = value.(string)
			case "rating":
				rev.Rating = value.(int)
			case "updatedAt":
				rev.UpdatedAt = value.(time.Time)
			}
		}
		return nil
	}
	return mongo.ErrNoDocuments
}

func (r *ReviewRepository) Delete(ctx context.Context, reviewId string) error {
	r.mux.Lock()
	defer r.mux.Unlock()

	for i := range r.reviews {
		if r.reviews[i].Id.Hex() == reviewId {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *ReviewRepository) AverageByMovieId(ctx context.Context, movieId string) (float64, int64, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()

	sum := 0
	var count int64 = 0
	for _, rev := range r.reviews {
		if rev.MovieId == movieId {
			sum += rev.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (r *ReviewRepository) Count() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.reviews)
}

// newest first, insertion order stands in for createdAt on equal timestamps
func (r *ReviewRepository) filter(match func(*model.Review) bool) []model.Review {
	r.mux.RLock()
	defer r.mux.RUnlock()

	results := make([]model.Review, 0)
	for i := len(r.reviews) - 1; i >= 0; i-- {
		if match(r.reviews[i]) {
			results = append(results, *r.reviews[i])
		}
	}
	return results
}

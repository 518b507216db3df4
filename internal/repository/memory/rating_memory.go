package memory

import (
	"context"
	"sync"
	"time"

	"review_platform/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RatingRepository struct {
	mux     sync.RWMutex
	ratings []*model.Rating
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{
		ratings: make([]*model.Rating, 0),
	}
}

func (r *RatingRepository) Create(ctx context.Context, rating *model.Rating) (string, error) {
	r.mux.Lock()
	defer r.mux.Unlock()

	stored := *rating
	stored.Id = primitive.NewObjectID()
	r.ratings = append(r.ratings, &stored)
	return stored.Id.Hex(), nil
}

func (r *RatingRepository) GetById(ctx context.Context, ratingId string) (*model.Rating, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()

	for i := range r.ratings {
		if r.ratings[i].Id.Hex() == ratingId {
			stored := *r.ratings[i]
			return &stored, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *RatingRepository) GetByItemId(ctx context.Context, itemId string) ([]model.Rating, error) {
	return r.filter(func(rat *model.Rating) bool {
		return rat.ItemId == itemId
	}), nil
}

func (r *RatingRepository) GetByUserId(ctx context.Context, userId string) ([]model.Rating, error) {
	return r.filter(func(rat *model.Rating) bool {
		return rat.UserId == userId
	}), nil
}

func (r *RatingRepository) Update(ctx context.Context, ratingId string, fields map[string]interface{}) error {
	r.mux.Lock()
	defer r.mux.Unlock()

	for _, rat := range r.ratings {
		if rat.Id.Hex() != ratingId {
			continue
		}
		for key, value := range fields {
			switch key {
			case "rating":
				rat.Rating = value.(int)
			case "updatedAt":
				rat.UpdatedAt = value.(time.Time)
			}
		}
		return nil
	}
	return mongo.ErrNoDocuments
}

func (r *RatingRepository) Delete(ctx context.Context, ratingId string) error {
	r.mux.Lock()
	defer r.mux.Unlock()

	for i := range r.ratings {
		if r.ratings[i].Id.Hex() == ratingId {
			r.ratings = append(r.ratings[:i], r.ratings[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *RatingRepository) AverageByItemId(ctx context.Context, itemId string) (float64, int64, error) {
	r.mux.RLock()
	defer r.mux.RUnlock()

	sum := 0
	var count int64 = 0
	for _, rat := range r.ratings {
		if rat.ItemId == itemId {
			sum += rat.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func (r *RatingRepository) Count() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.ratings)
}

func (r *RatingRepository) filter(match func(*model.Rating) bool) []model.Rating {
	r.mux.RLock()
	defer r.mux.RUnlock()

	results := make([]model.Rating, 0)
	for i := len(r.ratings) - 1; i >= 0; i-- {
		if match(r.ratings[i]) {
			results = append(results, *r.ratings[i])
		}
	}
	return results
}

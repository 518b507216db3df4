package repository

import (
	"context"
	"review_platform/model"

	"go.mongodb.org/mongo-driver/mongo"
)

type IRatingRepository interface {
	Create(ctx context.Context, rating *model.Rating) (string, error)
	GetById(ctx context.Context, ratingId string) (*model.Rating, error)
	GetByItemId(ctx context.Context, itemId string) ([]model.Rating, error)
	GetByUserId(ctx context.Context, userId string) ([]model.Rating, error)
	Update(ctx context.Context, ratingId string, fields map[string]interface{}) error
	Delete(ctx context.Context, ratingId string) error
	AverageByItemId(ctx context.Context, itemId string) (float64, int64, error)
}

type RatingRepository struct {
	records *OwnedRepository[model.Rating]
}

func NewRatingRepository(mongodb *mongo.Database) *RatingRepository {
	return &RatingRepository{
		records: NewOwnedRepository[model.Rating](mongodb, "ratings"),
	}
}

//------------------------------------------
//------------------------------------------

func (r *RatingRepository) Create(ctx context.Context, rating *model.Rating) (string, error) {
	return r.records.Insert(ctx, rating)
}

func (r *RatingRepository) GetById(ctx context.Context, ratingId string) (*model.Rating, error) {
	return r.records.FindById(ctx, ratingId)
}

func (r *RatingRepository) GetByItemId(ctx context.Context, itemId string) ([]model.Rating, error) {
	return r.records.FindByField(ctx, "itemId", itemId)
}

func (r *RatingRepository) GetByUserId(ctx context.Context, userId string) ([]model.Rating, error) {
	return r.records.FindByField(ctx, "userId", userId)
}

func (r *RatingRepository) Update(ctx context.Context, ratingId string, fields map[string]interface{}) error {
	return r.records.UpdateById(ctx, ratingId, fields)
}

func (r *RatingRepository) Delete(ctx context.Context, ratingId string) error {
	return r.records.DeleteById(ctx, ratingId)
}

func (r *RatingRepository) AverageByItemId(ctx context.Context, itemId string) (float64, int64, error) {
	return r.records.AverageByField(ctx, "itemId", itemId)
}

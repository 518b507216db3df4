package repository

import (
	"context"
	"review_platform/model"

	"go.mongodb.org/mongo-driver/mongo"
)

type IReviewRepository interface {
	Create(ctx context.Context, review *model.Review) (string, error)
	GetById(ctx context.Context, reviewId string) (*model.Review, error)
	GetByMovieId(ctx context.Context, movieId string) ([]model.Review, error)
	GetByUserId(ctx context.Context, userId string) ([]model.Review, error)
	Update(ctx context.Context, reviewId string, fields map[string]interface{}) error
	Delete(ctx context.Context, reviewId string) error
	AverageByMovieId(ctx context.Context, movieId string) (float64, int64, error)
}

type ReviewRepository struct {
	records *OwnedRepository[model.Review]
}

func NewReviewRepository(mongodb *mongo.Database) *ReviewRepository {
	return &ReviewRepository{
		records: NewOwnedRepository[model.Review](mongodb, "reviews"),
	}
}

//------------------------------------------
//------------------------------------------

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) (string, error) {
	return r.records.Insert(ctx, review)
}

func (r *ReviewRepository) GetById(ctx context.Context, reviewId string) (*model.Review, error) {
	return r.records.FindById(ctx, reviewId)
}

func (r *ReviewRepository) GetByMovieId(ctx context.Context, movieId string) ([]model.Review, error) {
	return r.records.FindByField(ctx, "movieId", movieId)
}

func (r *ReviewRepository) GetByUserId(ctx context.Context, userId string) ([]model.Review, error) {
	return r.records.FindByField(ctx, "userId", userId)
}

func (r *ReviewRepository) Update(ctx context.Context, reviewId string, fields map[string]interface{}) error {
	return r.records.UpdateById(ctx, reviewId, fields)
}

func (r *ReviewRepository) Delete(ctx context.Context, reviewId string) error {
	return r.records.DeleteById(ctx, reviewId)
}

func (r *ReviewRepository) AverageByMovieId(ctx context.Context, movieId string) (float64, int64, error) {
	return r.records.AverageByField(ctx, "movieId", movieId)
}

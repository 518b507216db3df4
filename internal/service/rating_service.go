package service

import (
	"context"
	"errors"
	"math"
	"review_platform/internal/auth"
	"review_platform/internal/repository"
	"review_platform/model"
	"review_platform/pkg/response"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

type IRatingService interface {
	CreateRating(ctx context.Context, userData *auth.UserData, req *model.CreateRatingReq) (string, error)
	GetRatingsByItemId(ctx context.Context, itemId string) ([]model.Rating, error)
	GetUserRatings(ctx context.Context, userId string) ([]model.Rating, error)
	UpdateRating(ctx context.Context, userId string, ratingId string, req *model.UpdateRatingReq) error
	DeleteRating(ctx context.Context, userId string, ratingId string) error
	GetItemAggregate(ctx context.Context, itemId string) (*model.AggregateView, error)
}

// RatingService mirrors ReviewService over the standalone ratings
// collection. The two collections are intentionally independent, a
// review's embedded rating never touches a Rating record.
type RatingService struct {
	ratingRepo repository.IRatingRepository
}

func NewRatingService(ratingRepo repository.IRatingRepository) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
	}
}

//------------------------------------------
//------------------------------------------

func (s *RatingService) CreateRating(ctx context.Context, userData *auth.UserData, req *model.CreateRatingReq) (string, error) {
	if req.ItemId == "" || req.Rating == nil {
		return "", &ValidationError{Message: response.MissingRatingFields}
	}

	now := time.Now()
	rating := model.Rating{
		ItemId:    req.ItemId,
		ItemType:  req.ItemType,
		Rating:    *req.Rating,
		UserId:    userData.UserId,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.ratingRepo.Create(ctx, &rating)
}

func (s *RatingService) GetRatingsByItemId(ctx context.Context, itemId string) ([]model.Rating, error) {
	return s.ratingRepo.GetByItemId(ctx, itemId)
}

func (s *RatingService) GetUserRatings(ctx context.Context, userId string) ([]model.Rating, error) {
	return s.ratingRepo.GetByUserId(ctx, userId)
}

func (s *RatingService) UpdateRating(ctx context.Context, userId string, ratingId string, req *model.UpdateRatingReq) error {
	if req.Rating == nil {
		return &ValidationError{Message: response.MissingRatingUpdateFields}
	}

	rating, err := s.ratingRepo.GetById(ctx, ratingId)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	if rating.UserId != userId {
		return ErrForbidden
	}

	fields := map[string]interface{}{
		"rating":    *req.Rating,
		"updatedAt": time.Now(),
	}

	err = s.ratingRepo.Update(ctx, ratingId, fields)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (s *RatingService) DeleteRating(ctx context.Context, userId string, ratingId string) error {
	rating, err := s.ratingRepo.GetById(ctx, ratingId)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	if rating.UserId != userId {
		return ErrForbidden
	}

	err = s.ratingRepo.Delete(ctx, ratingId)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (s *RatingService) GetItemAggregate(ctx context.Context, itemId string) (*model.AggregateView, error) {
	average, count, err := s.ratingRepo.AverageByItemId(ctx, itemId)
	if err != nil {
		return nil, err
	}

	aggregate := model.AggregateView{
		MovieId:      itemId,
		TotalReviews: count,
	}
	if count > 0 {
		rounded := math.Round(average*10) / 10
		aggregate.AverageRating = &rounded
	}
	return &aggregate, nil
}

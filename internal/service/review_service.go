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

type IReviewService interface {
	CreateReview(ctx context.Context, userData *auth.UserData, req *model.CreateReviewReq) (string, error)
	GetReviewsByMovieId(ctx context.Context, movieId string) ([]model.Review, error)
	GetUserReviews(ctx context.Context, userId string) ([]model.Review, error)
	UpdateReview(ctx context.Context, userId string, reviewId string, req *model.UpdateReviewReq) error
	DeleteReview(ctx context.Context, userId string, reviewId string) error
	GetMovieAggregate(ctx context.Context, movieId string) (*model.AggregateView, error)
}

type ReviewService struct {
	reviewRepo repository.IReviewRepository
}

func NewReviewService(reviewRepo repository.IReviewRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
	}
}

//------------------------------------------
//------------------------------------------

// CreateReview attributes the review to the verified identity. The request
// body never carries an authoritative userId.
func (s *ReviewService) CreateReview(ctx context.Context, userData *auth.UserData, req *model.CreateReviewReq) (string, error) {
	if req.MovieId == "" || req.ReviewText == "" || req.Rating == nil {
		return "", &ValidationError{Message: response.MissingReviewFields}
	}
	if *req.Rating < 1 || *req.Rating > 5 {
		return "", &ValidationError{Message: response.InvalidReviewRating}
	}

	now := time.Now()
	review := model.Review{
		MovieId:    req.MovieId,
		MovieTitle: req.MovieTitle,
		Rating:     *req.Rating,
		ReviewText: req.ReviewText,
		UserId:     userData.UserId,
		UserName:   req.UserName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if review.UserName == "" {
		review.UserName = userData.Username
	}

	return s.reviewRepo.Create(ctx, &review)
}

func (s *ReviewService) GetReviewsByMovieId(ctx context.Context, movieId string) ([]model.Review, error) {
	return s.reviewRepo.GetByMovieId(ctx, movieId)
}

func (s *ReviewService) GetUserReviews(ctx context.Context, userId string) ([]model.Review, error) {
	return s.reviewRepo.GetByUserId(ctx, userId)
}

func (s *ReviewService) UpdateReview(ctx context.Context, userId string, reviewId string, req *model.UpdateReviewReq) error {
	if req.ReviewText == nil && req.Rating == nil {
		return &ValidationError{Message: response.MissingReviewUpdateFields}
	}
	if req.ReviewText != nil && *req.ReviewText == "" {
		return &ValidationError{Message: response.EmptyReviewText}
	}
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return &ValidationError{Message: response.InvalidReviewRating}
	}

	review, err := s.reviewRepo.GetById(ctx, reviewId)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	if review.UserId != userId {
		return ErrForbidden
	}

	fields := map[string]interface{}{
		"updatedAt": time.Now(),
	}
	if req.ReviewText != nil {
		fields["reviewText"] = *req.ReviewText
	}
	if req.Rating != nil {
		fields["rating"] = *req.Rating
	}

	err = s.reviewRepo.Update(ctx, reviewId, fields)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (s *ReviewService) DeleteReview(ctx context.Context, userId string, reviewId string) error {
	review, err := s.reviewRepo.GetById(ctx, reviewId)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	if review.UserId != userId {
		return ErrForbidden
	}

	err = s.reviewRepo.Delete(ctx, reviewId)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// GetMovieAggregate recomputes the mean from the current record set on
// every call, nothing is cached or persisted.
func (s *ReviewService) GetMovieAggregate(ctx context.Context, movieId string) (*model.AggregateView, error) {
	average, count, err := s.reviewRepo.AverageByMovieId(ctx, movieId)
	if err != nil {
		return nil, err
	}

	aggregate := model.AggregateView{
		MovieId:      movieId,
		TotalReviews: count,
	}
	if count > 0 {
		rounded := math.Round(average*10) / 10
		aggregate.AverageRating = &rounded
	}
	return &aggregate, nil
}

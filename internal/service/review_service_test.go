package service_test

import (
	"context"
	"testing"
	"time"

	"review_platform/internal/auth"
	"review_platform/internal/repository/memory"
	"review_platform/internal/service"
	"review_platform/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func createTestReview(t *testing.T, svc *service.ReviewService, userId string, movieId string, rating int, text string) string {
	t.Helper()
	id, err := svc.CreateReview(context.Background(), &auth.UserData{UserId: userId}, &model.CreateReviewReq{
		MovieId:    movieId,
		Rating:     intPtr(rating),
		ReviewText: text,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func TestCreateReviewUsesVerifiedIdentity(t *testing.T) {
	repo := memory.NewReviewRepository()
	svc := service.NewReviewService(repo)

	id := createTestReview(t, svc, "user-a", "tt1", 5, "great")

	stored, err := repo.GetById(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "user-a", stored.UserId)
	assert.Equal(t, "tt1", stored.MovieId)
	assert.Equal(t, 5, stored.Rating)
	assert.Equal(t, "great", stored.ReviewText)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)
}

func TestCreateReviewValidation(t *testing.T) {
	svc := service.NewReviewService(memory.NewReviewRepository())
	userData := &auth.UserData{UserId: "user-a"}

	testCases := []struct {
		name string
		req  *model.CreateReviewReq
	}{
		{"missing movieId", &model.CreateReviewReq{Rating: intPtr(4), ReviewText: "fine"}},
		{"missing rating", &model.CreateReviewReq{MovieId: "tt1", ReviewText: "fine"}},
		{"missing reviewText", &model.CreateReviewReq{MovieId: "tt1", Rating: intPtr(4)}},
		{"rating too low", &model.CreateReviewReq{MovieId: "tt1", Rating: intPtr(0), ReviewText: "fine"}},
		{"rating too high", &model.CreateReviewReq{MovieId: "tt1", Rating: intPtr(6), ReviewText: "fine"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateReview(context.Background(), userData, tc.req)
			var validationErr *service.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestGetReviewsByMovieIdNewestFirst(t *testing.T) {
	repo := memory.NewReviewRepository()
	svc := service.NewReviewService(repo)

	first := createTestReview(t, svc, "user-a", "tt1", 5, "first")
	createTestReview(t, svc, "user-b", "tt2", 3, "other movie")
	second := createTestReview(t, svc, "user-b", "tt1", 4, "second")

	reviews, err := svc.GetReviewsByMovieId(context.Background(), "tt1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, second, reviews[0].Id.Hex())
	assert.Equal(t, first, reviews[1].Id.Hex())
}

func TestGetReviewsByMovieIdEmpty(t *testing.T) {
	svc := service.NewReviewService(memory.NewReviewRepository())

	reviews, err := svc.GetReviewsByMovieId(context.Background(), "tt404")
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestGetUserReviewsReturnsOnlyOwn(t *testing.T) {
	repo := memory.NewReviewRepository()
	svc := service.NewReviewService(repo)

	createTestReview(t, svc, "user-a", "tt1", 5, "mine")
	createTestReview(t, svc, "user-b", "tt1", 2, "someone else")

	reviews, err := svc.GetUserReviews(context.Background(), "user-a")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "user-a", reviews[0].UserId)
}

func TestUpdateReviewPartialPatch(t *testing.T) {
	repo := memory.NewReviewRepository()
	svc := service.NewReviewService(repo)

	id := createTestReview(t, svc, "user-a", "tt1", 5, "great")
	before, err := repo.GetById(context.Background(), id)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	err = svc.UpdateReview(context.Background(), "user-a", id, &model.UpdateReviewReq{
		Rating: intPtr(4),
	})
	require.NoError(t, err)

	after, err := repo.GetById(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 4, after.Rating)
	assert.Equal(t, "great", after.ReviewText, "unsupplied field must keep its value")
	assert.Equal(t, before.CreatedAt, after.CreatedAt, "createdAt never changes")
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt), "updatedAt must advance")
	assert.Equal(t, "user-a", after.UserId)
}

func TestUpdateReviewEmptyPatch(t *testing.T) {
	repo := memory.NewReviewRepository()
	svc := service.NewReviewService(repo)

	id := createTestReview(t, svc, "user-a", "tt1", 5, "great")

	err := svc.UpdateReview(context.Background(), "user-a", id, &model.UpdateReviewReq{})
	var validationErr *service.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestUpdateReviewEmptyText(t *testing.T) {
	repo := memory.NewReviewRepository()
	svc := service.NewReviewService(repo)

	id := createTestReview(t, svc, "user-a", "tt1", 5, "great")

	err := svc.UpdateReview(context.Background(), "user-a", id, &model.UpdateReviewReq{
		ReviewText: strPtr(""),
	})
	var validationErr *service.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	stored, err := repo.GetById(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "great", stored.ReviewText, "rejected patch must not change the record")
}

func TestUpdateReviewNotFound(t *testing.T) {
	svc := service.NewReviewService(memory.NewReviewRepository())

	err := svc.UpdateReview(context.Background(), "user-a", "652d00000000000000000000", &model.UpdateReviewReq{
		ReviewText: strPtr("changed"),
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestUpdateReviewForbidden(t *testing.T) {
	repo := memory.NewReviewRepository()
	svc := service.NewReviewService(repo)

	id := createTestReview(t, svc, "user-a", "tt1", 5, "great")

	err := svc.UpdateReview(context.Background(), "user-b", id, &model.UpdateReviewReq{
		ReviewText: strPtr("hijacked"),
	})
	assert.ErrorIs(t, err, service.ErrForbidden)

	stored, err := repo.GetById(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "great", stored.ReviewText, "record must be unchanged after forbidden update")
	assert.Equal(t, 5, stored.Rating)
}

func TestDeleteReview(t *testing.T) {
	repo := memory.NewReviewRepository()
	svc := service.NewReviewService(repo)

	id := createTestReview(t, svc, "user-a", "tt1", 5, "great")

	err := svc.DeleteReview(context.Background(), "user-b", id)
	assert.ErrorIs(t, err, service.ErrForbidden)

	err = svc.DeleteReview(context.Background(), "user-a", id)
	require.NoError(t, err)
	assert.Equal(t, 0, repo.Count())

	// second delete of the same id is NotFound, not success
	err = svc.DeleteReview(context.Background(), "user-a", id)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetMovieAggregate(t *testing.T) {
	repo := memory.NewReviewRepository()
	svc := service.NewReviewService(repo)

	createTestReview(t, svc, "user-a", "tt1", 4, "good")
	createTestReview(t, svc, "user-b", "tt1", 5, "great")
	createTestReview(t, svc, "user-c", "tt1", 3, "okay")

	aggregate, err := svc.GetMovieAggregate(context.Background(), "tt1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), aggregate.TotalReviews)
	require.NotNil(t, aggregate.AverageRating)
	assert.Equal(t, 4.0, *aggregate.AverageRating)
}

func TestGetMovieAggregateRounding(t *testing.T) {
	repo := memory.NewReviewRepository()
	svc := service.NewReviewService(repo)

	createTestReview(t, svc, "user-a", "tt1", 4, "good")
	createTestReview(t, svc, "user-b", "tt1", 4, "good")
	createTestReview(t, svc, "user-c", "tt1", 5, "great")

	aggregate, err := svc.GetMovieAggregate(context.Background(), "tt1")
	require.NoError(t, err)
	require.NotNil(t, aggregate.AverageRating)
	assert.Equal(t, 4.3, *aggregate.AverageRating)
}

func TestGetMovieAggregateNoRecords(t *testing.T) {
	svc := service.NewReviewService(memory.NewReviewRepository())

	aggregate, err := svc.GetMovieAggregate(context.Background(), "tt404")
	require.NoError(t, err)
	assert.Equal(t, int64(0), aggregate.TotalReviews)
	assert.Nil(t, aggregate.AverageRating, "no records means no average, not zero")
}

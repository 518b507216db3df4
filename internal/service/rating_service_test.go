package service_test

import (
	"context"
	"testing"

	"review_platform/internal/auth"
	"review_platform/internal/repository/memory"
	"review_platform/internal/service"
	"review_platform/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestRating(t *testing.T, svc *service.RatingService, userId string, itemId string, rating int) string {
	t.Helper()
	id, err := svc.CreateRating(context.Background(), &auth.UserData{UserId: userId}, &model.CreateRatingReq{
		ItemId: itemId,
		Rating: intPtr(rating),
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func TestCreateRatingUsesVerifiedIdentity(t *testing.T) {
	repo := memory.NewRatingRepository()
	svc := service.NewRatingService(repo)

	id := createTestRating(t, svc, "user-a", "tt1", 4)

	stored, err := repo.GetById(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "user-a", stored.UserId)
	assert.Equal(t, "tt1", stored.ItemId)
	assert.Equal(t, 4, stored.Rating)
}

func TestCreateRatingValidation(t *testing.T) {
	svc := service.NewRatingService(memory.NewRatingRepository())
	userData := &auth.UserData{UserId: "user-a"}

	testCases := []struct {
		name string
		req  *model.CreateRatingReq
	}{
		{"missing itemId", &model.CreateRatingReq{Rating: intPtr(4)}},
		{"missing rating", &model.CreateRatingReq{ItemId: "tt1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateRating(context.Background(), userData, tc.req)
			var validationErr *service.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestUpdateRatingOwnership(t *testing.T) {
	repo := memory.NewRatingRepository()
	svc := service.NewRatingService(repo)

	id := createTestRating(t, svc, "user-a", "tt1", 2)

	err := svc.UpdateRating(context.Background(), "user-b", id, &model.UpdateRatingReq{Rating: intPtr(5)})
	assert.ErrorIs(t, err, service.ErrForbidden)

	err = svc.UpdateRating(context.Background(), "user-a", "652d00000000000000000000", &model.UpdateRatingReq{Rating: intPtr(5)})
	assert.ErrorIs(t, err, service.ErrNotFound)

	err = svc.UpdateRating(context.Background(), "user-a", id, &model.UpdateRatingReq{})
	var validationErr *service.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	err = svc.UpdateRating(context.Background(), "user-a", id, &model.UpdateRatingReq{Rating: intPtr(5)})
	require.NoError(t, err)
	stored, err := repo.GetById(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Rating)
}

func TestDeleteRatingIdempotence(t *testing.T) {
	repo := memory.NewRatingRepository()
	svc := service.NewRatingService(repo)

	id := createTestRating(t, svc, "user-a", "tt1", 3)

	err := svc.DeleteRating(context.Background(), "user-b", id)
	assert.ErrorIs(t, err, service.ErrForbidden)

	err = svc.DeleteRating(context.Background(), "user-a", id)
	require.NoError(t, err)

	err = svc.DeleteRating(context.Background(), "user-a", id)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestGetItemAggregate(t *testing.T) {
	repo := memory.NewRatingRepository()
	svc := service.NewRatingService(repo)

	createTestRating(t, svc, "user-a", "tt1", 4)
	createTestRating(t, svc, "user-b", "tt1", 5)
	createTestRating(t, svc, "user-c", "tt1", 3)
	createTestRating(t, svc, "user-a", "tt2", 1)

	aggregate, err := svc.GetItemAggregate(context.Background(), "tt1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), aggregate.TotalReviews)
	require.NotNil(t, aggregate.AverageRating)
	assert.Equal(t, 4.0, *aggregate.AverageRating)

	empty, err := svc.GetItemAggregate(context.Background(), "tt404")
	require.NoError(t, err)
	assert.Equal(t, int64(0), empty.TotalReviews)
	assert.Nil(t, empty.AverageRating)
}

package handler

import (
	"errors"
	"fmt"
	"review_platform/internal/auth"
	"review_platform/internal/service"
	"review_platform/model"
	errorHandler "review_platform/pkg/error"
	"review_platform/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IReviewHandler interface {
	CreateReview(c *fiber.Ctx) error
	GetReviewsByItem(c *fiber.Ctx) error
	GetUserReviews(c *fiber.Ctx) error
	GetReviewAggregate(c *fiber.Ctx) error
	UpdateReview(c *fiber.Ctx) error
	DeleteReview(c *fiber.Ctx) error
}

type ReviewHandler struct {
	reviewService service.IReviewService
}

func NewReviewHandler(reviewService service.IReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

//------------------------------------------
//------------------------------------------

// CreateReview godoc
//
//	@Summary		Create Review
//	@Description	create a review for a movie, attributed to the authenticated user
//	@Tags			Review
//	@Param			review	body		model.CreateReviewReq	true	"review"
//	@Success		201		{object}	response.ResponseCreatedModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/reviews [post]
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	userData := getUserData(c)
	if userData == nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}

	var req model.CreateReviewReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	id, err := h.reviewService.CreateReview(c.UserContext(), userData, &req)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return response.ResponseError(c, validationErr.Message, fiber.StatusBadRequest)
		}
		errorMessage := fmt.Sprintf("Error creating review: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseCreated(c, response.ReviewCreated, id)
}

// GetReviewsByItem godoc
//
//	@Summary		Movie Reviews
//	@Description	list reviews of a movie, newest first. public, no auth needed
//	@Tags			Review
//	@Param			itemId	path		string	true	"external movie id"
//	@Success		200		{object}	[]model.Review
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/api/reviews/:itemId [get]
func (h *ReviewHandler) GetReviewsByItem(c *fiber.Ctx) error {
	itemId := c.Params("itemId", "")
	if itemId == "" || itemId == ":itemId" {
		return response.ResponseError(c, response.InvalidItemId, fiber.StatusBadRequest)
	}

	reviews, err := h.reviewService.GetReviewsByMovieId(c.UserContext(), itemId)
	if err != nil {
		errorMessage := fmt.Sprintf("Error fetching reviews: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, reviews)
}

// GetUserReviews godoc
//
//	@Summary		User Reviews
//	@Description	list the authenticated user's own reviews, newest first
//	@Tags			Review
//	@Success		200	{object}	[]model.Review
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/reviews/user/reviews [get]
func (h *ReviewHandler) GetUserReviews(c *fiber.Ctx) error {
	userData := getUserData(c)
	if userData == nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}

	reviews, err := h.reviewService.GetUserReviews(c.UserContext(), userData.UserId)
	if err != nil {
		errorMessage := fmt.Sprintf("Error fetching user reviews: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, reviews)
}

// GetReviewAggregate godoc
//
//	@Summary		Review Aggregate
//	@Description	mean rating and review count of a movie, recomputed per request
//	@Tags			Review
//	@Param			itemId	path		string	true	"external movie id"
//	@Success		200		{object}	model.AggregateView
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/api/reviews/aggregate/:itemId [get]
func (h *ReviewHandler) GetReviewAggregate(c *fiber.Ctx) error {
	itemId := c.Params("itemId", "")
	if itemId == "" || itemId == ":itemId" {
		return response.ResponseError(c, response.InvalidItemId, fiber.StatusBadRequest)
	}

	aggregate, err := h.reviewService.GetMovieAggregate(c.UserContext(), itemId)
	if err != nil {
		errorMessage := fmt.Sprintf("Error computing review aggregate: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, aggregate)
}

// UpdateReview godoc
//
//	@Summary		Update Review
//	@Description	update reviewText and/or rating of the user's own review
//	@Tags			Review
//	@Param			reviewId	path		string					true	"reviewId"
//	@Param			review		body		model.UpdateReviewReq	true	"patch"
//	@Success		200			{object}	response.ResponseMessageModel
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/reviews/:reviewId [put]
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	userData := getUserData(c)
	if userData == nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}

	reviewId := c.Params("reviewId", "")
	if reviewId == "" || reviewId == ":reviewId" {
		return response.ResponseError(c, response.InvalidReviewId, fiber.StatusBadRequest)
	}

	var req model.UpdateReviewReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	err := h.reviewService.UpdateReview(c.UserContext(), userData.UserId, reviewId, &req)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return response.ResponseError(c, validationErr.Message, fiber.StatusBadRequest)
		case errors.Is(err, service.ErrNotFound):
			return response.ResponseError(c, response.ReviewNotFound, fiber.StatusNotFound)
		case errors.Is(err, service.ErrForbidden):
			return response.ResponseError(c, response.ReviewUpdateForbidden, fiber.StatusForbidden)
		}
		errorMessage := fmt.Sprintf("Error updating review: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, response.ReviewUpdated)
}

// DeleteReview godoc
//
//	@Summary		Delete Review
//	@Description	permanently delete the user's own review
//	@Tags			Review
//	@Param			reviewId	path		string	true	"reviewId"
//	@Success		200			{object}	response.ResponseMessageModel
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/reviews/:reviewId [delete]
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	userData := getUserData(c)
	if userData == nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}

	reviewId := c.Params("reviewId", "")
	if reviewId == "" || reviewId == ":reviewId" {
		return response.ResponseError(c, response.InvalidReviewId, fiber.StatusBadRequest)
	}

	err := h.reviewService.DeleteReview(c.UserContext(), userData.UserId, reviewId)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return response.ResponseError(c, response.ReviewNotFound, fiber.StatusNotFound)
		case errors.Is(err, service.ErrForbidden):
			return response.ResponseError(c, response.ReviewDeleteForbidden, fiber.StatusForbidden)
		}
		errorMessage := fmt.Sprintf("Error deleting review: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, response.ReviewDeleted)
}

//------------------------------------------
//------------------------------------------

func getUserData(c *fiber.Ctx) *auth.UserData {
	userData, ok := c.Locals("userData").(*auth.UserData)
	if !ok {
		return nil
	}
	return userData
}

package handler

import (
	"errors"
	"fmt"
	"review_platform/internal/service"
	"review_platform/model"
	errorHandler "review_platform/pkg/error"
	"review_platform/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IRatingHandler interface {
	CreateRating(c *fiber.Ctx) error
	GetRatingsByItem(c *fiber.Ctx) error
	GetUserRatings(c *fiber.Ctx) error
	GetRatingAggregate(c *fiber.Ctx) error
	UpdateRating(c *fiber.Ctx) error
	DeleteRating(c *fiber.Ctx) error
}

type RatingHandler struct {
	ratingService service.IRatingService
}

func NewRatingHandler(ratingService service.IRatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

//------------------------------------------
//------------------------------------------

// CreateRating godoc
//
//	@Summary		Create Rating
//	@Description	create a standalone rating for an item
//	@Tags			Rating
//	@Param			rating	body		model.CreateRatingReq	true	"rating"
//	@Success		201		{object}	response.ResponseCreatedModel
//	@Failure		400,401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/ratings [post]
func (h *RatingHandler) CreateRating(c *fiber.Ctx) error {
	userData := getUserData(c)
	if userData == nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}

	var req model.CreateRatingReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	id, err := h.ratingService.CreateRating(c.UserContext(), userData, &req)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			return response.ResponseError(c, validationErr.Message, fiber.StatusBadRequest)
		}
		errorMessage := fmt.Sprintf("Error creating rating: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseCreated(c, response.RatingCreated, id)
}

// GetRatingsByItem godoc
//
//	@Summary		Item Ratings
//	@Description	list standalone ratings of an item, newest first. public
//	@Tags			Rating
//	@Param			itemId	path		string	true	"external item id"
//	@Success		200		{object}	[]model.Rating
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/api/ratings/:itemId [get]
func (h *RatingHandler) GetRatingsByItem(c *fiber.Ctx) error {
	itemId := c.Params("itemId", "")
	if itemId == "" || itemId == ":itemId" {
		return response.ResponseError(c, response.InvalidItemId, fiber.StatusBadRequest)
	}

	ratings, err := h.ratingService.GetRatingsByItemId(c.UserContext(), itemId)
	if err != nil {
		errorMessage := fmt.Sprintf("Error fetching ratings: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, ratings)
}

// GetUserRatings godoc
//
//	@Summary		User Ratings
//	@Description	list the authenticated user's own ratings, newest first
//	@Tags			Rating
//	@Success		200	{object}	[]model.Rating
//	@Failure		401	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/ratings/user/ratings [get]
func (h *RatingHandler) GetUserRatings(c *fiber.Ctx) error {
	userData := getUserData(c)
	if userData == nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}

	ratings, err := h.ratingService.GetUserRatings(c.UserContext(), userData.UserId)
	if err != nil {
		errorMessage := fmt.Sprintf("Error fetching user ratings: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, ratings)
}

// GetRatingAggregate godoc
//
//	@Summary		Rating Aggregate
//	@Description	mean value and count of standalone ratings of an item
//	@Tags			Rating
//	@Param			itemId	path		string	true	"external item id"
//	@Success		200		{object}	model.AggregateView
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/api/ratings/aggregate/:itemId [get]
func (h *RatingHandler) GetRatingAggregate(c *fiber.Ctx) error {
	itemId := c.Params("itemId", "")
	if itemId == "" || itemId == ":itemId" {
		return response.ResponseError(c, response.InvalidItemId, fiber.StatusBadRequest)
	}

	aggregate, err := h.ratingService.GetItemAggregate(c.UserContext(), itemId)
	if err != nil {
		errorMessage := fmt.Sprintf("Error computing rating aggregate: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, aggregate)
}

// UpdateRating godoc
//
//	@Summary		Update Rating
//	@Description	update the value of the user's own rating
//	@Tags			Rating
//	@Param			ratingId	path		string					true	"ratingId"
//	@Param			rating		body		model.UpdateRatingReq	true	"patch"
//	@Success		200			{object}	response.ResponseMessageModel
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/ratings/:ratingId [put]
func (h *RatingHandler) UpdateRating(c *fiber.Ctx) error {
	userData := getUserData(c)
	if userData == nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}

	ratingId := c.Params("ratingId", "")
	if ratingId == "" || ratingId == ":ratingId" {
		return response.ResponseError(c, response.InvalidRatingId, fiber.StatusBadRequest)
	}

	var req model.UpdateRatingReq
	if err := c.BodyParser(&req); err != nil {
		return response.ResponseError(c, response.BadRequestBody, fiber.StatusBadRequest)
	}

	err := h.ratingService.UpdateRating(c.UserContext(), userData.UserId, ratingId, &req)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return response.ResponseError(c, validationErr.Message, fiber.StatusBadRequest)
		case errors.Is(err, service.ErrNotFound):
			return response.ResponseError(c, response.RatingNotFound, fiber.StatusNotFound)
		case errors.Is(err, service.ErrForbidden):
			return response.ResponseError(c, response.RatingUpdateForbidden, fiber.StatusForbidden)
		}
		errorMessage := fmt.Sprintf("Error updating rating: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, response.RatingUpdated)
}

// DeleteRating godoc
//
//	@Summary		Delete Rating
//	@Description	permanently delete the user's own rating
//	@Tags			Rating
//	@Param			ratingId	path		string	true	"ratingId"
//	@Success		200			{object}	response.ResponseMessageModel
//	@Failure		400,401,403,404	{object}	response.ResponseErrorModel
//	@Security		BearerAuth
//	@Router			/api/ratings/:ratingId [delete]
func (h *RatingHandler) DeleteRating(c *fiber.Ctx) error {
	userData := getUserData(c)
	if userData == nil {
		return response.ResponseError(c, response.InvalidToken, fiber.StatusUnauthorized)
	}

	ratingId := c.Params("ratingId", "")
	if ratingId == "" || ratingId == ":ratingId" {
		return response.ResponseError(c, response.InvalidRatingId, fiber.StatusBadRequest)
	}

	err := h.ratingService.DeleteRating(c.UserContext(), userData.UserId, ratingId)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			return response.ResponseError(c, response.RatingNotFound, fiber.StatusNotFound)
		case errors.Is(err, service.ErrForbidden):
			return response.ResponseError(c, response.RatingDeleteForbidden, fiber.StatusForbidden)
		}
		errorMessage := fmt.Sprintf("Error deleting rating: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOK(c, response.RatingDeleted)
}

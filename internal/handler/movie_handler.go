package handler

import (
	"errors"
	"fmt"
	"review_platform/internal/service"
	errorHandler "review_platform/pkg/error"
	"review_platform/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type IMovieHandler interface {
	SearchMovies(c *fiber.Ctx) error
	GetMovieById(c *fiber.Ctx) error
}

// MovieHandler is a thin read-only proxy in front of the metadata
// provider, keeps the provider api key off the browser.
type MovieHandler struct {
	movieService service.IMovieService
}

func NewMovieHandler(movieService service.IMovieService) *MovieHandler {
	return &MovieHandler{
		movieService: movieService,
	}
}

//------------------------------------------
//------------------------------------------

// SearchMovies godoc
//
//	@Summary		Search Movies
//	@Description	search the metadata provider by title
//	@Tags			Movie
//	@Param			query	query		string	true	"search query"
//	@Success		200		{object}	[]model.MovieSearchResult
//	@Failure		400		{object}	response.ResponseErrorModel
//	@Router			/api/movies/search [get]
func (h *MovieHandler) SearchMovies(c *fiber.Ctx) error {
	query := c.Query("query", "")
	if query == "" {
		return response.ResponseError(c, response.InvalidSearchQuery, fiber.StatusBadRequest)
	}

	movies, err := h.movieService.SearchMovies(c.UserContext(), query)
	if err != nil {
		errorMessage := fmt.Sprintf("Error searching movies: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, movies)
}

// GetMovieById godoc
//
//	@Summary		Movie Details
//	@Description	full metadata record of a movie by its external id
//	@Tags			Movie
//	@Param			movieId	path		string	true	"external movie id"
//	@Success		200		{object}	model.MovieDetail
//	@Failure		400,404	{object}	response.ResponseErrorModel
//	@Router			/api/movies/:movieId [get]
func (h *MovieHandler) GetMovieById(c *fiber.Ctx) error {
	movieId := c.Params("movieId", "")
	if movieId == "" || movieId == ":movieId" {
		return response.ResponseError(c, response.InvalidMovieId, fiber.StatusBadRequest)
	}

	movie, err := h.movieService.GetMovieById(c.UserContext(), movieId)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return response.ResponseError(c, response.MovieNotFound, fiber.StatusNotFound)
		}
		errorMessage := fmt.Sprintf("Error fetching movie details: %v", err)
		errorHandler.SaveError(errorMessage, err)
		return response.ResponseError(c, response.ServerError, fiber.StatusInternalServerError)
	}

	return response.ResponseOKWithData(c, movie)
}

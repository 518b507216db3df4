package api

import (
	"context"
	"errors"
	"fmt"
	"review_platform/api/middleware"
	"review_platform/configs"
	"review_platform/internal/handler"
	"review_platform/pkg/response"
	"slices"
	"strings"
	"time"

	"github.com/gofiber/contrib/fibersentry"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

var router *fiber.App

func InitRouter(
	reviewHandler *handler.ReviewHandler,
	ratingHandler *handler.RatingHandler,
	movieHandler *handler.MovieHandler,
	authMiddleware fiber.Handler,
) *fiber.App {
	var defaultErrorHandler = func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if !strings.Contains(err.Error(), "/favicon.ico") && code >= 500 {
			fmt.Println(err.Error())
		}

		return response.ResponseError(c, response.ServerError, code)
	}

	router = fiber.New(fiber.Config{
		UnescapePath: true,
		ErrorHandler: defaultErrorHandler,
	})

	router.Use(helmet.New())
	router.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return middleware.LocalhostRegex.MatchString(origin) ||
				slices.Index(configs.GetConfigs().CorsAllowedOrigins, origin) != -1
		},
		AllowCredentials: true,
	}))
	router.Use(timeoutMiddleware(time.Second * 10))
	router.Use(recover.New())
	router.Use(compress.New())

	router.Use(fibersentry.New(fibersentry.Config{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	reviewRoutes := router.Group("api/reviews")
	{
		reviewRoutes.Get("/user/reviews", authMiddleware, reviewHandler.GetUserReviews)
		reviewRoutes.Get("/aggregate/:itemId", reviewHandler.GetReviewAggregate)
		reviewRoutes.Get("/:itemId", reviewHandler.GetReviewsByItem)
		reviewRoutes.Post("/", authMiddleware, reviewHandler.CreateReview)
		reviewRoutes.Put("/:reviewId", authMiddleware, reviewHandler.UpdateReview)
		reviewRoutes.Delete("/:reviewId", authMiddleware, reviewHandler.DeleteReview)
	}

	ratingRoutes := router.Group("api/ratings")
	{
		ratingRoutes.Get("/user/ratings", authMiddleware, ratingHandler.GetUserRatings)
		ratingRoutes.Get("/aggregate/:itemId", ratingHandler.GetRatingAggregate)
		ratingRoutes.Get("/:itemId", ratingHandler.GetRatingsByItem)
		ratingRoutes.Post("/", authMiddleware, ratingHandler.CreateRating)
		ratingRoutes.Put("/:ratingId", authMiddleware, ratingHandler.UpdateRating)
		ratingRoutes.Delete("/:ratingId", authMiddleware, ratingHandler.DeleteRating)
	}

	movieRoutes := router.Group("api/movies")
	{
		movieRoutes.Get("/search", movieHandler.SearchMovies)
		movieRoutes.Get("/:movieId", movieHandler.GetMovieById)
	}

	router.Get("/", HealthCheck)
	router.Get("/metrics", monitor.New())

	return router
}

func Start(addr string) error {
	return router.Listen(addr)
}

func timeoutMiddleware(timeout time.Duration) func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {

		// wrap the request context with a timeout
		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()

		// handlers read this context back with UserContext, so every
		// downstream call inherits the deadline
		c.SetUserContext(ctx)

		err := c.Next()

		// check if context timeout was reached
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return c.SendStatus(fiber.StatusGatewayTimeout)
		}

		return err
	}
}

// HealthCheck godoc
//
//	@Summary		Show the status of server.
//	@Description	get the status of server.
//	@Tags			System
//	@Success		200	{object}	map[string]interface{}
//	@Router			/ [get]
func HealthCheck(c *fiber.Ctx) error {
	res := map[string]interface{}{
		"data": "Review Platform Backend is Running!",
	}

	if err := c.JSON(res); err != nil {
		return err
	}

	return nil
}

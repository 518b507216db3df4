package main

import (
	"context"
	"log"
	"review_platform/api"
	"review_platform/api/middleware"
	"review_platform/configs"
	"review_platform/db/mongodb"
	"review_platform/db/redis"
	"review_platform/internal/auth"
	"review_platform/internal/handler"
	"review_platform/internal/repository"
	"review_platform/internal/service"
	"time"

	"github.com/getsentry/sentry-go"
)

// @title						Review Platform
// @version					1.0
// @description				Review/rating service of the movie review platform.
// @host						api.movieReviews.site
// @BasePath					/
// @schemes					https
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Type "Bearer" followed by a space and the token.
// @Accept						json
// @Produce					json
func main() {
	configs.LoadEnvVariables()

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              configs.GetConfigs().SentryDns,
		Release:          configs.GetConfigs().SentryRelease,
		TracesSampleRate: 1,
		EnableTracing:    true,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	redisClient := redis.NewClient()

	mongoDB, err := mongodb.NewDatabase()
	if err != nil {
		log.Fatalf("could not initialize mongodb database connection: %s", err)
	}
	defer mongoDB.Close()

	verifier, err := auth.NewVerifier(context.Background())
	if err != nil {
		log.Fatalf("could not initialize identity verifier: %s", err)
	}

	reviewRep := repository.NewReviewRepository(mongoDB.GetDB())
	reviewSvc := service.NewReviewService(reviewRep)
	reviewHandler := handler.NewReviewHandler(reviewSvc)

	ratingRep := repository.NewRatingRepository(mongoDB.GetDB())
	ratingSvc := service.NewRatingService(ratingRep)
	ratingHandler := handler.NewRatingHandler(ratingSvc)

	movieSvc := service.NewMovieService(redisClient)
	movieHandler := handler.NewMovieHandler(movieSvc)

	authMiddleware := middleware.NewAuthMiddleware(verifier, redisClient)

	api.InitRouter(reviewHandler, ratingHandler, movieHandler, authMiddleware)
	log.Fatal(api.Start("0.0.0.0:" + configs.GetConfigs().Port))
}

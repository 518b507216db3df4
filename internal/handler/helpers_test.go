package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"review_platform/api"
	"review_platform/api/middleware"
	"review_platform/internal/auth"
	"review_platform/internal/handler"
	"review_platform/internal/repository/memory"
	"review_platform/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	users map[string]*auth.UserData
}

func (v *fakeVerifier) Verify(ctx context.Context, token string) (*auth.UserData, error) {
	if userData, ok := v.users[token]; ok {
		return userData, nil
	}
	return nil, fmt.Errorf("unknown token")
}

type testEnv struct {
	app        *fiber.App
	reviewRepo *memory.ReviewRepository
	ratingRepo *memory.RatingRepository
}

// newTestEnv wires the real router against in-memory repositories and a
// fake identity provider knowing token-a (user-a) and token-b (user-b).
func newTestEnv() *testEnv {
	reviewRepo := memory.NewReviewRepository()
	ratingRepo := memory.NewRatingRepository()

	reviewHandler := handler.NewReviewHandler(service.NewReviewService(reviewRepo))
	ratingHandler := handler.NewRatingHandler(service.NewRatingService(ratingRepo))
	movieHandler := handler.NewMovieHandler(service.NewMovieService(nil))

	verifier := &fakeVerifier{users: map[string]*auth.UserData{
		"token-a": {UserId: "user-a", Username: "alice"},
		"token-b": {UserId: "user-b", Username: "bob"},
	}}
	authMiddleware := middleware.NewAuthMiddleware(verifier, nil)

	app := api.InitRouter(reviewHandler, ratingHandler, movieHandler, authMiddleware)
	return &testEnv{
		app:        app,
		reviewRepo: reviewRepo,
		ratingRepo: ratingRepo,
	}
}

func (e *testEnv) request(t *testing.T, method string, path string, token string, body interface{}) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(jsonData)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, target))
}

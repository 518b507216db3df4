package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"review_platform/configs"
	"review_platform/db/redis"
	"review_platform/model"
	errorHandler "review_platform/pkg/error"
	"time"
)

type IMovieService interface {
	SearchMovies(ctx context.Context, query string) ([]model.MovieSearchResult, error)
	GetMovieById(ctx context.Context, imdbId string) (*model.MovieDetail, error)
}

// MovieService proxies the external movie metadata provider (omdb).
// Read-only, nothing is ever written back to the provider. Responses are
// cached in redis for a few hours, metadata barely changes.
type MovieService struct {
	httpClient *http.Client
	cache      *redis.Client
}

const (
	movieDataCachePrefix   = "movie:"
	movieDataCacheDuration = 6 * time.Hour
)

func NewMovieService(cache *redis.Client) *MovieService {
	return &MovieService{
		httpClient: &http.Client{
			Timeout: 8 * time.Second,
		},
		cache: cache,
	}
}

//------------------------------------------
//------------------------------------------

func (m *MovieService) SearchMovies(ctx context.Context, query string) ([]model.MovieSearchResult, error) {
	cacheKey := movieDataCachePrefix + "search:" + query

	var cached model.MovieSearchRes
	if m.getMovieDataCache(ctx, cacheKey, &cached) {
		return cached.Search, nil
	}

	reqUrl := fmt.Sprintf("%s/?apikey=%s&s=%s&type=movie",
		configs.GetConfigs().OmdbApiUrl,
		configs.GetConfigs().OmdbApiKey,
		url.QueryEscape(query))

	var result model.MovieSearchRes
	err := m.fetchJson(ctx, reqUrl, &result)
	if err != nil {
		return nil, err
	}
	if result.Search == nil {
		result.Search = make([]model.MovieSearchResult, 0)
	}

	m.setMovieDataCache(ctx, cacheKey, &result)
	return result.Search, nil
}

func (m *MovieService) GetMovieById(ctx context.Context, imdbId string) (*model.MovieDetail, error) {
	cacheKey := movieDataCachePrefix + "id:" + imdbId

	var cached model.MovieDetail
	if m.getMovieDataCache(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	reqUrl := fmt.Sprintf("%s/?apikey=%s&i=%s&plot=full",
		configs.GetConfigs().OmdbApiUrl,
		configs.GetConfigs().OmdbApiKey,
		url.QueryEscape(imdbId))

	var result model.MovieDetail
	err := m.fetchJson(ctx, reqUrl, &result)
	if err != nil {
		return nil, err
	}
	if result.Response == "False" {
		return nil, ErrNotFound
	}

	m.setMovieDataCache(ctx, cacheKey, &result)
	return &result, nil
}

//------------------------------------------
//------------------------------------------

func (m *MovieService) fetchJson(ctx context.Context, reqUrl string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return err
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("metadata provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, result)
}

func (m *MovieService) getMovieDataCache(ctx context.Context, key string, result interface{}) bool {
	if m.cache == nil {
		return false
	}
	cached, err := m.cache.Get(ctx, key)
	if err != nil || cached == "" {
		return false
	}
	return json.Unmarshal([]byte(cached), result) == nil
}

func (m *MovieService) setMovieDataCache(ctx context.Context, key string, value interface{}) {
	if m.cache == nil {
		return
	}
	jsonData, err := json.Marshal(value)
	if err != nil {
		return
	}
	err = m.cache.Set(ctx, key, jsonData, movieDataCacheDuration)
	if err != nil {
		errorMessage := fmt.Sprintf("Redis Error on saving movie data: %v", err)
		errorHandler.SaveError(errorMessage, err)
	}
}

package redis

import (
	"context"
	"fmt"
	"review_platform/configs"
	"time"

	"github.com/redis/go-redis/v9"
)

type Client struct {
	redisClient *redis.Client
}

func NewClient() *Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.GetConfigs().RedisUrl,
		Password: configs.GetConfigs().RedisPassword,
		DB:       0,
	})
	ctx := context.Background()
	pong, err := redisClient.Ping(ctx).Result()
	fmt.Println("====> [[ReviewPlatform Redis Client:", pong, err, "]]")
	return &Client{redisClient: redisClient}
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	val, err := c.redisClient.Get(ctx, key).Result()
	return val, err
}

func (c *Client) Set(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	err := c.redisClient.Set(ctx, key, value, duration).Err()
	return err
}

package data

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

const streamInteractions = "cekfakta.interactions"

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// PublishInteraction pushes one interaction onto the analytics stream.
func PublishInteraction(ctx context.Context, rdb *redis.Client, payload map[string]interface{}) error {
	_, err := rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: streamInteractions,
		Values: payload,
	}).Result()
	return err
}

package infra

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghrc19/Hed-System/config"
)

// RedisClient backs the two pieces of session-scoped state: the auth session
// (logout revokes the token) and the per-user active selections used as
// defaults for new jobs.
type RedisClient struct {
	Client *redis.Client
}

const (
	sessionKeyPrefix   = "session:"
	selectionKeyPrefix = "selection:"
)

func InitRedisClient(env *config.EnvConfig) *RedisClient {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", env.Redis.Host, env.Redis.Port),
		Password: env.Redis.Password,
		DB:       env.Redis.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		return nil
	}

	return &RedisClient{Client: client}
}

func (r *RedisClient) SetSession(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return r.Client.Set(ctx, sessionKeyPrefix+sessionID, userID, ttl).Err()
}

func (r *RedisClient) GetSession(ctx context.Context, sessionID string) (string, error) {
	userID, err := r.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return userID, err
}

func (r *RedisClient) DeleteSession(ctx context.Context, sessionID string) error {
	return r.Client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// ActiveSelection holds the session-scoped defaults pre-filled on new job
// creation. Setting or clearing them never touches existing records.
type ActiveSelection struct {
	PeriodID string `json:"period_id"`
	Category string `json:"category"`
}

func (r *RedisClient) SetActiveSelection(ctx context.Context, userID string, sel ActiveSelection) error {
	key := selectionKeyPrefix + userID
	return r.Client.HSet(ctx, key, "period_id", sel.PeriodID, "category", sel.Category).Err()
}

func (r *RedisClient) GetActiveSelection(ctx context.Context, userID string) (ActiveSelection, error) {
	key := selectionKeyPrefix + userID
	vals, err := r.Client.HGetAll(ctx, key).Result()
	if err != nil {
		return ActiveSelection{}, err
	}
	return ActiveSelection{
		PeriodID: vals["period_id"],
		Category: vals["category"],
	}, nil
}

func (r *RedisClient) ClearActiveSelection(ctx context.Context, userID string) error {
	return r.Client.Del(ctx, selectionKeyPrefix+userID).Err()
}

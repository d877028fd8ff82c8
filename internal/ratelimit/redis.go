package ratelimit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	redisWindowKey = "botgate:rate_window"
	redisLockKey   = "botgate:rate_window:lock"
	redisLockTTL   = 5 * time.Second
)

// RedisStore keeps the window in Redis for deployments that run more
// than one gatekeeper process against one window.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisStore{
		client: redis.NewClient(opts),
		ctx:    context.Background(),
	}, nil
}

func (s *RedisStore) LoadWindow() ([]int64, error) {
	data, err := s.client.Get(s.ctx, redisWindowKey).Bytes()
	if err != nil {
		// Missing key and transport errors both degrade to an
		// empty window; the limiter never fails the pipeline.
		return nil, nil
	}
	var window []int64
	if err := json.Unmarshal(data, &window); err != nil {
		return nil, nil
	}
	return window, nil
}

func (s *RedisStore) SaveWindow(window []int64) error {
	if window == nil {
		window = []int64{}
	}
	data, err := json.Marshal(window)
	if err != nil {
		return err
	}
	return s.client.Set(s.ctx, redisWindowKey, data, 0).Err()
}

// WithLock holds a TTL lock around the cycle so concurrent processes
// cannot interleave their read-modify-write.
func (s *RedisStore) WithLock(fn func() error) error {
	deadline := time.Now().Add(redisLockTTL)
	for {
		ok, err := s.client.SetNX(s.ctx, redisLockKey, 1, redisLockTTL).Result()
		if err != nil {
			// Redis unavailable: run unlocked rather than block
			// request handling.
			return fn()
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return fn()
		}
		time.Sleep(10 * time.Millisecond)
	}
	defer s.client.Del(s.ctx, redisLockKey)
	return fn()
}

package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"jadwal-guru/pkg/redis"
)

const redisKeyPrefix = "session:"

// RedisStorage Storage in Redis under one device id; entries expire after ttl
type RedisStorage struct {
	ctx    context.Context
	client *redis.Client
	device string
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisStorage binds the entries of device to ctx
func NewRedisStorage(ctx context.Context, client *redis.Client, device string, ttl time.Duration, logger *zap.Logger) *RedisStorage {
	return &RedisStorage{ctx: ctx, client: client, device: device, ttl: ttl, logger: logger}
}

func (s *RedisStorage) key(k string) string {
	return redisKeyPrefix + s.device + ":" + k
}

// Get treats a Redis failure as a missing entry
func (s *RedisStorage) Get(key string) (string, bool) {
	v, ok, err := s.client.Get(s.ctx, s.key(key))
	if err != nil {
		s.logger.Warn("redis session read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return v, ok
}

func (s *RedisStorage) Set(key, value string) error {
	return s.client.Set(s.ctx, s.key(key), value, s.ttl)
}

func (s *RedisStorage) Remove(key string) error {
	return s.client.Del(s.ctx, s.key(key))
}

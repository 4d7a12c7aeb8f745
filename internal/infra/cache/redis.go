// Package cache содержит key-value хранилище поверх Redis
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var (
	// ErrKeyNotFound ключ отсутствует или истек
	ErrKeyNotFound = errors.New("cache: key not found")

	// ErrStore ошибка обращения к Redis
	ErrStore = errors.New("cache: store error")
)

// RedisStore KV хранилище на go-redis
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore создает хранилище. Все ключи получают префикс prefix
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

// NewClient создает клиента Redis и проверяет соединение
func NewClient(ctx context.Context, addr, password string, db int, dialTimeout time.Duration) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: dialTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping %s: %v", ErrStore, addr, err)
	}

	return client, nil
}

// Get возвращает значение ключа или ErrKeyNotFound
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("%w: Get - %s: %v", ErrStore, key, err)
	}
	return val, nil
}

// Set записывает значение. ttl == 0 - без срока хранения
func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - %s: %v", ErrStore, key, err)
	}
	return nil
}

// Delete удаляет ключ. Отсутствие ключа не ошибка
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("%w: Delete - %s: %v", ErrStore, key, err)
	}
	return nil
}

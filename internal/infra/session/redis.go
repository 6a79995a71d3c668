package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/geekpf/agenda2/internal/domain"
)

const keyPrefix = "agenda2:booking-session:"

// RedisStore хранилище сессий бронирования в Redis.
// Сессии хранятся как JSON с TTL: брошенная сессия истекает сама
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает хранилище сессий поверх Redis клиента
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Save сохраняет сессию и продлевает её TTL
func (s *RedisStore) Save(ctx context.Context, sess *domain.BookingSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := s.client.Set(ctx, keyPrefix+sess.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrStore, err)
	}

	return nil
}

// Get возвращает сессию по ID
func (s *RedisStore) Get(ctx context.Context, id string) (*domain.BookingSession, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get: %v", ErrStore, err)
	}

	var sess domain.BookingSession
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &sess, nil
}

// Delete удаляет сессию. Отсутствие сессии не считается ошибкой
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrStore, err)
	}
	return nil
}

// Package redisstore caches the rendered session list. The cache is
// optional: a nil *Store disables it without any caller-side checks.
package redisstore

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionListKey = "chatbot:sessions"

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr, password string, db int, ttl time.Duration) *Store {
	if addr == "" || ttl <= 0 {
		return nil
	}
	return &Store{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

func (s *Store) GetSessionList(ctx context.Context) ([]byte, bool) {
	if s == nil {
		return nil, false
	}
	b, err := s.rdb.Get(ctx, sessionListKey).Bytes()
	if err != nil {
		// redis.Nil and transport errors alike mean a miss
		return nil, false
	}
	return b, true
}

func (s *Store) SetSessionList(ctx context.Context, b []byte) {
	if s == nil {
		return
	}
	_ = s.rdb.Set(ctx, sessionListKey, b, s.ttl).Err()
}

func (s *Store) InvalidateSessionList(ctx context.Context) {
	if s == nil {
		return
	}
	_ = s.rdb.Del(ctx, sessionListKey).Err()
}

func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.rdb.Close()
}

package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/VidsSkids/epitrello-backend/internal/platform/envutil"
	"github.com/VidsSkids/epitrello-backend/internal/platform/logger"
)

// TokenStore holds refresh tokens with their TTL. Expiry is enforced by the
// key TTL, so a restart never resurrects a logged-out session.
type TokenStore interface {
	Put(ctx context.Context, refreshToken, userID string, ttl time.Duration) error
	Resolve(ctx context.Context, refreshToken string) (string, error)
	Revoke(ctx context.Context, refreshToken string) error
	Close() error
}

type tokenStore struct {
	log *logger.Logger
	rdb *goredis.Client
}

// ErrTokenUnknown is returned when a refresh token is absent or expired.
var ErrTokenUnknown = fmt.Errorf("refresh token unknown or expired")

func NewTokenStore(log *logger.Logger) (TokenStore, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := envutil.Str("REDIS_ADDR", "localhost:6379")

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &tokenStore{
		log: log.With("service", "RedisTokenStore"),
		rdb: rdb,
	}, nil
}

func tokenKey(refreshToken string) string {
	return "refresh:" + strings.TrimSpace(refreshToken)
}

func (s *tokenStore) Put(ctx context.Context, refreshToken, userID string, ttl time.Duration) error {
	if s == nil || s.rdb == nil {
		return fmt.Errorf("token store not initialized")
	}
	if strings.TrimSpace(refreshToken) == "" || strings.TrimSpace(userID) == "" {
		return fmt.Errorf("refresh token and user id required")
	}
	return s.rdb.Set(ctx, tokenKey(refreshToken), userID, ttl).Err()
}

func (s *tokenStore) Resolve(ctx context.Context, refreshToken string) (string, error) {
	if s == nil || s.rdb == nil {
		return "", fmt.Errorf("token store not initialized")
	}
	val, err := s.rdb.Get(ctx, tokenKey(refreshToken)).Result()
	if err == goredis.Nil {
		return "", ErrTokenUnknown
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *tokenStore) Revoke(ctx context.Context, refreshToken string) error {
	if s == nil || s.rdb == nil {
		return fmt.Errorf("token store not initialized")
	}
	return s.rdb.Del(ctx, tokenKey(refreshToken)).Err()
}

func (s *tokenStore) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}

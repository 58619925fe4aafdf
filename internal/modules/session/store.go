// README: Session store backed by Redis (opaque bearer tokens with TTL).
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:%s"

// ErrNotFound is returned when a token is unknown or expired.
var ErrNotFound = errors.New("session not found")

type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(redis *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: redis, ttl: ttl}
}

// Create mints a fresh token for the user and stores it with the configured TTL.
func (s *Store) Create(ctx context.Context, userID int64) (string, error) {
	token := newToken()
	if err := s.redis.Set(ctx, sessionKey(token), strconv.FormatInt(userID, 10), s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Lookup resolves a token to its user ID, returning ErrNotFound for unknown
// or expired tokens.
func (s *Store) Lookup(ctx context.Context, token string) (int64, error) {
	val, err := s.redis.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value %q: %w", val, err)
	}
	return id, nil
}

// Delete invalidates a token. Deleting an unknown token is not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.redis.Del(ctx, sessionKey(token)).Err()
}

func sessionKey(token string) string {
	return fmt.Sprintf(keyPrefix, token)
}

// newToken returns a 32-char hex token from crypto/rand.
func newToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

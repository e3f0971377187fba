package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bookday/models"

	"github.com/go-redis/redis/v8"
)

// ErrSessionNotFound is returned when a checkout session is unknown or its
// TTL has elapsed.
var ErrSessionNotFound = fmt.Errorf("checkout session not found or expired")

// SessionStore caches checkout sessions in Redis for the lifetime of the
// slot hold they belong to.
type SessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewSessionStore returns a SessionStore writing sessions with the given TTL.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{Client: client, TTL: ttl}
}

func sessionKey(id string) string {
	return "checkout:" + id
}

// Save writes the session under its id.
func (s *SessionStore) Save(ctx context.Context, session *models.CheckoutSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.SessionID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to cache checkout session: %w", err)
	}
	return nil
}

// Get retrieves a session by id.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch checkout session: %w", err)
	}
	var session models.CheckoutSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkout session: %w", err)
	}
	return &session, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete checkout session: %w", err)
	}
	return nil
}

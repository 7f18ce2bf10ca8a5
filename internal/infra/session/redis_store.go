package session

import (
	"context"
	"encoding/json"
	"time"

	"solarad/config"
	"solarad/internal/domain/entity"
	"solarad/internal/domain/service"
	"solarad/internal/errors"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "session:"

// redisStore implements service.SessionStore on Redis. Each session lives
// under its own key with a TTL; reading the session slides the TTL forward,
// so only inactive sessions expire.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore is the constructor for redisStore.
func NewRedisStore(client *redis.Client, cfg *config.Config) service.SessionStore {
	return &redisStore{
		client: client,
		ttl:    cfg.Session.TTL,
	}
}

// Create opens a new session for the identity and returns its opaque id.
func (s *redisStore) Create(ctx context.Context, identity entity.Identity) (string, error) {
	id := uuid.NewString()

	payload, err := json.Marshal(identity)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal session identity")
	}

	if err := s.client.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return "", errors.Wrap(err, "failed to store session")
	}

	return id, nil
}

// Get resolves a session id back to the stored identity and refreshes its TTL.
func (s *redisStore) Get(ctx context.Context, id string) (*entity.Identity, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	var identity entity.Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session identity")
	}

	// Slide the expiry window. A failed refresh is not fatal; the session
	// just expires on its previous schedule.
	s.client.Expire(ctx, keyPrefix+id, s.ttl)

	return &identity, nil
}

// Destroy removes a session. Destroying an unknown id is a no-op.
func (s *redisStore) Destroy(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return errors.Wrap(err, "failed to destroy session")
	}

	return nil
}

package cache

import (
	"context"
	"encoding/json"
	"time"

	"localdeal/config"
	"localdeal/internal/domain/entity"
	"localdeal/internal/domain/service"
	"localdeal/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	profileKeyPrefix = "user_"
	pendingKeyPrefix = "pending_user_"
)

type profileCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewProfileCache creates a ProfileCache storing JSON encoded profiles under user_<id>.
// Unsaved edits live under pending_user_<id> with the same TTL.
func NewProfileCache(client *redis.Client, cfg *config.Config) service.ProfileCache {
	var ttl time.Duration
	if cfg.Redis != nil {
		ttl = cfg.Redis.ProfileTTL
	}

	return newProfileCache(client, ttl)
}

func newProfileCache(client redis.Cmdable, ttl time.Duration) *profileCache {
	return &profileCache{client: client, ttl: ttl}
}

func profileKey(userID uuid.UUID) string {
	return profileKeyPrefix + userID.String()
}

func pendingKey(userID uuid.UUID) string {
	return pendingKeyPrefix + userID.String()
}

func (c *profileCache) Get(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return c.read(ctx, profileKey(userID))
}

func (c *profileCache) GetPending(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return c.read(ctx, pendingKey(userID))
}

func (c *profileCache) read(ctx context.Context, key string) (*entity.User, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ProfileCacheLookups.WithLabelValues(metrics.ResultMiss).Inc()

		return nil, service.ErrProfileCacheMiss
	}
	if err != nil {
		metrics.ProfileCacheLookups.WithLabelValues(metrics.ResultError).Inc()

		return nil, errors.Wrap(err, "failed to read cached profile")
	}

	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		metrics.ProfileCacheLookups.WithLabelValues(metrics.ResultError).Inc()

		return nil, errors.Wrap(err, "failed to decode cached profile")
	}

	metrics.ProfileCacheLookups.WithLabelValues(metrics.ResultHit).Inc()

	return &user, nil
}

func encodeProfile(user *entity.User) ([]byte, error) {
	if user == nil || user.ID == uuid.Nil {
		return nil, errors.New("cannot cache a profile without id")
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode profile")
	}

	return raw, nil
}

func (c *profileCache) Set(ctx context.Context, user *entity.User) error {
	raw, err := encodeProfile(user)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, profileKey(user.ID), raw, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to cache profile")
	}

	return nil
}

// SetPending writes both keys in one MULTI so readers never see the edit half recorded.
func (c *profileCache) SetPending(ctx context.Context, user *entity.User) error {
	raw, err := encodeProfile(user)
	if err != nil {
		return err
	}

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, profileKey(user.ID), raw, c.ttl)
		pipe.Set(ctx, pendingKey(user.ID), raw, c.ttl)

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to cache pending profile")
	}

	return nil
}

func (c *profileCache) ClearPending(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, pendingKey(userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to clear pending profile")
	}

	return nil
}

func (c *profileCache) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, profileKey(userID), pendingKey(userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cached profile")
	}

	return nil
}

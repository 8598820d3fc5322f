package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"autoconnect/internal/domain/entity"
	"autoconnect/internal/domain/service"
	"autoconnect/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	vehicleKeyPrefix = "directory:vehicle:"
	userKeyPrefix    = "directory:user:"
)

// directoryCache is a read-through cache in front of a DirectoryService.
// Redis failures fall back to the wrapped service. Single lookups on a context
// marked with service.WithFreshRead skip the cached value and refresh it.
type directoryCache struct {
	client redis.UniversalClient
	next   service.DirectoryService
	ttl    time.Duration
	logger *slog.Logger
}

// NewDirectoryCache wraps next with a Redis cache whose entries expire after ttl.
func NewDirectoryCache(client redis.UniversalClient, next service.DirectoryService, ttl time.Duration, logger *slog.Logger) service.DirectoryService {
	return &directoryCache{
		client: client,
		next:   next,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *directoryCache) GetVehicleByID(ctx context.Context, id uuid.UUID) (*entity.VehicleSummary, error) {
	return getOne(ctx, c, vehicleKeyPrefix, id, c.next.GetVehicleByID)
}

func (c *directoryCache) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.UserSummary, error) {
	return getOne(ctx, c, userKeyPrefix, id, c.next.GetUserByID)
}

func (c *directoryCache) GetVehiclesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.VehicleSummary, error) {
	return getMany(ctx, c, vehicleKeyPrefix, ids, c.next.GetVehiclesByIDs)
}

func (c *directoryCache) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.UserSummary, error) {
	return getMany(ctx, c, userKeyPrefix, ids, c.next.GetUsersByIDs)
}

func getOne[T any](ctx context.Context, c *directoryCache, prefix string, id uuid.UUID, load func(context.Context, uuid.UUID) (*T, error)) (*T, error) {
	key := prefix + id.String()

	if service.IsFreshRead(ctx) {
		return loadAndStore(ctx, c, key, id, load)
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var v T
		if jsonErr := json.Unmarshal(raw, &v); jsonErr == nil {
			return &v, nil
		}
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("Directory cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	return loadAndStore(ctx, c, key, id, load)
}

func loadAndStore[T any](ctx context.Context, c *directoryCache, key string, id uuid.UUID, load func(context.Context, uuid.UUID) (*T, error)) (*T, error) {
	v, err := load(ctx, id)
	if err != nil {
		return nil, err
	}
	c.store(ctx, map[string]any{key: v})

	return v, nil
}

func getMany[T any](ctx context.Context, c *directoryCache, prefix string, ids []uuid.UUID, load func(context.Context, []uuid.UUID) (map[uuid.UUID]*T, error)) (map[uuid.UUID]*T, error) {
	out := make(map[uuid.UUID]*T, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = prefix + id.String()
	}

	missing := ids
	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.logger.Warn("Directory cache batch read failed", slog.Int("keys", len(keys)), slog.Any("error", err))
	} else {
		missing = make([]uuid.UUID, 0, len(ids))
		for i, raw := range values {
			s, ok := raw.(string)
			if !ok {
				missing = append(missing, ids[i])

				continue
			}
			var v T
			if err := json.Unmarshal([]byte(s), &v); err != nil {
				missing = append(missing, ids[i])

				continue
			}
			out[ids[i]] = &v
		}
	}

	if len(missing) == 0 {
		return out, nil
	}

	loaded, err := load(ctx, missing)
	if err != nil {
		return nil, err
	}

	fresh := make(map[string]any, len(loaded))
	for id, v := range loaded {
		out[id] = v
		fresh[prefix+id.String()] = v
	}
	c.store(ctx, fresh)

	return out, nil
}

func (c *directoryCache) store(ctx context.Context, entries map[string]any) {
	if len(entries) == 0 {
		return
	}

	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, v := range entries {
			raw, err := json.Marshal(v)
			if err != nil {
				continue
			}
			pipe.Set(ctx, key, raw, c.ttl)
		}

		return nil
	})
	if err != nil {
		c.logger.Warn("Directory cache write failed", slog.Int("keys", len(entries)), slog.Any("error", err))
	}
}

package rediscache

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/sheet"
	"github.com/absedu/campus/core/user"
)

// Cache shares the identity table between API instances. Entries never expire;
// use Invalidate to force a refetch.
type Cache struct {
	rdb *redis.Client
	key string
}

var _ user.TableCache = (*Cache)(nil) // interface compliance check

func New(rdb *redis.Client, key string) *Cache {
	return &Cache{rdb: rdb, key: key}
}

// Open connects to the configured Redis server.
func Open(ctx context.Context, conf core.CacheConfig) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.RedisAddr,
		Password: conf.RedisPassword,
		DB:       conf.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, "pinging redis")
	}
	return New(rdb, conf.Key), nil
}

func (c *Cache) Get(ctx context.Context) (sheet.Grid, bool, error) {
	data, err := c.rdb.Get(ctx, c.key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get")
	}
	var grid sheet.Grid
	if err = json.Unmarshal(data, &grid); err != nil {
		return nil, false, errors.Wrap(err, "decoding cached grid")
	}
	return grid, true, nil
}

func (c *Cache) Set(ctx context.Context, grid sheet.Grid) error {
	data, err := json.Marshal(grid)
	if err != nil {
		return errors.Wrap(err, "encoding grid")
	}
	return errors.Wrap(c.rdb.Set(ctx, c.key, data, 0).Err(), "redis set")
}

func (c *Cache) Invalidate(ctx context.Context) error {
	return errors.Wrap(c.rdb.Del(ctx, c.key).Err(), "redis del")
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}

package redis

import (
	"context"
	"errors"

	kcache "github.com/Nucmaan/Task-Manager-Backend/pkg/cache"
	xe "github.com/Nucmaan/Task-Manager-Backend/pkg/errors"
	"github.com/redis/go-redis/v9"
)

type client struct {
	base *redis.Client
}

var _ kcache.Client = &client{}

func New(addr string) kcache.Client {
	return &client{
		base: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Wrap an already-built redis client.
func Wrap(base *redis.Client) kcache.Client {
	return &client{base: base}
}

func (c *client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.base.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, xe.Wrap(err)
	}
	return val, true, nil
}

func (c *client) Set(ctx context.Context, key string, val []byte) error {
	// expiration 0 = no expiry. Invalidation-on-write is the only bound.
	if err := c.base.Set(ctx, key, val, 0).Err(); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

func (c *client) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.base.Del(ctx, keys...).Err(); err != nil {
		return xe.Wrap(err)
	}
	return nil
}

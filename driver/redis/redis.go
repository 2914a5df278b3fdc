// Package redis stores driver entries as plain redis strings.
package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/readthrough/driver"
)

var ErrNilClient = errors.New("redis driver: nil client")

type Redis struct {
	rdb         goredis.UniversalClient
	prefix      string
	closeClient bool
}

var _ driver.Driver = (*Redis)(nil)

type Config struct {
	Client goredis.UniversalClient
	// Prefix is prepended to every key, e.g. "app:prod:". Use it when the
	// redis database is shared with other applications.
	Prefix      string
	CloseClient bool // set true only if this driver exclusively owns the client
}

func New(cfg Config) (*Redis, error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	return &Redis{rdb: cfg.Client, prefix: cfg.Prefix, closeClient: cfg.CloseClient}, nil
}

func (d *Redis) GetItem(ctx context.Context, key string) (string, bool, error) {
	s, err := d.rdb.Get(ctx, d.prefix+key).Result()
	switch {
	case errors.Is(err, goredis.Nil):
		return "", false, nil
	case err != nil:
		return "", false, err
	}
	return s, true, nil
}

// SetItem writes without expiry (KEEPTTL is not used, so a TTL set on the
// key by someone else is cleared); entries live until redis evicts them.
func (d *Redis) SetItem(ctx context.Context, key, value string) error {
	return d.rdb.Set(ctx, d.prefix+key, value, 0).Err()
}

// Close releases the underlying redis client only when this driver owns it.
// Safe to call multiple times.
func (d *Redis) Close(context.Context) error {
	if !d.closeClient {
		return nil
	}
	if err := d.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
		return err
	}
	return nil
}

package bigcache

import (
	"context"
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/readthrough/driver"
)

// bigcache expires by comparing entry age with LifeWindow on every write,
// so "never" has to be spelled as a very long window.
const noExpiry = 100 * 365 * 24 * time.Hour

type Driver struct {
	c *bc.BigCache
}

var _ driver.Driver = (*Driver)(nil)

type Config struct {
	LifeWindow         time.Duration // 0 => entries never expire
	CleanWindow        time.Duration
	Shards             int
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New(ctx context.Context, cfg Config) (*Driver, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.LifeWindow <= 0 {
		conf.LifeWindow = noExpiry
		conf.CleanWindow = 0
	}
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.Shards > 0 {
		conf.Shards = cfg.Shards
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.New(ctx, conf)
	if err != nil {
		return nil, err
	}
	return &Driver{c: c}, nil
}

func (d *Driver) GetItem(_ context.Context, key string) (string, bool, error) {
	b, err := d.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

// SetItem stores value; expiry, if any, follows the global LifeWindow.
func (d *Driver) SetItem(_ context.Context, key, value string) error {
	return d.c.Set(key, []byte(value))
}

// Len reports the number of entries held by bigcache.
func (d *Driver) Len() int { return d.c.Len() }

func (d *Driver) Close(_ context.Context) error {
	return d.c.Close()
}

package ristretto

import (
	"context"
	"errors"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/readthrough/driver"
)

type Driver struct {
	c      *rc.Cache
	strict bool
	sized  bool
}

var _ driver.Driver = (*Driver)(nil)

type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
	// SizeCost charges len(value) per entry instead of 1.
	SizeCost bool
	// Strict reports admission refusals as driver.ErrRejected.
	// By default a refused write is dropped silently and the next read misses.
	Strict bool
}

func New(cfg Config) (*Driver, error) {
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, errors.New("ristretto: invalid config")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
		// costs are supplied by SetItem only
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Driver{c: c, strict: cfg.Strict, sized: cfg.SizeCost}, nil
}

func (d *Driver) GetItem(_ context.Context, key string) (string, bool, error) {
	v, ok := d.c.Get(key)
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		// drop unexpected entry shape
		d.c.Del(key)
		return "", false, nil
	}
	return s, true, nil
}

// SetItem waits for ristretto's write buffer so the value is visible to the
// next GetItem. Cost and admission checks run after Set has returned, so in
// strict mode the write is confirmed by reading it back.
func (d *Driver) SetItem(_ context.Context, key, value string) error {
	cost := int64(1)
	if d.sized {
		cost = int64(len(value))
	}
	ok := d.c.Set(key, value, cost)
	d.c.Wait()
	if !d.strict {
		return nil
	}
	if !ok {
		return driver.ErrRejected
	}
	if got, found := d.c.Get(key); !found || got != value {
		return driver.ErrRejected
	}
	return nil
}

func (d *Driver) Close(_ context.Context) error {
	d.c.Wait()
	d.c.Close()
	return nil
}

// Metrics exposes ristretto's counters; nil unless Config.Metrics is set.
func (d *Driver) Metrics() *rc.Metrics { return d.c.Metrics }

package readthrough

import (
	"context"

	"github.com/unkn0wn-root/readthrough/codec"
	"github.com/unkn0wn-root/readthrough/driver"
	"github.com/unkn0wn-root/readthrough/internal/util"
)

type resource[P, V any] struct {
	ns        string
	driver    driver.Driver
	key       KeyFunc[P]
	loader    LoaderFunc[P, V]
	codec     codec.Codec[V]
	cacheable func(V) bool
	log       Logger
	hooks     Hooks
	enabled   bool
}

func newResource[P, V any](d driver.Driver, opts Options[P, V]) (*resource[P, V], error) {
	if d == nil {
		return nil, ErrNilDriver
	}
	if opts.Key == nil {
		return nil, ErrNilKey
	}
	if opts.Loader == nil {
		return nil, ErrNilLoader
	}

	r := &resource[P, V]{
		ns:      opts.Namespace,
		driver:  d,
		key:     opts.Key,
		loader:  opts.Loader,
		enabled: !opts.Disabled,
	}

	// defaults
	r.codec = coalesce[codec.Codec[V]](opts.Codec, codec.JSON[V]{})
	r.log = coalesce[Logger](opts.Logger, NopLogger{})
	r.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	switch {
	case opts.Cacheable != nil:
		r.cacheable = opts.Cacheable
	case opts.SkipZero:
		r.cacheable = nonZero[V]
	default:
		r.cacheable = present[V]
	}
	return r, nil
}

func (r *resource[P, V]) Enabled() bool { return r.enabled }

func (r *resource[P, V]) Key(params P) string {
	return util.Namespaced(r.ns, r.key(params))
}

func (r *resource[P, V]) Get(ctx context.Context, params P) (V, error) {
	if !r.enabled {
		return r.loader(ctx, params)
	}

	var zero V
	k := r.Key(params)
	raw, ok, err := r.driver.GetItem(ctx, k)
	if err != nil {
		r.hooks.DriverError("get", k, err)
		return zero, err
	}
	if ok {
		v, err := r.codec.Decode([]byte(raw))
		if err != nil {
			r.hooks.DecodeError(k, err)
			r.log.Warn("stored entry failed to decode", Fields{"key": k, "err": err})
			return zero, &DecodeError{Key: k, Err: err}
		}
		r.hooks.Hit(k)
		return v, nil
	}

	r.hooks.Miss(k)
	v, err := r.loader(ctx, params)
	if err != nil {
		r.hooks.LoadError(k, err)
		return zero, err
	}
	if !r.cacheable(v) {
		r.hooks.WriteBackSkipped(k)
		r.log.Debug("loaded value not cached", Fields{"key": k})
		return v, nil
	}
	if err := r.write(ctx, k, v); err != nil {
		return zero, err
	}
	r.log.Debug("loaded value cached", Fields{"key": k})
	return v, nil
}

func (r *resource[P, V]) Set(ctx context.Context, params P, value V) error {
	if !r.enabled {
		return nil
	}
	return r.write(ctx, r.Key(params), value)
}

func (r *resource[P, V]) write(ctx context.Context, k string, v V) error {
	b, err := r.codec.Encode(v)
	if err != nil {
		return &EncodeError{Key: k, Err: err}
	}
	if err := r.driver.SetItem(ctx, k, string(b)); err != nil {
		r.hooks.DriverError("set", k, err)
		return err
	}
	return nil
}

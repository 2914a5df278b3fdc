// Package flight wraps a readthrough.Resource so that overlapping Get calls
// for the same key share a single underlying Get
// (via a singleflight group to prevent stampeding on a miss).
//
// The shared call runs with the context of the caller that started it.
// Set, Key and Enabled are passed through untouched.
package flight

import (
	"context"

	"tailscale.com/util/singleflight"

	"github.com/unkn0wn-root/readthrough"
)

type Resource[P, V any] struct {
	inner readthrough.Resource[P, V]
	sf    singleflight.Group[string, V]
}

var _ readthrough.Resource[struct{}, struct{}] = (*Resource[struct{}, struct{}])(nil)

func Wrap[P, V any](r readthrough.Resource[P, V]) *Resource[P, V] {
	return &Resource[P, V]{inner: r}
}

func (r *Resource[P, V]) Get(ctx context.Context, params P) (V, error) {
	v, err, _ := r.sf.Do(r.inner.Key(params), func() (V, error) {
		return r.inner.Get(ctx, params)
	})
	if err != nil {
		var z V
		return z, err
	}
	return v, nil
}

func (r *Resource[P, V]) Set(ctx context.Context, params P, value V) error {
	return r.inner.Set(ctx, params, value)
}

func (r *Resource[P, V]) Key(params P) string { return r.inner.Key(params) }

func (r *Resource[P, V]) Enabled() bool { return r.inner.Enabled() }

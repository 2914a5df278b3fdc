package readthrough

import (
	"context"

	"github.com/unkn0wn-root/readthrough/codec"
	"github.com/unkn0wn-root/readthrough/driver"
)

// KeyFunc derives the storage key for params. Must be pure and must not block.
type KeyFunc[P any] func(params P) string

// LoaderFunc fetches the authoritative value for params on a cache miss.
type LoaderFunc[P, V any] func(ctx context.Context, params P) (V, error)

// Resource is a read-through view over a driver for one kind of value.
// P is the caller's parameter type, V the value type.
type Resource[P, V any] interface {
	// Get returns the cached value for params or loads and caches it.
	// Loader and driver errors are returned as-is. A stored entry the codec
	// cannot decode yields *DecodeError, which unwraps to the codec's error.
	Get(ctx context.Context, params P) (V, error)
	// Set overwrites the cached value for params.
	Set(ctx context.Context, params P, value V) error
	// Key returns the driver key params map to (namespace included).
	Key(params P) string
	Enabled() bool
}

// Options configure a Resource. Key and Loader are required.
type Options[P, V any] struct {
	// Required
	Key    KeyFunc[P]
	Loader LoaderFunc[P, V]

	Codec     codec.Codec[V] // nil => codec.JSON[V]
	Namespace string         // "" => keys are used as returned by Key; otherwise "<ns>:<key>"
	Logger    Logger         // nil => NopLogger
	Hooks     Hooks          // nil => NopHooks

	// Cacheable decides whether a loaded value is written back.
	// nil => everything except nil pointers/maps/slices/interfaces/funcs/chans.
	Cacheable func(V) bool
	// SkipZero also skips write-back of zero values (0, "", false, empty struct).
	// Ignored when Cacheable is set.
	SkipZero bool

	Disabled bool // Get always loads, Set does nothing
}

// New builds a Resource over d. d must be ready to serve calls.
func New[P, V any](d driver.Driver, opts Options[P, V]) (Resource[P, V], error) {
	return newResource[P, V](d, opts)
}

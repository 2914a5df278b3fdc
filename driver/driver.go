// Package driver defines the storage contract used by readthrough.
//
// A Driver is a plain string-to-string store. Implementations MUST be
// transparent: GetItem must return exactly the string previously passed to
// SetItem for the same key (no added metadata, no re-encoding). Binary codecs
// store arbitrary bytes in that string, so backends must be byte-safe.
//
// Keys are owned by the resources writing them. When several resources share
// one driver, give each its own namespace.
package driver

import (
	"context"
	"errors"
)

// ErrRejected is returned by drivers that refuse a write under pressure
// when they were configured to report it.
var ErrRejected = errors.New("driver: write rejected")

// Driver is a minimal string store. Must be safe for concurrent use.
type Driver interface {
	// GetItem returns (value, true, nil) on hit and ("", false, nil) on miss.
	// An empty string stored under key is a hit.
	// If an IO/remote error happens, return ("", false, err).
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem associates value with key, replacing any previous value.
	// A failed SetItem must leave the previous value (or absence) intact.
	SetItem(ctx context.Context, key, value string) error
}

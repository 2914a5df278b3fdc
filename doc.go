// Package readthrough implements a generic read-through cache over a pluggable
// string store.
//
// Components:
//   - driver.Driver: string store with two operations, GetItem and SetItem
//     (in-memory, Redis, BigCache, Ristretto, files, or your own).
//   - codec.Codec[V]: (de)serializes V <-> stored string. JSON by default.
//   - Resource[P, V]: derives a key from parameters P, serves V from the
//     driver when present and otherwise calls the loader and writes the
//     result back.
//
// Usage:
//
//	users, _ := readthrough.New(drv, readthrough.Options[UserParams, User]{
//	    Namespace: "user",
//	    Key:       func(p UserParams) string { return strconv.Itoa(p.ID) },
//	    Loader:    loadUserFromDB,
//	})
//	u, err := users.Get(ctx, UserParams{ID: 1}) // driver key "user:1"
//
// A stored entry is trusted as-is: there is no TTL, no invalidation and no
// staleness check. Concurrent misses for one key each run the loader and the
// last write wins; wrap the resource with flight.Wrap to share in-flight loads.
package readthrough

package readthrough

import "github.com/unkn0wn-root/readthrough/internal/util"

// HashedKey builds a short fixed-length key from many parts, for key funcs
// whose parameters would otherwise produce long or unbounded keys.
func HashedKey(prefix string, parts ...string) string {
	return util.Hashed(prefix, parts)
}

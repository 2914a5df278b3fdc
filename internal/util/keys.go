package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Namespaced prefixes key with "<ns>:"; an empty ns leaves key unchanged.
func Namespaced(ns, key string) string {
	if ns == "" {
		return key
	}
	return ns + ":" + key
}

// Hashed returns prefix + ":" + the first 16 hex chars of sha256 over parts.
// Parts are length-prefixed so ("ab","c") and ("a","bc") differ.
func Hashed(prefix string, parts []string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(strconv.Itoa(len(p))))
		h.Write([]byte{':'})
		h.Write([]byte(p))
	}
	sum := h.Sum(nil)
	return prefix + ":" + hex.EncodeToString(sum[:8])
}

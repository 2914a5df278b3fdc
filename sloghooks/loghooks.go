// Package sloghooks implements readthrough.Hooks on top of log/slog, with
// per-event sampling and key redaction.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/readthrough"
)

type Options struct {
	// Sampling to avoid floods on the hot events; 0/1 = log all.
	HitEvery  uint64
	MissEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	hitCtr  atomic.Uint64
	missCtr atomic.Uint64
}

var _ readthrough.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Hit(key string) {
	if h.l == nil || !sample(h.opts.HitEvery, &h.hitCtr) {
		return
	}
	h.l.Debug("readthrough.hit", "key", h.redact(key))
}

func (h *Hooks) Miss(key string) {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("readthrough.miss", "key", h.redact(key))
}

func (h *Hooks) WriteBackSkipped(key string) {
	if h.l == nil {
		return
	}
	h.l.Info("readthrough.write_back_skipped", "key", h.redact(key))
}

func (h *Hooks) LoadError(key string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("readthrough.load_error",
		"key", h.redact(key),
		"err", err)
}

func (h *Hooks) DecodeError(key string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("readthrough.decode_error",
		"key", h.redact(key),
		"err", err)
}

func (h *Hooks) DriverError(op, key string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("readthrough.driver_error",
		"op", op,
		"key", h.redact(key),
		"err", err)
}

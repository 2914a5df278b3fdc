// Package file stores driver entries as files under a root directory.
//
// Each key maps to <root>/<sha256(key)[:2]>/<sha256(key)>. Writes go through
// renameio (temp file, fsync, rename), so a concurrent reader or a restart
// after a crash sees either the old value or the new one.
// renameio does not support Windows, and neither does this package.
package file

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"

	"github.com/unkn0wn-root/readthrough/driver"
)

var ErrNoRoot = errors.New("file driver: root directory is required")

type Driver struct {
	root string
	perm fs.FileMode
}

var _ driver.Driver = (*Driver)(nil)

type Config struct {
	Root string
	Perm fs.FileMode // 0 => 0o600
}

func New(cfg Config) (*Driver, error) {
	if cfg.Root == "" {
		return nil, ErrNoRoot
	}
	if err := os.MkdirAll(cfg.Root, 0o755); err != nil {
		return nil, fmt.Errorf("file driver: create root: %w", err)
	}
	perm := cfg.Perm
	if perm == 0 {
		perm = 0o600
	}
	return &Driver{root: cfg.Root, perm: perm}, nil
}

func (d *Driver) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	name := hex.EncodeToString(sum[:])
	return filepath.Join(d.root, name[:2], name)
}

func (d *Driver) GetItem(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	b, err := os.ReadFile(d.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

func (d *Driver) SetItem(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p := d.path(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	return renameio.WriteFile(p, []byte(value), d.perm, renameio.IgnoreUmask())
}

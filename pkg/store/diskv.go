package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

const tempDirName = ".tmp"

// diskvBackend keeps one file per key directly under the base path.
type diskvBackend struct {
	d        *diskv.Diskv
	basePath string
}

// NewDiskv returns a Backend writing one file per key under basePath.
func NewDiskv(basePath string) (Backend, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &diskvBackend{
		d: diskv.New(diskv.Options{
			BasePath: basePath,
			// Writes land in TempDir and are renamed into place, so a
			// watcher in another process never reads a half written file.
			TempDir: filepath.Join(basePath, tempDirName),
			// Another process may rewrite a key at any time, reads go to
			// disk.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
	}, nil
}

func (b *diskvBackend) Read(key string) ([]byte, error) {
	rc, err := b.d.ReadStream(key, true)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	defer rc.Close()
	val, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

func (b *diskvBackend) Write(key string, value []byte) error {
	if err := b.d.Write(key, value); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (b *diskvBackend) Dir() string {
	return b.basePath
}

func (b *diskvBackend) Close() error {
	return nil
}

package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Dir stores files in a local directory.
type Dir struct {
	path string
}

// NewDir creates the directory, including parents, and returns a store for it.
func NewDir(path string) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create upload directory %q", path)
	}

	return &Dir{path: path}, nil
}

// Path returns the directory files are written to.
func (d *Dir) Path() string { return d.path }

// Put writes data to <dir>/<name> and returns that path.
func (d *Dir) Put(ctx context.Context, name string, data []byte) (string, error) {
	if err := CheckName(name); err != nil {
		return "", err
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	path := filepath.Join(d.path, name)
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec
		return "", errors.Wrapf(err, "write %q", path)
	}

	return path, nil
}

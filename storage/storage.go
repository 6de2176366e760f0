// Package storage persists uploaded files.
package storage

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// ErrUnsafeName is returned for file names that could escape the destination.
var ErrUnsafeName = errors.New("unsafe file name")

// Store writes named blobs to durable storage.
type Store interface {
	// Put stores data under name and returns where it was stored. A later Put with the same
	// name overwrites the earlier one.
	Put(ctx context.Context, name string, data []byte) (string, error)
}

// CheckName rejects names that are empty, consist only of dots or contain a path separator.
func CheckName(name string) error {
	if strings.Trim(name, ".") == "" || strings.ContainsAny(name, `/\`) {
		return errors.Wrapf(ErrUnsafeName, "%q", name)
	}
	return nil
}

type unique struct{ Store }

// Unique decorates a store so every name gets a random prefix. Files with the same name no longer
// overwrite each other.
func Unique(s Store) Store {
	return unique{s}
}

func (u unique) Put(ctx context.Context, name string, data []byte) (string, error) {
	return u.Store.Put(ctx, uuid.NewString()+"-"+name, data)
}

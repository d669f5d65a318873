// Package storage defines the blob-store interface the upload path writes to.
// The MinIO implementation works with any S3-compatible provider; swap
// implementations by changing the concrete type injected at startup.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrKeyExists is returned by Put when an object already occupies the key.
// Keys are derived from fresh UUIDs, so hitting this indicates a bug upstream.
var ErrKeyExists = errors.New("storage: object already exists under key")

// Storage is the interface for writing and addressing objects.
type Storage interface {
	// Put streams data to the store under the given key without overwriting:
	// if the key is already occupied, Put fails with ErrKeyExists.
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// Delete removes an object identified by key.
	Delete(ctx context.Context, key string) error
	// PublicURL constructs the browser-accessible URL for a given key. It is a
	// pure derivation from the configured public base, never a network call.
	PublicURL(key string) string
}

// Package storage defines the blob-store contract used by content
// mutations and provides a local-disk implementation.
package storage

import (
	"context"
	"io"
)

// Store is the interface to external blob storage. References are opaque
// identifiers; resolving one to a fetchable URL is the only way to learn
// whether it still names a stored file.
type Store interface {
	// GenerateUploadURL mints a URL the caller uploads a file to. The
	// upload response carries the opaque reference for the stored file.
	GenerateUploadURL(ctx context.Context) (string, error)

	// Put stores the file bytes under the given reference.
	Put(ctx context.Context, ref string, r io.Reader) error

	// URL resolves a reference to a fetchable URL. ok is false when the
	// reference does not name a stored file.
	URL(ctx context.Context, ref string) (url string, ok bool)

	// Open returns a reader over the stored file.
	Open(ctx context.Context, ref string) (io.ReadCloser, error)

	// Delete releases the file named by the reference.
	Delete(ctx context.Context, ref string) error

	// List returns the references of all stored files.
	List(ctx context.Context) ([]string, error)
}

// Package storage persists uploaded file bytes. The default backend is a
// local directory tree partitioned by user and upload date; an S3-compatible
// backend using the same key layout can be selected through configuration.
package storage

import (
	"context"
	"io"
)

// Storage stores, streams and removes uploaded file content. Save returns
// the relative storage path ("files/<userId>/<YYYY-MM-DD>/<name>") that is
// recorded in the file index and later passed back to Open and Remove.
type Storage interface {
	Save(ctx context.Context, userID, name string, r io.Reader) (string, error)
	Open(ctx context.Context, relPath string) (io.ReadCloser, error)
	Remove(ctx context.Context, relPath string) error
}

package storage

import "context"

// ObjectStorage keeps opaque blobs under string keys and serves them from a
// public URL.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (publicURL string, err error)
	Delete(ctx context.Context, key string) error
}

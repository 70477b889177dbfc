package repository

import "context"

// BlobStore is a durable key-value store of opaque byte blobs.
// Get reports found=false for missing keys instead of returning an error.
type BlobStore interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	HealthCheck(ctx context.Context) error
	Close() error
}

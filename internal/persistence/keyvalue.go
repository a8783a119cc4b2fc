package persistence

import "context"

// KeyValue is the storage medium for application state: opaque string blobs
// under fixed logical keys.
type KeyValue interface {
	// Get returns the blob stored under key. ok is false when the key has
	// never been written.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores the blob under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Ping verifies backend connectivity.
	Ping(ctx context.Context) error
	// Close releases backend resources.
	Close()
}

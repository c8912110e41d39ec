package ports

import "context"

// KeyValueStore abstracts the persisted key-value storage the session lives
// in. Implementations: in-memory map, JSON file on disk, Redis.
//
// Get returns ("", false, nil) for a missing key; errors are reserved for
// backend failures (I/O, connectivity).
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

package ports

import "context"

// CollectionCache holds the raw JSON payload of fetched collections, one
// entry per cache key. Invalidation marks a key stale so the next read
// refetches; there are no partial updates.
type CollectionCache interface {
	// Get returns the cached payload and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
	Invalidate(ctx context.Context, key string) error
	// Clear drops every entry. Called on logout.
	Clear(ctx context.Context) error
}

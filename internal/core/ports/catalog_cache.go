package ports

import "context"

// CatalogCache is a read-through cache for hot catalog listings. Lookups are
// best effort: a miss or a cache error both fall back to the repository.
type CatalogCache interface {
	// Get unmarshals the cached value into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}

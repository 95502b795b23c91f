// Package cache provides pluggable key-value backends used to memoize
// schedule generation. Caching is strictly an optimization; callers must
// produce correct results when a backend misses or fails.
package cache

// Cache is a minimal string key-value store.
type Cache interface {
	// Get returns the cached value and whether the key was present.
	Get(key string) (string, bool)
	// Set stores a value under the key, overwriting any previous value.
	Set(key, value string) error
}

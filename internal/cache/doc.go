// Package cache provides a small generic LRU cache for memoizing pure
// parse results such as colour strings.
//
//	c := cache.New[string, int](100)
//	v := c.GetOrCreate("key", func() int { return 42 })
//
// # Thread Safety
//
// Cache is safe for concurrent use. The create function passed to
// GetOrCreate runs under the cache lock and must not call back into the
// same cache.
package cache

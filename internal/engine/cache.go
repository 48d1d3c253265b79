package engine

import "sync"

// MemoryCache is an in-process Cache with no eviction. Shen sha maps are
// small and the key space (distinct four-pillar combinations) is bounded, so
// unbounded growth is acceptable for interactive use.
type MemoryCache struct {
	mu sync.RWMutex
	m  map[string]ShenShaMap
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{m: map[string]ShenShaMap{}}
}

func (c *MemoryCache) Get(key string) (ShenShaMap, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.m[key]
	return m, ok
}

func (c *MemoryCache) Put(key string, m ShenShaMap) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = m.clone()
}

// Len reports the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

package virtual

// Cache maps item IDs to the geometry they had when they were last unmounted.
//
// Entries are written by Apply only and are never removed individually: once
// an item is mounted again its entry is stale but harmless, because live
// geometry takes precedence, and it is overwritten on the next unmount.
type Cache struct {
	sizes map[string]Size
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{sizes: make(map[string]Size)}
}

// Get returns the cached geometry for id.
func (c *Cache) Get(id string) (Size, bool) {
	if c == nil {
		return Size{}, false
	}
	size, ok := c.sizes[id]
	return size, ok
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.sizes)
}

// Reset drops all entries. Rendering components call it when cached sizes can
// no longer be trusted, e.g. after the viewport width changed.
func (c *Cache) Reset() {
	if c == nil {
		return
	}
	clear(c.sizes)
}

func (c *Cache) put(id string, size Size) {
	if c == nil {
		return
	}
	if c.sizes == nil {
		c.sizes = make(map[string]Size)
	}
	c.sizes[id] = size
}

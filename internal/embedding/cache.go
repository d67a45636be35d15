package embedding

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 4096

// Cache stores text→vector results keyed by the SHA-256 of the exact text.
// Lookups never match anything but the identical text. Entries are idempotent,
// so concurrent callers racing on the same key always insert the same value.
type Cache struct {
	entries *lru.Cache[string, []float32]
}

// NewCache creates a cache holding at most size vectors, falling back to a
// sane default when size is not positive.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = defaultCacheSize
	}
	entries, err := lru.New[string, []float32](size)
	if err != nil {
		// lru.New only fails on a non-positive size.
		entries, _ = lru.New[string, []float32](defaultCacheSize)
	}
	return &Cache{entries: entries}
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Get returns a copy of the cached vector for text, if present. A copy is
// returned so callers cannot mutate the cached value.
func (c *Cache) Get(text string) ([]float32, bool) {
	vector, ok := c.entries.Get(cacheKey(text))
	if !ok {
		return nil, false
	}
	out := make([]float32, len(vector))
	copy(out, vector)
	return out, true
}

// Put stores a copy of the vector under the exact text.
func (c *Cache) Put(text string, vector []float32) {
	if vector == nil {
		return
	}
	stored := make([]float32, len(vector))
	copy(stored, vector)
	c.entries.Add(cacheKey(text), stored)
}

// Clear drops every cached vector.
func (c *Cache) Clear() {
	c.entries.Purge()
}

// Len reports the number of cached vectors.
func (c *Cache) Len() int {
	return c.entries.Len()
}

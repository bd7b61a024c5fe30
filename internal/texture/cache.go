package texture

import (
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"go.uber.org/zap"

	"mc-skin-renderer/internal/logger"
)

// ErrNotIndexed is returned by Cache.Load for names missing from the index.
var ErrNotIndexed = errors.New("texture not indexed")

// Resolver resolves a texture name to a decoded image. It returns nil when the
// texture is unknown or cannot be decoded.
type Resolver interface {
	Resolve(texName string) *image.NRGBA
}

// Loader is a Resolver that can also report why a texture is unavailable.
type Loader interface {
	Resolver
	Load(texName string) (*image.NRGBA, error)
}

// Cache is a concurrency-safe texture cache. Entries older than the TTL are
// reloaded on the next lookup; a zero TTL keeps entries until invalidated.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
	ttl   time.Duration
	now   func() time.Time
}

type cacheEntry struct {
	img      *image.NRGBA // nil if the load failed
	err      error
	loadedAt time.Time
}

// NewCache creates a texture cache backed by the given index.
func NewCache(index *Index, ttl time.Duration) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
		ttl:   ttl,
		now:   time.Now,
	}
}

func (c *Cache) fresh(e *cacheEntry) bool {
	return c.ttl <= 0 || c.now().Sub(e.loadedAt) < c.ttl
}

// Resolve loads and caches a texture by name. Returns nil if not found.
func (c *Cache) Resolve(texName string) *image.NRGBA {
	img, _ := c.Load(texName)
	return img
}

// Load is Resolve with the failure reason: ErrNotIndexed for unknown names, or
// the read/decode error of the indexed file. Failed loads are cached too.
func (c *Cache) Load(texName string) (*image.NRGBA, error) {
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil, fmt.Errorf("texture: %q: %w", texName, ErrNotIndexed)
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists && c.fresh(entry) {
		c.mu.RUnlock()
		return entry.img, entry.err
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, err := LoadTexture(path)
	if err != nil {
		logger.Warn("texture load failed", zap.String("path", path), zap.Error(err))
	}

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists && c.fresh(entry) {
		return entry.img, entry.err
	}
	c.items[path] = &cacheEntry{img: img, err: err, loadedAt: c.now()}
	return img, err
}

// Invalidate drops the cached image for a texture name or path.
func (c *Cache) Invalidate(texName string) {
	path, ok := c.index.ResolvePath(texName)
	c.mu.Lock()
	if ok {
		delete(c.items, path)
	}
	delete(c.items, texName)
	c.mu.Unlock()
}

// Len returns the number of cached entries, including failed loads.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

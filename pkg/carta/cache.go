package carta

import (
	"container/list"
	"sync"
	"time"
)

// CacheConfig contains the options of the template cache.
type CacheConfig struct {
	// MaxSize is the maximum number of templates to cache. 0 disables
	// caching.
	MaxSize int
	// TTL is the time-to-live for cached templates. 0 means no expiration.
	TTL time.Duration
}

// TemplateCache caches opened templates by key, LRU with optional TTL.
// Cached templates hold only the immutable source bytes; generations still
// build a fresh working document per call, so sharing a cached template
// between goroutines is safe.
type TemplateCache struct {
	mu     sync.Mutex
	cache  map[string]*cacheEntry
	lru    *list.List
	config CacheConfig
}

type cacheEntry struct {
	key      string
	template *Template
	expiry   time.Time
	element  *list.Element
}

// NewTemplateCache creates a cache using the global configuration.
func NewTemplateCache() *TemplateCache {
	config := GetGlobalConfig()
	return NewTemplateCacheWithConfig(CacheConfig{
		MaxSize: config.CacheMaxSize,
		TTL:     config.CacheTTL,
	})
}

// NewTemplateCacheWithConfig creates a cache with the given configuration.
func NewTemplateCacheWithConfig(config CacheConfig) *TemplateCache {
	return &TemplateCache{
		cache:  make(map[string]*cacheEntry),
		lru:    list.New(),
		config: config,
	}
}

// Get retrieves a cached template.
func (tc *TemplateCache) Get(key string) (*Template, bool) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	entry, exists := tc.cache[key]
	if !exists {
		return nil, false
	}

	if tc.config.TTL > 0 && time.Now().After(entry.expiry) {
		tc.removeLocked(entry)
		return nil, false
	}

	tc.lru.MoveToFront(entry.element)
	return entry.template, true
}

// Set adds a template to the cache, evicting the least recently used entry
// when the cache is full.
func (tc *TemplateCache) Set(key string, template *Template) {
	if tc.config.MaxSize == 0 {
		return
	}

	tc.mu.Lock()
	defer tc.mu.Unlock()

	if existing, exists := tc.cache[key]; exists {
		existing.template = template
		if tc.config.TTL > 0 {
			existing.expiry = time.Now().Add(tc.config.TTL)
		}
		tc.lru.MoveToFront(existing.element)
		return
	}

	if tc.lru.Len() >= tc.config.MaxSize {
		if oldest := tc.lru.Back(); oldest != nil {
			tc.removeLocked(oldest.Value.(*cacheEntry))
		}
	}

	entry := &cacheEntry{key: key, template: template}
	if tc.config.TTL > 0 {
		entry.expiry = time.Now().Add(tc.config.TTL)
	}
	entry.element = tc.lru.PushFront(entry)
	tc.cache[key] = entry
}

// Remove removes a template from the cache and closes it.
func (tc *TemplateCache) Remove(key string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	if entry, exists := tc.cache[key]; exists {
		tc.removeLocked(entry)
	}
}

func (tc *TemplateCache) removeLocked(entry *cacheEntry) {
	if entry.template != nil {
		entry.template.Close()
	}
	delete(tc.cache, entry.key)
	tc.lru.Remove(entry.element)
}

// Clear removes and closes every cached template.
func (tc *TemplateCache) Clear() {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	for _, entry := range tc.cache {
		if entry.template != nil {
			entry.template.Close()
		}
	}
	tc.cache = make(map[string]*cacheEntry)
	tc.lru = list.New()
}

// Size returns the current number of cached templates.
func (tc *TemplateCache) Size() int {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return len(tc.cache)
}

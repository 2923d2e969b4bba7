package carta

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCachedTemplate(t *testing.T) *Template {
	t.Helper()
	tmpl, err := OpenTemplate(bytes.NewReader(buildDocxBytes("contenido")))
	require.NoError(t, err)
	return tmpl
}

func TestTemplateCacheSetGet(t *testing.T) {
	cache := NewTemplateCacheWithConfig(CacheConfig{MaxSize: 2})
	tmpl := newCachedTemplate(t)

	cache.Set("a", tmpl)
	got, ok := cache.Get("a")
	require.True(t, ok)
	assert.Same(t, tmpl, got)
	assert.Equal(t, 1, cache.Size())

	_, ok = cache.Get("b")
	assert.False(t, ok)
}

func TestTemplateCacheLRUEviction(t *testing.T) {
	cache := NewTemplateCacheWithConfig(CacheConfig{MaxSize: 2})
	cache.Set("a", newCachedTemplate(t))
	cache.Set("b", newCachedTemplate(t))

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := cache.Get("a")
	require.True(t, ok)

	cache.Set("c", newCachedTemplate(t))
	assert.Equal(t, 2, cache.Size())

	_, ok = cache.Get("b")
	assert.False(t, ok)
	_, ok = cache.Get("a")
	assert.True(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)
}

func TestTemplateCacheTTLExpiry(t *testing.T) {
	cache := NewTemplateCacheWithConfig(CacheConfig{MaxSize: 2, TTL: time.Millisecond})
	cache.Set("a", newCachedTemplate(t))

	time.Sleep(5 * time.Millisecond)

	_, ok := cache.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Size())
}

func TestTemplateCacheDisabled(t *testing.T) {
	cache := NewTemplateCacheWithConfig(CacheConfig{MaxSize: 0})
	cache.Set("a", newCachedTemplate(t))
	assert.Equal(t, 0, cache.Size())
}

func TestTemplateCacheRemoveAndClear(t *testing.T) {
	cache := NewTemplateCacheWithConfig(CacheConfig{MaxSize: 4})
	cache.Set("a", newCachedTemplate(t))
	cache.Set("b", newCachedTemplate(t))

	cache.Remove("a")
	assert.Equal(t, 1, cache.Size())

	cache.Clear()
	assert.Equal(t, 0, cache.Size())
}

func TestTemplateCacheUpdateExistingKey(t *testing.T) {
	cache := NewTemplateCacheWithConfig(CacheConfig{MaxSize: 2})
	first := newCachedTemplate(t)
	second := newCachedTemplate(t)

	cache.Set("a", first)
	cache.Set("a", second)

	got, ok := cache.Get("a")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.Equal(t, 1, cache.Size())
}

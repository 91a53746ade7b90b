package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Cache is a thread-safe, tag-aware key-value store with optional per-entry TTL.
type Cache struct {
	m sync.Map // map[string]cacheItem
	// tagIndex maps tag string to a set of keys
	tagIndex sync.Map // map[string]*sync.Map
}

var (
	once     sync.Once
	instance *Cache
)

func GetInstance() *Cache {
	once.Do(func() {
		instance = NewCache()
	})
	return instance
}

// NewCache creates a new Cache instance.
func NewCache() *Cache {
	return &Cache{}
}

// cacheItem holds a value and its expiration time.
type cacheItem struct {
	Value     interface{}
	ExpiresAt int64 // Unix timestamp in nanoseconds; 0 means no expiration
}

// Set stores a value for a key with an optional TTL (in seconds) and optional tags. If ttl is 0, the value does not expire.
func (c *Cache) Set(key string, value interface{}, ttl int64, tags []string) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(time.Duration(ttl) * time.Second).UnixNano()
	}
	c.m.Store(key, cacheItem{Value: value, ExpiresAt: expiresAt})
	if len(tags) > 0 {
		c.TagKey(key, tags)
	}
}

// Get retrieves a value for a key. Returns (value, true) if found and not expired, (nil, false) otherwise.
func (c *Cache) Get(key string) (interface{}, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	item := v.(cacheItem)
	if item.ExpiresAt > 0 && time.Now().UnixNano() > item.ExpiresAt {
		c.Delete(key)
		return nil, false
	}
	return item.Value, true
}

// GetOrDefault returns the cached value for key, or def when missing.
func (c *Cache) GetOrDefault(key string, def interface{}) interface{} {
	if v, ok := c.Get(key); ok {
		return v
	}
	return def
}

// Delete removes a key from the cache and from every tag it was assigned to.
func (c *Cache) Delete(key string) {
	c.m.Delete(key)
	c.tagIndex.Range(func(_, val interface{}) bool {
		val.(*sync.Map).Delete(key)
		return true
	})
}

// DeleteMany removes multiple keys from the cache.
func (c *Cache) DeleteMany(keys ...string) {
	for _, key := range keys {
		c.Delete(key)
	}
}

// Key joins parts into a composite key.
func Key(parts ...interface{}) string {
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = fmt.Sprintf("%v", p)
	}
	return strings.Join(s, "|")
}

// Len counts live entries.
func (c *Cache) Len() int {
	n := 0
	c.m.Range(func(_, v interface{}) bool {
		item := v.(cacheItem)
		if item.ExpiresAt == 0 || time.Now().UnixNano() <= item.ExpiresAt {
			n++
		}
		return true
	})
	return n
}

// TagKey assigns one or more tags to a cache key.
func (c *Cache) TagKey(key string, tags []string) {
	for _, tag := range tags {
		val, _ := c.tagIndex.LoadOrStore(tag, &sync.Map{})
		val.(*sync.Map).Store(key, struct{}{})
	}
}

// GetKeysByTag returns all keys assigned to a tag.
func (c *Cache) GetKeysByTag(tag string) []string {
	var keys []string
	if val, ok := c.tagIndex.Load(tag); ok {
		val.(*sync.Map).Range(func(key, _ interface{}) bool {
			keys = append(keys, key.(string))
			return true
		})
	}
	return keys
}

// DeleteByTag deletes all cache entries assigned to a tag, drops them from
// every other tag, and returns how many live entries were removed.
func (c *Cache) DeleteByTag(tag string) int {
	now := time.Now().UnixNano()
	n := 0
	for _, key := range c.GetKeysByTag(tag) {
		if v, ok := c.m.Load(key); ok {
			if item := v.(cacheItem); item.ExpiresAt == 0 || now <= item.ExpiresAt {
				n++
			}
		}
		c.Delete(key)
	}
	c.tagIndex.Delete(tag)
	return n
}

// Flush drops every entry and tag.
func (c *Cache) Flush() {
	c.m.Range(func(k, _ interface{}) bool {
		c.m.Delete(k)
		return true
	})
	c.tagIndex.Range(func(k, _ interface{}) bool {
		c.tagIndex.Delete(k)
		return true
	})
}

package securestore

import (
	"container/list"
	"context"
	"sync"
)

type lruEntry struct {
	key   string
	value string
}

// LRUBackend is a bounded in-process Backend. When it holds capacity keys,
// writing a new key evicts the least recently used one.
type LRUBackend struct {
	capacity int
	items    map[string]*list.Element
	eviction *list.List
	mu       sync.Mutex
	onEvict  func(key string)
}

// NewLRUBackend creates an LRUBackend. It panics if capacity is not positive.
func NewLRUBackend(capacity int) *LRUBackend {
	if capacity <= 0 {
		panic("securestore: LRU capacity must be positive")
	}
	return &LRUBackend{
		capacity: capacity,
		items:    make(map[string]*list.Element),
		eviction: list.New(),
	}
}

// SetEvictCallback registers fn to be called with the key of every evicted
// entry. fn runs with the backend lock held and must not call back into it.
func (c *LRUBackend) SetEvictCallback(fn func(key string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = fn
}

// Get returns the value for key and marks it as recently used.
func (c *LRUBackend) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*lruEntry).value, true, nil
	}
	return "", false, nil
}

// Set stores value under key, evicting the oldest entry when full.
func (c *LRUBackend) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*lruEntry).value = value
		return nil
	}

	c.items[key] = c.eviction.PushFront(&lruEntry{key: key, value: value})
	if c.eviction.Len() > c.capacity {
		c.evictOldest()
	}
	return nil
}

// Delete removes key. Missing keys are ignored.
func (c *LRUBackend) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.Remove(elem)
		delete(c.items, key)
	}
	return nil
}

// Len returns the number of stored keys.
func (c *LRUBackend) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

func (c *LRUBackend) evictOldest() {
	elem := c.eviction.Back()
	if elem == nil {
		return
	}
	c.eviction.Remove(elem)
	entry := elem.Value.(*lruEntry)
	delete(c.items, entry.key)
	if c.onEvict != nil {
		c.onEvict(entry.key)
	}
}

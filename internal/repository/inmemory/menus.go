package inmemory

import (
	"strings"
	"sync"
	"time"

	menudomain "menu-app-go/internal/domain/menu"
)

type InMemoryMenuCache struct {
	mu    sync.RWMutex
	items map[string]menuItem
	now   func() time.Time
}

type menuItem struct {
	value     *menudomain.MenuView
	expiresAt time.Time
}

func NewInMemoryMenuCache() *InMemoryMenuCache {
	return &InMemoryMenuCache{
		items: make(map[string]menuItem),
		now:   time.Now,
	}
}

func (c *InMemoryMenuCache) Get(key string) (*menudomain.MenuView, bool) {
	now := c.now()

	c.mu.RLock()
	item, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[key]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, key)
		}
		c.mu.Unlock()
		return nil, false
	}

	return item.value, true
}

func (c *InMemoryMenuCache) Set(key string, view *menudomain.MenuView, ttl time.Duration) {
	if view == nil || ttl <= 0 {
		c.Delete(key)
		return
	}

	c.mu.Lock()
	c.items[key] = menuItem{
		value:     view,
		expiresAt: c.now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *InMemoryMenuCache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

func (c *InMemoryMenuCache) DeletePrefix(prefix string) {
	c.mu.Lock()
	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
	c.mu.Unlock()
}

func (c *InMemoryMenuCache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]menuItem)
	c.mu.Unlock()
}

// Sweep drops expired entries and returns how many were removed.
func (c *InMemoryMenuCache) Sweep() int {
	now := c.now()
	removed := 0

	c.mu.Lock()
	for key, item := range c.items {
		if !item.expiresAt.After(now) {
			delete(c.items, key)
			removed++
		}
	}
	c.mu.Unlock()

	return removed
}

func (c *InMemoryMenuCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

package inmemory

import (
	"sync"
	"testing"
	"time"

	menudomain "menu-app-go/internal/domain/menu"
)

var _ menudomain.Cache = (*InMemoryMenuCache)(nil)

func newTestCache(now *time.Time) *InMemoryMenuCache {
	cache := NewInMemoryMenuCache()
	cache.now = func() time.Time { return *now }
	return cache
}

func TestMenuCacheGetSet(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := newTestCache(&now)

	view := &menudomain.MenuView{Menu: menudomain.Menu{ID: "m1", Slug: "cafe"}}
	cache.Set("menu:cafe:false", view, time.Minute)

	got, ok := cache.Get("menu:cafe:false")
	if !ok {
		t.Fatalf("expected cache hit")
	}
	if got.Menu.ID != "m1" {
		t.Fatalf("unexpected menu id %q", got.Menu.ID)
	}
	if _, ok := cache.Get("menu:cafe:true"); ok {
		t.Fatalf("expected miss for other key")
	}
}

func TestMenuCacheExpires(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := newTestCache(&now)

	cache.Set("menu:cafe:false", &menudomain.MenuView{}, time.Minute)
	now = now.Add(time.Minute)

	if _, ok := cache.Get("menu:cafe:false"); ok {
		t.Fatalf("expected expired entry to miss")
	}
	if cache.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted, got %d", cache.Len())
	}
}

func TestMenuCacheNonPositiveTTLDeletes(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := newTestCache(&now)

	cache.Set("k", &menudomain.MenuView{}, time.Minute)
	cache.Set("k", &menudomain.MenuView{}, 0)

	if _, ok := cache.Get("k"); ok {
		t.Fatalf("expected entry removed")
	}
}

func TestMenuCacheDeletePrefix(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := newTestCache(&now)

	cache.Set("menu:cafe:false", &menudomain.MenuView{}, time.Minute)
	cache.Set("menu:cafe:true", &menudomain.MenuView{}, time.Minute)
	cache.Set("menu:cafe-bar:false", &menudomain.MenuView{}, time.Minute)

	cache.DeletePrefix("menu:cafe:")

	if cache.Len() != 1 {
		t.Fatalf("expected 1 entry left, got %d", cache.Len())
	}
	if _, ok := cache.Get("menu:cafe-bar:false"); !ok {
		t.Fatalf("expected unrelated slug to survive")
	}
}

func TestMenuCacheSweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	cache := newTestCache(&now)

	cache.Set("short", &menudomain.MenuView{}, time.Second)
	cache.Set("long", &menudomain.MenuView{}, time.Hour)
	now = now.Add(time.Minute)

	if removed := cache.Sweep(); removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}
	if _, ok := cache.Get("long"); !ok {
		t.Fatalf("expected long-lived entry to survive")
	}
}

func TestMenuCacheClear(t *testing.T) {
	cache := NewInMemoryMenuCache()
	cache.Set("a", &menudomain.MenuView{}, time.Minute)
	cache.Set("b", &menudomain.MenuView{}, time.Minute)

	cache.Clear()

	if cache.Len() != 0 {
		t.Fatalf("expected empty cache, got %d", cache.Len())
	}
}

func TestMenuCacheConcurrentAccess(t *testing.T) {
	cache := NewInMemoryMenuCache()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := "menu:s:" + string(rune('a'+i))
			cache.Set(key, &menudomain.MenuView{}, time.Minute)
			cache.Get(key)
			cache.DeletePrefix("menu:x:")
		}(i)
	}
	wg.Wait()

	if cache.Len() != 16 {
		t.Fatalf("expected 16 entries, got %d", cache.Len())
	}
}

package menu

import (
	"strconv"
	"time"
)

type Cache interface {
	Get(key string) (*MenuView, bool)
	Set(key string, view *MenuView, ttl time.Duration)
	DeletePrefix(prefix string)
}

type noopCache struct{}

func (noopCache) Get(string) (*MenuView, bool) {
	return nil, false
}

func (noopCache) Set(string, *MenuView, time.Duration) {}

func (noopCache) DeletePrefix(string) {}

func cacheKey(slug string, includeUnpublished bool) string {
	return cacheKeyPrefix(slug) + strconv.FormatBool(includeUnpublished)
}

func cacheKeyPrefix(slug string) string {
	return "menu:" + slug + ":"
}

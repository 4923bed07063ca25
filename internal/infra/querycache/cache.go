// Package querycache is a read-through cache over a catalog source with
// per-query stale times, the role the storefront's query library played:
// fresh entries are served directly, stale or absent ones trigger a fetch,
// and concurrent fetches for the same key are deduplicated.
package querycache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"example.com/bookstore-storefront/internal/domain/catalog"
)

type Config struct {
	ListStale   time.Duration // product lists, all or by category
	SearchStale time.Duration // search results
	DetailStale time.Duration // single products and categories
}

func DefaultConfig() Config {
	return Config{
		ListStale:   5 * time.Minute,
		SearchStale: 2 * time.Minute,
		DetailStale: 10 * time.Minute,
	}
}

type entry struct {
	value     any
	fetchedAt time.Time
}

type Cache struct {
	source catalog.Source
	cfg    Config
	now    func() time.Time

	group   singleflight.Group
	mu      sync.Mutex
	entries map[string]entry
}

func New(source catalog.Source, cfg Config) *Cache {
	return &Cache{
		source:  source,
		cfg:     cfg,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (c *Cache) lookup(key string, stale time.Duration) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetchedAt) >= stale {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, fetchedAt: c.now()}
}

// fetch serves a fresh entry or runs fn once for all concurrent callers of
// the same key. Failed fetches are not cached; the next access retries.
func (c *Cache) fetch(key string, stale time.Duration, fn func() (any, error)) (any, error) {
	if v, ok := c.lookup(key, stale); ok {
		return v, nil
	}
	v, err, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.lookup(key, stale); ok {
			return v, nil
		}
		v, err := fn()
		if err != nil {
			return nil, err
		}
		c.put(key, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (c *Cache) Products(ctx context.Context) ([]catalog.Product, error) {
	v, err := c.fetch("products", c.cfg.ListStale, func() (any, error) {
		return c.source.Products(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]catalog.Product), nil
}

func (c *Cache) ProductsByCategory(ctx context.Context, slug string) ([]catalog.Product, error) {
	key := "products:category:" + slug
	v, err := c.fetch(key, c.cfg.ListStale, func() (any, error) {
		return c.source.ProductsByCategory(ctx, slug)
	})
	if err != nil {
		return nil, err
	}
	return v.([]catalog.Product), nil
}

func (c *Cache) Search(ctx context.Context, term string) ([]catalog.Product, error) {
	key := "products:search:" + term
	v, err := c.fetch(key, c.cfg.SearchStale, func() (any, error) {
		return c.source.Search(ctx, term)
	})
	if err != nil {
		return nil, err
	}
	return v.([]catalog.Product), nil
}

func (c *Cache) ProductByID(ctx context.Context, id int64) (*catalog.Product, error) {
	key := fmt.Sprintf("product:%d", id)
	v, err := c.fetch(key, c.cfg.DetailStale, func() (any, error) {
		return c.source.ProductByID(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*catalog.Product), nil
}

func (c *Cache) Categories(ctx context.Context) ([]catalog.Category, error) {
	v, err := c.fetch("categories", c.cfg.DetailStale, func() (any, error) {
		return c.source.Categories(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]catalog.Category), nil
}

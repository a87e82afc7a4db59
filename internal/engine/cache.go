package engine

import (
	"log"
	"sync"

	"golang.org/x/text/language"
)

// Cache holds one Backend per language, built lazily on first use and kept
// for process lifetime (never evicted). Construction happens under the lock,
// so concurrent first requests for an unseen language build exactly one
// instance.
type Cache struct {
	mu       sync.Mutex
	backends map[string]Backend
	build    func(lang string) (Backend, error)
}

// NewCache creates an empty cache whose instances target baseURL.
func NewCache(baseURL string) *Cache {
	return &Cache{
		backends: make(map[string]Backend),
		build: func(lang string) (Backend, error) {
			return New(baseURL, lang)
		},
	}
}

// newCacheWith is the test seam: same cache, custom constructor.
func newCacheWith(build func(lang string) (Backend, error)) *Cache {
	return &Cache{backends: make(map[string]Backend), build: build}
}

// Get returns the Backend for lang, constructing it on first use.
// Language tags are canonicalized first, so "en-us" and "en-US" share an
// instance.
func (c *Cache) Get(lang string) (Backend, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, err
	}
	key := tag.String()

	c.mu.Lock()
	defer c.mu.Unlock()

	if b, ok := c.backends[key]; ok {
		return b, nil
	}

	log.Printf("engine: initializing backend for language %s", key)
	b, err := c.build(key)
	if err != nil {
		return nil, err
	}
	c.backends[key] = b
	return b, nil
}

// Len reports how many language instances are live.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.backends)
}

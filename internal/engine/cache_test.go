package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proseworks/prosecheck/internal/model"
)

type nopBackend struct{ lang string }

func (n *nopBackend) Check(ctx context.Context, text string, disabledRules []string) ([]model.MatchRecord, error) {
	return nil, nil
}

func TestCache_LazySingleInstance(t *testing.T) {
	var built int32
	c := newCacheWith(func(lang string) (Backend, error) {
		atomic.AddInt32(&built, 1)
		return &nopBackend{lang: lang}, nil
	})

	assert.Equal(t, 0, c.Len())

	first, err := c.Get("en-US")
	require.NoError(t, err)
	again, err := c.Get("en-US")
	require.NoError(t, err)

	assert.Same(t, first, again)
	assert.Equal(t, int32(1), atomic.LoadInt32(&built))
	assert.Equal(t, 1, c.Len())
}

func TestCache_CanonicalizesLanguageKeys(t *testing.T) {
	c := newCacheWith(func(lang string) (Backend, error) {
		return &nopBackend{lang: lang}, nil
	})

	lower, err := c.Get("en-us")
	require.NoError(t, err)
	upper, err := c.Get("en-US")
	require.NoError(t, err)

	assert.Same(t, lower, upper)
	assert.Equal(t, 1, c.Len())
}

func TestCache_InvalidLanguage(t *testing.T) {
	c := NewCache(DefaultBaseURL)
	_, err := c.Get("not a language tag")
	assert.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

// Concurrent first requests for one unseen language must not race to build
// duplicate instances.
func TestCache_ConcurrentFirstGet(t *testing.T) {
	var built int32
	c := newCacheWith(func(lang string) (Backend, error) {
		atomic.AddInt32(&built, 1)
		return &nopBackend{lang: lang}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Get("fr-FR")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&built))
	assert.Equal(t, 1, c.Len())
}

package ddragon

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubCDN(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/versions.json", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, `["15.1.1","14.24.1","14.23.1"]`)
	})
	mux.HandleFunc("/cdn/15.1.1/data/en_US/champion.json", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"version": "15.1.1",
			"data": {
				"Leblanc": {"id": "Leblanc", "key": "7", "name": "LeBlanc", "image": {"full": "Leblanc.png"}},
				"Yasuo": {"id": "Yasuo", "key": "157", "name": "Yasuo", "image": {"full": "Yasuo.png"}}
			}
		}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestCache(base string) *Cache {
	cache := NewCache(zerolog.Nop())
	cache.base = base
	return cache
}

func TestCatalogPopulation(t *testing.T) {
	var hits atomic.Int64
	srv := newStubCDN(t, &hits)
	cache := newTestCache(srv.URL)

	catalog := cache.Catalog(context.Background())

	assert.Equal(t, "15.1.1", catalog.Version)
	require.Len(t, catalog.Champions, 2)

	// Keyed by the numeric id, not the slug.
	info, ok := catalog.Champion(7)
	require.True(t, ok)
	assert.Equal(t, "Leblanc", info.ID)
	assert.Equal(t, "LeBlanc", info.Name)
	assert.Equal(t, srv.URL+"/cdn/15.1.1/img/champion/Leblanc.png", info.Image)

	_, ok = catalog.Champion(9999)
	assert.False(t, ok)
}

func TestCatalogMemoized(t *testing.T) {
	var hits atomic.Int64
	srv := newStubCDN(t, &hits)
	cache := newTestCache(srv.URL)

	first := cache.Catalog(context.Background())
	second := cache.Catalog(context.Background())

	assert.Same(t, first, second)
	assert.Equal(t, int64(1), hits.Load())
}

func TestCatalogDegradedOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	cache := newTestCache(srv.URL)

	catalog := cache.Catalog(context.Background())

	assert.Equal(t, fallbackVersion, catalog.Version)
	assert.Empty(t, catalog.Champions)

	_, ok := catalog.Champion(7)
	assert.False(t, ok)
}

func TestCatalogFailureIsNotMemoized(t *testing.T) {
	var hits atomic.Int64
	healthy := newStubCDN(t, &hits)

	var failing atomic.Bool
	failing.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		healthy.Config.Handler.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	cache := newTestCache(srv.URL)

	degraded := cache.Catalog(context.Background())
	assert.Equal(t, fallbackVersion, degraded.Version)

	// Upstream recovers; the next call repopulates instead of serving the
	// degraded result forever.
	failing.Store(false)

	recovered := cache.Catalog(context.Background())
	assert.Equal(t, "15.1.1", recovered.Version)
	require.Len(t, recovered.Champions, 2)
}

func TestCatalogConcurrentFirstAccess(t *testing.T) {
	var hits atomic.Int64
	srv := newStubCDN(t, &hits)
	cache := newTestCache(srv.URL)

	var wg sync.WaitGroup
	results := make([]*Catalog, 10)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = cache.Catalog(context.Background())
		}()
	}
	wg.Wait()

	for _, catalog := range results {
		require.NotNil(t, catalog)
		assert.Equal(t, "15.1.1", catalog.Version)
	}
	assert.Equal(t, int64(1), hits.Load())
}

func TestProfileIconURL(t *testing.T) {
	catalog := &Catalog{Version: "15.1.1"}
	assert.Equal(t,
		"https://ddragon.leagueoflegends.com/cdn/15.1.1/img/profileicon/29.png",
		catalog.ProfileIconURL(29))
}

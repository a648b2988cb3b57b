package currency

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type memoryStore struct {
	mu   sync.Mutex
	last *Snapshot
}

func (s *memoryStore) SaveSnapshot(snap Snapshot) error {
	s.mu.Lock()
	s.last = &snap
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) LatestSnapshot() (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last, nil
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

const indicatorJSON = `{
	"uf": {"valor": 38500.5},
	"euro": {"valor": 1015.3},
	"dolar": {"valor": 960.1}
}`

func TestCurrentRatesFetchesAndCaches(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(indicatorJSON))
	}))
	defer server.Close()

	clock := &fakeClock{now: time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)}
	svc := NewService(quietLogger(), ServiceOptions{
		BaseURL:  server.URL,
		CacheTTL: time.Hour,
		Clock:    clock,
	})

	first, err := svc.CurrentRates()
	require.NoError(t, err)
	assert.Equal(t, 38500.5, first.UFCLP)
	assert.Equal(t, 1015.3, first.EURCLP)
	assert.Equal(t, 960.1, first.USDCLP)
	assert.Equal(t, 1, requests)

	// Within the TTL the cached snapshot is served.
	clock.Advance(30 * time.Minute)
	second, err := svc.CurrentRates()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, requests)

	// Past the TTL a fresh fetch happens.
	clock.Advance(31 * time.Minute)
	_, err = svc.CurrentRates()
	require.NoError(t, err)
	assert.Equal(t, 2, requests)
}

func TestCurrentRatesFallsBackToStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	stored, err := NewSnapshot(38000, 1000, 950, time.Date(2026, 7, 31, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	svc := NewService(quietLogger(), ServiceOptions{
		BaseURL: server.URL,
		Store:   &memoryStore{last: &stored},
	})

	snap, err := svc.CurrentRates()
	require.NoError(t, err)
	assert.Equal(t, stored, snap)
}

func TestCurrentRatesFallsBackToConfigured(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fallback, err := NewSnapshot(38500, 1020, 980, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	svc := NewService(quietLogger(), ServiceOptions{
		BaseURL:  server.URL,
		Store:    &memoryStore{},
		Fallback: &fallback,
	})

	snap, err := svc.CurrentRates()
	require.NoError(t, err)
	assert.Equal(t, fallback, snap)
}

func TestCurrentRatesUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewService(quietLogger(), ServiceOptions{BaseURL: server.URL})

	_, err := svc.CurrentRates()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRatesUnavailable)
}

func TestRefreshPersistsSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(indicatorJSON))
	}))
	defer server.Close()

	store := &memoryStore{}
	svc := NewService(quietLogger(), ServiceOptions{
		BaseURL: server.URL,
		Store:   store,
	})

	snap, err := svc.Refresh()
	require.NoError(t, err)

	persisted, err := store.LatestSnapshot()
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, snap, *persisted)
}

func TestFetchRejectsIncompleteResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"uf": {"valor": 38500}}`))
	}))
	defer server.Close()

	svc := NewService(quietLogger(), ServiceOptions{BaseURL: server.URL})

	_, err := svc.Refresh()
	assert.Error(t, err)
}

func TestHistoricalUF(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/uf/15-03-2026", r.URL.Path)
		w.Write([]byte(`{"serie": [{"valor": 38123.45}]}`))
	}))
	defer server.Close()

	svc := NewService(quietLogger(), ServiceOptions{BaseURL: server.URL})

	value, err := svc.HistoricalUF(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 38123.45, value)
}

package currency

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrRatesUnavailable is returned when the indicator API cannot be reached
// and no stored or configured fallback snapshot exists.
var ErrRatesUnavailable = errors.New("exchange rates unavailable")

const (
	defaultBaseURL  = "https://mindicador.cl/api"
	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = time.Hour
)

// Clock abstracts time.Now so cache expiry can be tested without sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }

// Store persists fetched snapshots and serves the last known one when the
// provider is unreachable.
type Store interface {
	SaveSnapshot(Snapshot) error
	LatestSnapshot() (*Snapshot, error)
}

// ServiceOptions configures a Service. Zero values fall back to the
// mindicador.cl defaults.
type ServiceOptions struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
	Clock    Clock
	Store    Store
	Fallback *Snapshot
}

// Service fetches daily indicator values and caches them for the validity
// window so concurrent callers observe the same snapshot.
type Service struct {
	logger   *logrus.Logger
	client   *http.Client
	baseURL  string
	cacheTTL time.Duration
	clock    Clock
	store    Store
	fallback *Snapshot

	mu       sync.RWMutex
	cached   *Snapshot
	cachedAt time.Time
}

// NewService creates a rate service.
func NewService(logger *logrus.Logger, opts ServiceOptions) *Service {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}

	return &Service{
		logger:   logger,
		client:   &http.Client{Timeout: opts.Timeout},
		baseURL:  opts.BaseURL,
		cacheTTL: opts.CacheTTL,
		clock:    opts.Clock,
		store:    opts.Store,
		fallback: opts.Fallback,
	}
}

type indicatorResponse struct {
	UF struct {
		Valor float64 `json:"valor"`
	} `json:"uf"`
	Euro struct {
		Valor float64 `json:"valor"`
	} `json:"euro"`
	Dolar struct {
		Valor float64 `json:"valor"`
	} `json:"dolar"`
}

// CurrentRates returns the cached snapshot while it is fresh, otherwise
// fetches a new one. On provider failure it falls back to the last
// persisted snapshot, then to the configured constants.
func (s *Service) CurrentRates() (Snapshot, error) {
	s.mu.RLock()
	if s.cached != nil && s.clock.Now().Sub(s.cachedAt) < s.cacheTTL {
		snap := *s.cached
		s.mu.RUnlock()
		return snap, nil
	}
	s.mu.RUnlock()

	snap, err := s.Refresh()
	if err == nil {
		return snap, nil
	}
	s.logger.WithError(err).Warn("Rate fetch failed, trying fallbacks")

	if s.store != nil {
		stored, storeErr := s.store.LatestSnapshot()
		if storeErr != nil {
			s.logger.WithError(storeErr).Error("Failed to load stored snapshot")
		} else if stored != nil {
			s.logger.WithField("fetched_at", stored.FetchedAt).Info("Using last stored snapshot")
			return *stored, nil
		}
	}

	if s.fallback != nil {
		s.logger.Info("Using configured fallback rates")
		return *s.fallback, nil
	}

	return Snapshot{}, fmt.Errorf("%w: %v", ErrRatesUnavailable, err)
}

// Refresh fetches a fresh snapshot bypassing the cache, then caches and
// persists it. The scheduler calls this to keep the cache warm.
func (s *Service) Refresh() (Snapshot, error) {
	snap, err := s.fetch()
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	s.cached = &snap
	s.cachedAt = s.clock.Now()
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.SaveSnapshot(snap); err != nil {
			s.logger.WithError(err).Error("Failed to persist snapshot")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"uf_clp":  snap.UFCLP,
		"eur_clp": snap.EURCLP,
		"usd_clp": snap.USDCLP,
	}).Info("Fetched daily indicator values")

	return snap, nil
}

func (s *Service) fetch() (Snapshot, error) {
	req, err := http.NewRequest("GET", s.baseURL, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("indicator request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Snapshot{}, fmt.Errorf("indicator API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read response: %v", err)
	}

	var parsed indicatorResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse response: %v", err)
	}

	snap, err := NewSnapshot(parsed.UF.Valor, parsed.Euro.Valor, parsed.Dolar.Valor, s.clock.Now())
	if err != nil {
		return Snapshot{}, fmt.Errorf("incomplete indicator response: %v", err)
	}
	return snap, nil
}

type ufSeriesResponse struct {
	Serie []struct {
		Valor float64 `json:"valor"`
	} `json:"serie"`
}

// HistoricalUF returns the UF value in CLP for a past date.
func (s *Service) HistoricalUF(date time.Time) (float64, error) {
	url := fmt.Sprintf("%s/uf/%s", s.baseURL, date.Format("02-01-2006"))

	resp, err := s.client.Get(url)
	if err != nil {
		return 0, fmt.Errorf("historical UF request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response: %v", err)
	}

	var parsed ufSeriesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("failed to parse response: %v", err)
	}
	if len(parsed.Serie) == 0 {
		return 0, fmt.Errorf("no UF value for %s", date.Format("02-01-2006"))
	}
	return parsed.Serie[0].Valor, nil
}

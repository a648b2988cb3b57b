package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"ladrillo/server/internal/currency"
)

// Scheduler keeps the rate cache warm by refreshing snapshots on a cron
// schedule.
type Scheduler struct {
	cron   *cron.Cron
	rates  *currency.Service
	logger *logrus.Logger
}

func New(rates *currency.Service, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(),
		rates:  rates,
		logger: logger,
	}
}

// Start registers the hourly refresh job and launches the cron loop. An
// immediate refresh primes the cache so the first request does not pay
// the fetch latency.
func (s *Scheduler) Start() error {
	if _, err := s.rates.Refresh(); err != nil {
		s.logger.WithError(err).Warn("Initial rate refresh failed, will retry on schedule")
	}

	_, err := s.cron.AddFunc("@hourly", func() {
		if _, err := s.rates.Refresh(); err != nil {
			s.logger.WithError(err).Error("Scheduled rate refresh failed")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("Rate refresh scheduler started")
	return nil
}

// Stop halts the cron loop and waits for any running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Rate refresh scheduler stopped")
}

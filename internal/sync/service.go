// Package sync runs the background upkeep of the service: stored bulk change
// reports older than their TTL are purged on a timer.
package sync

import (
	"WooMasterKit/internal/telegram"
	"WooMasterKit/pkg/logging"
	"context"
	"fmt"
	"time"
)

// maxRestarts is how many panics PurgeServiceWithRecovered survives.
const maxRestarts = 3

type Purger interface {
	Purge(before time.Time) error
}

type PurgeService struct {
	purger   Purger
	ttl      time.Duration
	interval time.Duration
	notifier telegram.Notifier
	now      func() time.Time
}

func NewPurgeService(p Purger, ttl, interval time.Duration, n telegram.Notifier) *PurgeService {
	if n == nil {
		n = telegram.Nop()
	}
	return &PurgeService{
		purger:   p,
		ttl:      ttl,
		interval: interval,
		notifier: n,
		now:      time.Now,
	}
}

// PurgeServiceWithRecovered restarts PurgeService after a panic, up to
// maxRestarts times, and reports when it gives up.
func (s *PurgeService) PurgeServiceWithRecovered(ctx context.Context) {
	logger := logging.GetLogger()
	logger.Info("Start Service PurgeServiceWithRecovered")
	defer logger.Info("End Service PurgeServiceWithRecovered")

	for index := 0; index < maxRestarts; index++ {
		if !s.run(ctx) {
			return
		}
	}
	telegram.SendMessageWithLogError(s.notifier, "report purge restarts stopped")
}

// run loops until ctx is done. It returns true when the loop panicked.
func (s *PurgeService) run(ctx context.Context) (panicked bool) {
	logger := logging.GetLogger()
	logger.Info("Start Service Purge")
	defer logger.Info("End Service Purge")

	defer func() {
		if r := recover(); r != nil {
			panicked = true
			text := fmt.Sprintf("report purge failed and will be restarted, error: %v", r)
			logger.Error(text)
			telegram.SendMessageWithLogError(s.notifier, text)
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.PurgeOnce()
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}
	}
}

// PurgeOnce deletes the reports created more than ttl ago.
func (s *PurgeService) PurgeOnce() {
	before := s.now().Add(-s.ttl)
	if err := s.purger.Purge(before); err != nil {
		logging.GetLogger().Errorf("failed Purge(%s), error: %v", before.Format(time.RFC3339), err)
	}
}

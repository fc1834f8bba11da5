package mail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"game-admin/internal/common/logging"
	"game-admin/internal/locks"
)

const (
	purgeTimeout = time.Minute
	purgeLockKey = "mail-purge"
)

type purger struct {
	cron *cron.Cron
}

// StartPurger schedules Purge with a standard cron spec or a descriptor such
// as "@every 1h". Calling it again replaces the previous schedule.
func (s *Service) StartPurger(spec string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(spec, s.runPurge); err != nil {
		return fmt.Errorf("invalid mail purge schedule %q: %w", spec, err)
	}

	if s.purger != nil {
		<-s.purger.cron.Stop().Done()
	}
	s.purger = &purger{cron: c}
	c.Start()

	s.logger.Info("Mail purger started", logging.String("schedule", spec))
	return nil
}

func (s *Service) runPurge() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	if s.locks != nil {
		lock, err := s.locks.TryAcquire(ctx, purgeLockKey, purgeTimeout)
		switch {
		case errors.Is(err, locks.ErrNotAcquired):
			s.logger.Debug("Mail purge running elsewhere, skipping")
			return
		case err != nil:
			// a purge is idempotent
			s.logger.Warn("Mail purge lock unavailable, purging anyway", logging.Err(err))
		default:
			defer lock.Release(context.Background())
		}
	}

	if _, err := s.Purge(ctx); err != nil {
		s.logger.Error("Mail purge failed", err)
	}
}

// Stop halts the purger and waits for a running purge to finish or ctx to
// expire. It is a no-op when the purger was never started.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	p := s.purger
	s.purger = nil
	s.mu.Unlock()

	if p == nil {
		return nil
	}

	select {
	case <-p.cron.Stop().Done():
		s.logger.Info("Mail purger stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

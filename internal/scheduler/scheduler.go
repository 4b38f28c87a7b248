// Package scheduler owns both sweep triggers: the start-of-application run
// and the periodic timer. The sweeper's own reentrancy guard plus cron's
// SkipIfStillRunning chain keep overlapping runs serialized.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"celebra/internal/application/usecase/abstraction"
	"celebra/pkg/logger"
)

type Config struct {
	Interval string `yaml:"interval"` // e.g. "6h"
}

type Scheduler struct {
	cron    *cron.Cron
	sweeper abstraction.Sweeper
}

func New(sweeper abstraction.Sweeper, cfg Config) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{})))

	s := &Scheduler{
		cron:    c,
		sweeper: sweeper,
	}

	if _, err := c.AddFunc(fmt.Sprintf("@every %s", cfg.Interval), func() {
		s.sweeper.Run(context.Background())
	}); err != nil {
		return nil, fmt.Errorf("failed to schedule sweep: %w", err)
	}

	return s, nil
}

// Start runs the opportunistic start-of-application sweep once, then starts
// the periodic timer.
func (s *Scheduler) Start() {
	go s.sweeper.Run(context.Background())
	s.cron.Start()
}

// Stop halts the timer; the returned context is done when any in-flight
// sweep job has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// cronLogger adapts the global logger to cron's Logger interface.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Debug(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Error(msg, append(keysAndValues, "err", err)...)
}

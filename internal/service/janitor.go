package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionJanitor periodically drops sessions of readers that went away.
type SessionJanitor struct {
	sessions SessionStorage
	ttl      time.Duration
	interval time.Duration
	logger   *zap.Logger
}

func NewSessionJanitor(sessions SessionStorage, ttl, interval time.Duration, logger *zap.Logger) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		ttl:      ttl,
		interval: interval,
		logger:   logger,
	}
}

// Sweep evicts idle sessions once.
func (j *SessionJanitor) Sweep() int {
	evicted := j.sessions.EvictIdle(j.ttl)
	if evicted > 0 {
		j.logger.Info("idle sessions evicted",
			zap.Int("evicted", evicted),
			zap.Duration("ttl", j.ttl),
		)
	}
	return evicted
}

// Start runs the sweep on a schedule until ctx is done.
func (j *SessionJanitor) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	if _, err := c.AddFunc(fmt.Sprintf("@every %s", j.interval), func() { j.Sweep() }); err != nil {
		return fmt.Errorf("add janitor job: %w", err)
	}

	c.Start()
	j.logger.Info("session janitor started", zap.Duration("interval", j.interval))

	<-ctx.Done()

	<-c.Stop().Done()
	j.logger.Info("session janitor stopped")
	return nil
}

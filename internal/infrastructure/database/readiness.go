package database

import (
	"context"
	"time"

	"requisiciones_api/internal/pkg/logger"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds the startup readiness probes.
type RetryPolicy struct {
	Retries  uint64
	Interval time.Duration
}

// waitReady runs probe until it succeeds, the retries are exhausted or ctx ends.
func waitReady(ctx context.Context, name string, policy RetryPolicy, probe func() error) error {
	interval := policy.Interval
	if interval <= 0 {
		interval = time.Second
	}
	attempt := 0
	return backoff.Retry(
		func() error {
			attempt++
			if err := probe(); err != nil {
				logger.Warnf(ctx, "[database][%s] not ready attempt=%d err=%v", name, attempt, err)
				return err
			}
			logger.Infof(ctx, "[database][%s] ready attempt=%d", name, attempt)
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(interval), policy.Retries),
			ctx,
		),
	)
}

package httpclient

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	defaultMaxAttempts    = 3
	defaultInitialBackoff = time.Second
)

// Policy controls the bounded exponential backoff applied around a request.
// The executor does not classify errors: a 400 and a timeout retry the same
// way. That mirrors the backends' behaviour contract and keeps the retry
// path deterministic.
type Policy struct {
	MaxAttempts    int
	InitialBackoff time.Duration

	// Sleep is swapped out by tests to assert backoff timing. nil means
	// time.Sleep.
	Sleep func(time.Duration)
}

func DefaultPolicy() Policy {
	return Policy{MaxAttempts: defaultMaxAttempts, InitialBackoff: defaultInitialBackoff}
}

// NoRetry is for operations that must fail fast (health probes) or are not
// safe to repeat (model training).
func NoRetry() Policy {
	return Policy{MaxAttempts: 1}
}

// Retry runs op up to pol.MaxAttempts times, sleeping
// InitialBackoff * 2^(attempt-1) between attempts. The delay is not
// cancellable: a started retry sequence runs to completion. On exhaustion
// the last attempt's error is returned unchanged.
func Retry[T any](ctx context.Context, log *zap.Logger, pol Policy, name string, op func(context.Context) (T, error)) (T, error) {
	if pol.MaxAttempts <= 0 {
		pol.MaxAttempts = defaultMaxAttempts
	}
	if pol.InitialBackoff <= 0 {
		pol.InitialBackoff = defaultInitialBackoff
	}
	sleep := pol.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	var zero T
	for attempt := 1; ; attempt++ {
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		if attempt >= pol.MaxAttempts {
			return zero, err
		}

		delay := pol.InitialBackoff << (attempt - 1)
		log.Warn("request failed, retrying",
			zap.String("op", name),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", pol.MaxAttempts),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		sleep(delay)
	}
}

package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Policy bounds retries of one fetch operation. Attempts are separated by a
// fixed Delay; the operation rebuilds its request on every call, so decode
// failures are retried along with transport failures.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// Do runs fn up to MaxAttempts times, warning before each retry. It returns
// the last error once attempts are exhausted. The caller is expected to treat
// that as "skip this unit of work", not as a run-fatal condition.
func (p Policy) Do(ctx context.Context, logger *slog.Logger, op string, fn func() error) error {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = 1
	}

	var err error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if attempt == p.MaxAttempts {
			break
		}

		logger.Warn("operation failed, retrying",
			"op", op,
			"attempt", attempt,
			"delay", p.Delay,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.Delay):
		}
	}

	return fmt.Errorf("%s: after %d attempts: %w", op, p.MaxAttempts, err)
}

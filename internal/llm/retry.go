package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// retryProvider wraps a Provider with a bounded retry on failure.
// Retries cover transient transport errors only; callers decide what to
// do with output that parses but is unusable.
type retryProvider struct {
	inner   Provider
	retries int
	log     *zap.Logger
}

// WithRetry returns a Provider that retries failed calls up to retries
// additional times with a short backoff.
func WithRetry(inner Provider, retries int, log *zap.Logger) Provider {
	if retries < 0 {
		retries = 0
	}
	return &retryProvider{inner: inner, retries: retries, log: log}
}

func (r *retryProvider) Name() string {
	return r.inner.Name()
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= r.retries; attempt++ {
		if attempt > 0 {
			r.log.Warn("retrying model call",
				zap.Int("attempt", attempt),
				zap.Error(lastErr))
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}
		text, err := r.inner.Generate(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return "", lastErr
}

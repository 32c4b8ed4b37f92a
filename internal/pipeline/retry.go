package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"assetgen/internal/domain"
	"assetgen/internal/providers/image"
)

const (
	DefaultMaxRetries = 2
	DefaultBackoff    = 2 * time.Second
	DefaultMaxBackoff = 30 * time.Second
)

// RetryPolicy bounds the attempts made for one asset: at most
// 1 + MaxRetries calls.
type RetryPolicy struct {
	MaxRetries int
	Backoff    time.Duration
	MaxBackoff time.Duration
}

// DefaultRetryPolicy mirrors the defaults exposed by configuration.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: DefaultMaxRetries, Backoff: DefaultBackoff, MaxBackoff: DefaultMaxBackoff}
}

// Delay returns the wait before retry n (1-based).
func (p RetryPolicy) Delay(n int) time.Duration {
	if n < 1 || p.Backoff <= 0 {
		return 0
	}
	d := p.Backoff
	for i := 1; i < n; i++ {
		d <<= 1
		if p.MaxBackoff > 0 && d >= p.MaxBackoff {
			return p.MaxBackoff
		}
	}
	if p.MaxBackoff > 0 && d > p.MaxBackoff {
		return p.MaxBackoff
	}
	return d
}

// Result is the outcome of a retried generation: either Asset is set or Err
// explains the last failure.
type Result struct {
	Asset    *image.Asset
	Attempts int
	Err      error
}

// OK reports whether an asset was produced.
func (r Result) OK() bool {
	return r.Err == nil && r.Asset != nil && len(r.Asset.Data) > 0
}

type attemptFunc func(ctx context.Context, attempt int) (*image.Asset, error)

// do runs fn until it succeeds or the attempts run out. Every error is
// retryable, including an empty payload. onRetry is invoked before each wait.
func (p RetryPolicy) do(ctx context.Context, sleep func(time.Duration), fn attemptFunc, onRetry func(attempt int, wait time.Duration, err error)) Result {
	retries := p.MaxRetries
	if retries < 0 {
		retries = 0
	}
	var lastErr error
	for attempt := 1; attempt <= retries+1; attempt++ {
		if attempt > 1 {
			wait := p.Delay(attempt - 1)
			if onRetry != nil {
				onRetry(attempt-1, wait, lastErr)
			}
			if wait > 0 {
				sleep(wait)
			}
		}
		asset, err := fn(ctx, attempt)
		if err == nil && (asset == nil || len(asset.Data) == 0) {
			err = domain.ErrNoImagePayload
		}
		if err == nil {
			return Result{Asset: asset, Attempts: attempt}
		}
		lastErr = err
	}
	if !errors.Is(lastErr, domain.ErrGenerationFailure) {
		lastErr = fmt.Errorf("%w after %d attempt(s): %w", domain.ErrGenerationFailure, retries+1, lastErr)
	}
	return Result{Attempts: retries + 1, Err: lastErr}
}

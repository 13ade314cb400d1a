package ai

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"kotoba/backend/internal/logger"
)

// DefaultRateLimit is the default number of AI calls per second.
const DefaultRateLimit = 5

// slowWait is how long a caller may be held before the wait is logged.
const slowWait = time.Second

// RateLimiter paces calls shared by the translator and the summary generator.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter allows qps calls per second with a burst of qps.
func NewRateLimiter(qps int) *RateLimiter {
	if qps <= 0 {
		qps = DefaultRateLimit
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(qps), qps)}
}

// Wait blocks until a call may proceed or ctx is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	start := time.Now()
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	if waited := time.Since(start); waited >= slowWait {
		logger.Debug("ai call throttled", "module", "ai", "action", "wait", "resource", "rate_limit", "result", "ok", "waited_ms", waited.Milliseconds())
	}
	return nil
}

// Limit returns the configured calls per second.
func (r *RateLimiter) Limit() int {
	return int(r.limiter.Limit())
}

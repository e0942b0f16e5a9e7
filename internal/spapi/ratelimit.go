package spapi

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sellerdash/sellerdash/internal/metrics"
)

// DefaultCategory is the rate-limit bucket used for calls whose category
// has no configured rule.
const DefaultCategory = "default"

// RateSpec configures one rate-limit category: at most MaxRequests calls
// within any trailing Period.
type RateSpec struct {
	MaxRequests int
	Period      time.Duration
}

// CategoryLimiter implements Throttler with a sliding-window limiter per
// category. Unlike a token bucket it grants no burst credit: it strictly
// bounds calls per trailing window. Each category keeps an ordered log
// of admission timestamps, pruned on every check, so a saturated slow
// bucket (reports) never delays a fast one (inventory).
type CategoryLimiter struct {
	mu      sync.Mutex
	specs   map[string]RateSpec
	calls   map[string][]time.Time
	nowFunc func() time.Time // for testing
}

// LimiterOption configures the CategoryLimiter.
type LimiterOption func(*CategoryLimiter)

// WithLimiterNowFunc overrides the time function for testing. Waits
// still sleep in real time; only window arithmetic uses the override.
func WithLimiterNowFunc(f func() time.Time) LimiterOption {
	return func(l *CategoryLimiter) {
		l.nowFunc = f
	}
}

// NewCategoryLimiter creates a limiter from per-category specs. A
// "default" spec is added if the map lacks one.
func NewCategoryLimiter(specs map[string]RateSpec, opts ...LimiterOption) *CategoryLimiter {
	l := &CategoryLimiter{
		specs:   make(map[string]RateSpec, len(specs)+1),
		calls:   make(map[string][]time.Time),
		nowFunc: time.Now,
	}
	for name, spec := range specs {
		l.specs[name] = spec
	}
	if _, ok := l.specs[DefaultCategory]; !ok {
		l.specs[DefaultCategory] = RateSpec{MaxRequests: 5, Period: time.Second}
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Wait blocks until the category's window admits another call, or the
// context is canceled. The admission timestamp is recorded only after
// any wait, so concurrent waiters cannot overfill the window.
func (l *CategoryLimiter) Wait(ctx context.Context, category string) error {
	for {
		wait, bucket := l.tryAdmit(category)
		if wait <= 0 {
			return nil
		}

		metrics.ThrottleWaitSeconds.
			WithLabelValues(bucket).
			Observe(wait.Seconds())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("rate limiter wait: %w", ctx.Err())
		case <-timer.C:
		}
	}
}

// tryAdmit prunes the category's log and either records an admission
// (returning zero) or returns how long to wait before retrying, along
// with the resolved bucket name.
func (l *CategoryLimiter) tryAdmit(category string) (time.Duration, string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket := category
	spec, ok := l.specs[bucket]
	if !ok {
		bucket = DefaultCategory
		spec = l.specs[bucket]
	}

	now := l.nowFunc()
	log := l.pruneLocked(bucket, spec, now)

	if len(log) < spec.MaxRequests {
		l.calls[bucket] = append(log, now)
		return 0, bucket
	}

	return spec.Period - now.Sub(log[0]), bucket
}

// pruneLocked drops timestamps older than the spec's period. Pruning on
// every check bounds the log to MaxRequests entries per category.
func (l *CategoryLimiter) pruneLocked(bucket string, spec RateSpec, now time.Time) []time.Time {
	log := l.calls[bucket]
	cutoff := now.Add(-spec.Period)

	i := 0
	for i < len(log) && !log[i].After(cutoff) {
		i++
	}
	if i > 0 {
		log = append(log[:0], log[i:]...)
		l.calls[bucket] = log
	}
	return log
}

// CategoryUsage is a point-in-time view of one bucket's window.
type CategoryUsage struct {
	MaxRequests int
	Period      time.Duration
	Used        int
}

// Snapshot returns current usage for every configured category.
func (l *CategoryLimiter) Snapshot() map[string]CategoryUsage {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.nowFunc()
	out := make(map[string]CategoryUsage, len(l.specs))
	for bucket, spec := range l.specs {
		log := l.pruneLocked(bucket, spec, now)
		out[bucket] = CategoryUsage{
			MaxRequests: spec.MaxRequests,
			Period:      spec.Period,
			Used:        len(log),
		}
	}
	return out
}

// Categories returns the configured category names in sorted order.
func (l *CategoryLimiter) Categories() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	names := make([]string, 0, len(l.specs))
	for name := range l.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

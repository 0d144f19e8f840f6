// Package ratelimit implements the sliding-window request limiter shared
// by every scraper facade. The window is a list of request timestamps,
// pruned from the front only since timestamps never decrease.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Limiter allows at most Max requests within the trailing Window.
type Limiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	history []time.Time

	// overridable for tests
	now func() time.Time
}

func New(max int, window time.Duration) (*Limiter, error) {
	if max <= 0 {
		return nil, fmt.Errorf("ratelimit: max requests must be positive, got %d", max)
	}
	if window <= 0 {
		return nil, fmt.Errorf("ratelimit: window must be positive, got %s", window)
	}
	return &Limiter{
		max:    max,
		window: window,
		now:    time.Now,
	}, nil
}

// Acquire blocks until issuing one more request stays within the limit,
// records the request timestamp and returns. The only error outcomes are
// a cancelled or expired context.
//
// Holding the lock while waiting keeps the read-then-append atomic: no
// later caller can slip a request in ahead of one already waiting.
func (l *Limiter) Acquire(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := l.now()
		l.prune(now)
		if len(l.history) < l.max {
			l.history = append(l.history, now)
			return nil
		}

		wait := l.history[0].Add(l.window).Sub(now)
		if wait <= 0 {
			continue
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *Limiter) prune(now time.Time) {
	cutoff := now.Add(-l.window)
	i := 0
	for i < len(l.history) && !l.history[i].After(cutoff) {
		i++
	}
	l.history = l.history[i:]
}

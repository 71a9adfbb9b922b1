package http

import (
	"time"

	"github.com/benbjohnson/clock"
)

// rateLimiter counts frames in fixed windows. It is owned by a single read loop.
type rateLimiter struct {
	limit   int
	window  time.Duration
	clock   clock.Clock
	start   time.Time
	counter int
}

func newRateLimiter(limit int, window time.Duration, clk clock.Clock) *rateLimiter {
	if limit <= 0 {
		return &rateLimiter{limit: 0}
	}
	if clk == nil {
		clk = clock.New()
	}
	return &rateLimiter{
		limit:  limit,
		window: window,
		clock:  clk,
		start:  clk.Now(),
	}
}

func (r *rateLimiter) allow() bool {
	if r == nil || r.limit <= 0 {
		return true
	}
	now := r.clock.Now()
	if now.Sub(r.start) >= r.window {
		r.start = now
		r.counter = 0
	}
	r.counter++
	return r.counter <= r.limit
}

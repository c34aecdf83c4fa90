package rest

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// saturation above which the limiter starts backing off instead of
	// relying on the proactive bucket alone
	saturationThreshold = 0.9

	// pause applied when the reported bucket is close to full; Shopify
	// restores capacity with a leak rate of 2 calls per second
	saturationPause = 2 * time.Second
)

// Limiter throttles page fetches with a proactive token bucket and adjusts
// reactively from the X-Shopify-Shop-Api-Call-Limit header ("32/40"). The
// fetch loop blocks on Wait before every request; cancellation flows
// through ctx.
type Limiter struct {
	mu        sync.Mutex
	bucket    *rate.Limiter
	notBefore time.Time
}

func NewLimiter(callsPerSecond float64) *Limiter {
	return &Limiter{
		bucket: rate.NewLimiter(rate.Limit(callsPerSecond), 1),
	}
}

// Wait blocks until a request may be issued
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	pause := time.Until(l.notBefore)
	l.mu.Unlock()

	if pause > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pause):
		}
	}

	return l.bucket.Wait(ctx)
}

// Observe feeds the call-limit header of a completed response back into the
// limiter. Unparseable headers are ignored.
func (l *Limiter) Observe(callLimitHeader string) {
	used, total, ok := parseCallLimit(callLimitHeader)
	if !ok || total == 0 {
		return
	}

	if float64(used)/float64(total) >= saturationThreshold {
		l.mu.Lock()
		l.notBefore = time.Now().Add(saturationPause)
		l.mu.Unlock()
	}
}

func parseCallLimit(header string) (used, total int, ok bool) {
	usedPart, totalPart, found := strings.Cut(strings.TrimSpace(header), "/")
	if !found {
		return 0, 0, false
	}

	used, err := strconv.Atoi(usedPart)
	if err != nil {
		return 0, 0, false
	}

	total, err = strconv.Atoi(totalPart)
	if err != nil {
		return 0, 0, false
	}

	return used, total, true
}

// Package ratelimit provides an adaptive client-side rate limiter for shared
// external endpoints: the allowed rate climbs while requests succeed and is
// cut when the upstream pushes back.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Adaptive wraps a token-bucket limiter whose rate self-tunes between a
// floor and a ceiling. Safe for concurrent use.
type Adaptive struct {
	mu       sync.Mutex
	limiter  *rate.Limiter
	min      rate.Limit
	max      rate.Limit
	stepUp   rate.Limit
	stepDown float64
	lastFail time.Time
}

// NewAdaptive builds a limiter starting at initial requests per second,
// bounded by [min, max]. On success the rate grows by stepUp; on failure it
// is multiplied by stepDown (e.g. 0.5 halves it).
func NewAdaptive(initial, min, max, stepUp rate.Limit, stepDown float64) *Adaptive {
	if initial < min {
		initial = min
	}
	burst := int(initial)
	if burst < 1 {
		burst = 1
	}
	return &Adaptive{
		limiter:  rate.NewLimiter(initial, burst),
		min:      min,
		max:      max,
		stepUp:   stepUp,
		stepDown: stepDown,
	}
}

// Wait blocks until a token is available or ctx is done.
func (a *Adaptive) Wait(ctx context.Context) error {
	return a.limiter.Wait(ctx)
}

// Success nudges the rate up, unless a failure happened in the last few
// seconds (avoids oscillating right after a cut).
func (a *Adaptive) Success() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if time.Since(a.lastFail) > 10*time.Second {
		a.set(a.limiter.Limit() + a.stepUp)
	}
}

// Failure cuts the rate after a timeout or upstream rejection.
func (a *Adaptive) Failure() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastFail = time.Now()
	a.set(rate.Limit(float64(a.limiter.Limit()) * a.stepDown))
}

// Rate returns the current requests per second.
func (a *Adaptive) Rate() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return float64(a.limiter.Limit())
}

func (a *Adaptive) set(next rate.Limit) {
	if next > a.max {
		next = a.max
	}
	if next < a.min {
		next = a.min
	}
	if next == a.limiter.Limit() {
		return
	}
	a.limiter.SetLimit(next)
	burst := int(next)
	if burst < 1 {
		burst = 1
	}
	a.limiter.SetBurst(burst)
}

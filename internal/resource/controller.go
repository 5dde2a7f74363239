package resource

import (
	"context"
	"math"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds admission limits.
type Config struct {
	// MaxConcurrentSearches is the maximum number of searches in flight.
	// If 0, unlimited.
	MaxConcurrentSearches int64

	// QueriesPerSecond is the sustained query rate.
	// If 0, unlimited.
	QueriesPerSecond float64

	// Burst is the number of queries admitted at once above the sustained rate.
	// If 0, defaults to ceil(QueriesPerSecond).
	Burst int
}

// Controller gates searches.
type Controller struct {
	cfg Config

	sem      *semaphore.Weighted // nil if unlimited
	limiter  *rate.Limiter       // nil if unlimited
	inFlight atomic.Int64
}

// NewController creates a new admission controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MaxConcurrentSearches > 0 {
		c.sem = semaphore.NewWeighted(cfg.MaxConcurrentSearches)
	}

	if cfg.QueriesPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = int(math.Ceil(cfg.QueriesPerSecond))
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.QueriesPerSecond), burst)
	}

	return c
}

// Acquire waits for a rate token and a concurrency slot, or until ctx is done.
// Every successful Acquire must be paired with Release.
func (c *Controller) Acquire(ctx context.Context) error {
	if c == nil {
		return ctx.Err()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	if c.sem != nil {
		if err := c.sem.Acquire(ctx, 1); err != nil {
			return err
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	c.inFlight.Add(1)
	return nil
}

// TryAcquire admits a search without blocking.
// Returns false if either limit is exhausted.
func (c *Controller) TryAcquire() bool {
	if c == nil {
		return true
	}

	if c.sem != nil && !c.sem.TryAcquire(1) {
		return false
	}

	if c.limiter != nil && !c.limiter.Allow() {
		if c.sem != nil {
			c.sem.Release(1)
		}
		return false
	}

	c.inFlight.Add(1)
	return true
}

// Release frees the concurrency slot taken by Acquire or TryAcquire.
func (c *Controller) Release() {
	if c == nil {
		return
	}
	if c.sem != nil {
		c.sem.Release(1)
	}
	c.inFlight.Add(-1)
}

// InFlight returns the number of admitted searches not yet released.
func (c *Controller) InFlight() int64 {
	if c == nil {
		return 0
	}
	return c.inFlight.Load()
}

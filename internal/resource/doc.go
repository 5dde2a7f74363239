// Package resource implements admission control for searches on a shared index.
//
// The Controller combines two limits:
//
//   - Concurrency: a weighted semaphore bounds searches in flight
//   - Rate: a token bucket bounds queries per second
//
// Example:
//
//	rc := resource.NewController(resource.Config{
//	    MaxConcurrentSearches: 8,
//	    QueriesPerSecond:      500,
//	})
//
//	if err := rc.Acquire(ctx); err != nil {
//	    return err
//	}
//	defer rc.Release()
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully; they become no-ops.
package resource

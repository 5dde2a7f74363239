package vaf

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Implementations used with a shared index must be safe for concurrent use.
type MetricsCollector interface {
	// RecordAdd is called after each add operation.
	RecordAdd(duration time.Duration, err error)

	// RecordBatchAdd is called after each batch add operation.
	// count is the number of records in the batch; err is non-nil when the
	// batch was rejected.
	RecordBatchAdd(count int, duration time.Duration, err error)

	// RecordSearch is called after each search operation.
	// k is the number of neighbors requested, candidates the number of records
	// that passed the filter.
	RecordSearch(k, candidates int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(time.Duration, error)              {}
func (NoopMetricsCollector) RecordBatchAdd(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordSearch(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount         atomic.Int64
	AddErrors        atomic.Int64
	AddTotalNanos    atomic.Int64
	BatchAddCount    atomic.Int64
	BatchAddRecords  atomic.Int64
	BatchAddErrors   atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchCandidates atomic.Int64
	SearchTotalNanos atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(duration time.Duration, err error) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AddErrors.Add(1)
	}
}

// RecordBatchAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchAdd(count int, duration time.Duration, err error) {
	b.BatchAddCount.Add(1)
	if err != nil {
		b.BatchAddErrors.Add(1)
		return
	}
	b.BatchAddRecords.Add(int64(count))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(k, candidates int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
		return
	}
	b.SearchCandidates.Add(int64(candidates))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:         b.AddCount.Load(),
		AddErrors:        b.AddErrors.Load(),
		AddAvgNanos:      avg(b.AddTotalNanos.Load(), b.AddCount.Load()),
		BatchAddCount:    b.BatchAddCount.Load(),
		BatchAddRecords:  b.BatchAddRecords.Load(),
		BatchAddErrors:   b.BatchAddErrors.Load(),
		SearchCount:      b.SearchCount.Load(),
		SearchErrors:     b.SearchErrors.Load(),
		SearchCandidates: b.SearchCandidates.Load(),
		SearchAvgNanos:   avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount         int64
	AddErrors        int64
	AddAvgNanos      int64
	BatchAddCount    int64
	BatchAddRecords  int64
	BatchAddErrors   int64
	SearchCount      int64
	SearchErrors     int64
	SearchCandidates int64
	SearchAvgNanos   int64
}

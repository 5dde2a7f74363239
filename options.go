package vaf

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	capacity         int
	metadataIndex    bool
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		metadataIndex:    true,
	}
}

// Option configures Index construction.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := vaf.NewJSONLogger(slog.LevelDebug)
//	idx, _ := vaf.New(384, "cosine", vaf.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &vaf.BasicMetricsCollector{}
//	idx, _ := vaf.New(384, "l2", vaf.WithMetricsCollector(metrics))
//	// ... use idx ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithCapacity preallocates room for n records.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithMetadataIndex enables or disables the inverted attribute index (enabled
// by default).
//
// With the index, a filtered search resolves matching records from posting
// bitmaps and scores only those. Without it, every record is checked against
// the filter during the scan, which saves the posting memory.
func WithMetadataIndex(enabled bool) Option {
	return func(o *options) {
		o.metadataIndex = enabled
	}
}

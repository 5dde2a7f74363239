package shared

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vaf"
	"github.com/hupe1980/vaf/internal/resource"
	"github.com/hupe1980/vaf/metadata"
	"github.com/hupe1980/vaf/model"
)

// Options configures a shared Index.
type Options struct {
	// Parallelism bounds the goroutines used by SearchBatch.
	// Defaults to runtime.GOMAXPROCS(0).
	Parallelism int

	// MaxConcurrentSearches bounds searches in flight across all callers.
	// If 0, unlimited.
	MaxConcurrentSearches int64

	// QueriesPerSecond bounds the sustained search rate.
	// If 0, unlimited.
	QueriesPerSecond float64

	// Burst is the rate limiter bucket size. Defaults to ceil(QueriesPerSecond).
	Burst int
}

// Index is a vaf.Index guarded for concurrent use.
type Index struct {
	mu          sync.RWMutex
	idx         *vaf.Index
	rc          *resource.Controller
	parallelism int
}

// New wraps idx. The caller must not use idx directly afterwards.
func New(idx *vaf.Index, optFns ...func(o *Options)) *Index {
	opts := Options{
		Parallelism: runtime.GOMAXPROCS(0),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Parallelism < 1 {
		opts.Parallelism = 1
	}

	var rc *resource.Controller
	if opts.MaxConcurrentSearches > 0 || opts.QueriesPerSecond > 0 {
		rc = resource.NewController(resource.Config{
			MaxConcurrentSearches: opts.MaxConcurrentSearches,
			QueriesPerSecond:      opts.QueriesPerSecond,
			Burst:                 opts.Burst,
		})
	}

	return &Index{
		idx:         idx,
		rc:          rc,
		parallelism: opts.Parallelism,
	}
}

// Dimension returns the vector dimension of the wrapped index.
func (s *Index) Dimension() int {
	return s.idx.Dimension()
}

// Len returns the number of stored records.
func (s *Index) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.idx.Len()
}

func (s *Index) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.idx.String()
}

// Add inserts a record under the write lock.
func (s *Index) Add(id uint64, vector []float32, md metadata.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.idx.Add(id, vector, md)
}

// AddBatch inserts records atomically under the write lock.
func (s *Index) AddBatch(records []model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.idx.AddBatch(records)
}

// Search runs one query under the read lock. It blocks on the admission
// controller, if configured, until ctx is done.
func (s *Index) Search(ctx context.Context, query []float32, k int, optFns ...func(o *vaf.SearchOptions)) ([]vaf.SearchResult, error) {
	if err := s.rc.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.rc.Release()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.idx.Search(query, k, optFns...)
}

// SearchBatch runs queries in parallel. results[i] answers queries[i].
// The first error cancels the remaining queries and is returned.
func (s *Index) SearchBatch(ctx context.Context, queries [][]float32, k int, optFns ...func(o *vaf.SearchOptions)) ([][]vaf.SearchResult, error) {
	results := make([][]vaf.SearchResult, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for i, q := range queries {
		g.Go(func() error {
			res, err := s.Search(ctx, q, k, optFns...)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

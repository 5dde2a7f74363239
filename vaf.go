package vaf

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"time"

	"github.com/hupe1980/vaf/distance"
	"github.com/hupe1980/vaf/internal/searcher"
	"github.com/hupe1980/vaf/metadata"
	metaindex "github.com/hupe1980/vaf/metadata/index"
	"github.com/hupe1980/vaf/model"
)

// SearchResult is a ranked (ID, Score) pair.
type SearchResult = model.SearchResult

// Record is a stored (ID, Vector, Metadata) unit.
type Record = model.Record

// maxRecords bounds the index so every position fits a 32-bit bitmap member.
const maxRecords = math.MaxUint32

// Index is a brute-force vector index.
type Index struct {
	dim      int
	metric   distance.Metric
	distFunc distance.Func
	records  []model.Record

	// postings is nil when the metadata index is disabled.
	postings *metaindex.InvertedIndex

	logger  *Logger
	metrics MetricsCollector
}

// New creates an index for dim-dimensional vectors under the metric named by
// tag ("l2" or "cosine").
//
// It fails with *ErrInvalidDimension if dim is not positive and with
// *ErrInvalidMetric if tag is not recognized; both match ErrInvalidConfig.
func New(dim int, metric string, opts ...Option) (*Index, error) {
	m, err := distance.ParseMetric(metric)
	if err != nil {
		return nil, &ErrInvalidMetric{Metric: metric, cause: err}
	}
	return NewWithMetric(dim, m, opts...)
}

// NewWithMetric is like New but takes the metric value directly.
func NewWithMetric(dim int, metric distance.Metric, opts ...Option) (*Index, error) {
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}

	fn, err := distance.Provider(metric)
	if err != nil {
		return nil, &ErrInvalidMetric{Metric: metric.String(), cause: err}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	idx := &Index{
		dim:      dim,
		metric:   metric,
		distFunc: fn,
		records:  make([]model.Record, 0, o.capacity),
		logger:   o.logger.WithDimension(dim).WithMetric(metric.Tag()),
		metrics:  o.metricsCollector,
	}
	if o.metadataIndex {
		idx.postings = metaindex.New()
	}

	return idx, nil
}

// Dimension returns the vector length the index accepts.
func (idx *Index) Dimension() int {
	return idx.dim
}

// Metric returns the metric used for scoring.
func (idx *Index) Metric() distance.Metric {
	return idx.metric
}

// Len returns the number of stored records.
func (idx *Index) Len() int {
	return len(idx.records)
}

func (idx *Index) String() string {
	return fmt.Sprintf("Index(metric=%s, dim=%d)", idx.metric.Tag(), idx.dim)
}

// Add stores a record. The vector and attributes are copied.
//
// It fails with *ErrDimensionMismatch if len(vector) differs from the index
// dimension; the index is left unchanged. IDs are not checked for uniqueness.
func (idx *Index) Add(id uint64, vector []float32, md metadata.Document) error {
	start := time.Now()
	err := idx.add(id, vector, md)
	idx.metrics.RecordAdd(time.Since(start), err)
	idx.logger.LogAdd(id, len(idx.records), err)
	return err
}

func (idx *Index) add(id uint64, vector []float32, md metadata.Document) error {
	if err := checkDimension(idx.dim, vector); err != nil {
		return err
	}
	if int64(len(idx.records)) >= maxRecords {
		return ErrIndexFull
	}

	idx.appendRecord(model.Record{
		ID:       id,
		Vector:   slices.Clone(vector),
		Metadata: md.Clone(),
	})
	return nil
}

// AddBatch stores all records or none of them.
//
// Every vector is validated before the first one is stored. A rejected batch
// returns *ErrBatch naming the offending position.
func (idx *Index) AddBatch(records []model.Record) error {
	start := time.Now()
	err := idx.addBatch(records)
	idx.metrics.RecordBatchAdd(len(records), time.Since(start), err)
	idx.logger.LogBatchAdd(len(records), err)
	return err
}

func (idx *Index) addBatch(records []model.Record) error {
	for i, rec := range records {
		if err := checkDimension(idx.dim, rec.Vector); err != nil {
			return &ErrBatch{Position: i, ID: rec.ID, cause: err}
		}
	}
	if int64(len(records)) > maxRecords-int64(len(idx.records)) {
		return ErrIndexFull
	}

	idx.records = slices.Grow(idx.records, len(records))
	for _, rec := range records {
		idx.appendRecord(rec.Clone())
	}
	return nil
}

func (idx *Index) appendRecord(rec model.Record) {
	pos := uint32(len(idx.records))
	idx.records = append(idx.records, rec)
	if idx.postings != nil && len(rec.Metadata) > 0 {
		idx.postings.Add(pos, rec.Metadata)
	}
}

// SearchOptions contains options for Search.
type SearchOptions struct {
	// Filter restricts candidates to records whose attributes match every
	// equality. Nil or empty matches all records.
	Filter *metadata.FilterSet
}

// WithFilters restricts a search to records holding every key with exactly
// the given value.
func WithFilters(required map[string]string) func(o *SearchOptions) {
	return func(o *SearchOptions) {
		o.Filter = metadata.FromMap(required)
	}
}

// WithFilterSet restricts a search to records matching fs.
func WithFilterSet(fs *metadata.FilterSet) func(o *SearchOptions) {
	return func(o *SearchOptions) {
		o.Filter = fs
	}
}

// Search returns the k candidates closest to query, ascending by score.
//
// Candidates are the records passing the filter. Equal scores rank the
// earlier-inserted record first. The result holds min(k, candidates) entries;
// it is empty, not an error, when nothing qualifies.
//
// It fails with *ErrDimensionMismatch if len(query) differs from the index
// dimension and with ErrInvalidK if k is negative.
func (idx *Index) Search(query []float32, k int, optFns ...func(o *SearchOptions)) ([]SearchResult, error) {
	var opts SearchOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	start := time.Now()
	results, candidates, err := idx.search(query, k, opts.Filter)
	idx.metrics.RecordSearch(k, candidates, time.Since(start), err)
	idx.logger.LogSearch(k, candidates, len(results), err)
	return results, err
}

func (idx *Index) search(query []float32, k int, fs *metadata.FilterSet) ([]SearchResult, int, error) {
	if k < 0 {
		return nil, 0, ErrInvalidK
	}
	if err := checkDimension(idx.dim, query); err != nil {
		return nil, 0, err
	}
	if k == 0 {
		return []SearchResult{}, 0, nil
	}

	topk := searcher.NewTopK(k, len(idx.records))
	candidates := 0
	for pos, rec := range idx.candidates(fs) {
		candidates++
		topk.Push(searcher.Candidate{
			Seq:   pos,
			ID:    rec.ID,
			Score: idx.distFunc(query, rec.Vector),
		})
	}

	return topk.Results(), candidates, nil
}

// candidates yields the records passing fs with their positions, in
// insertion order.
func (idx *Index) candidates(fs *metadata.FilterSet) iter.Seq2[uint32, *model.Record] {
	return func(yield func(uint32, *model.Record) bool) {
		if idx.postings != nil {
			if bm, ok := idx.postings.Resolve(fs); ok {
				for pos := range metaindex.Positions(bm) {
					if !yield(pos, &idx.records[pos]) {
						return
					}
				}
				return
			}
		}

		for i := range idx.records {
			rec := &idx.records[i]
			if !fs.Matches(rec.Metadata) {
				continue
			}
			if !yield(uint32(i), rec) {
				return
			}
		}
	}
}

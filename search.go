// Fluent search API for querying an Index.

package vaf

import (
	"iter"

	"github.com/hupe1980/vaf/metadata"
)

// defaultK is the number of results Query returns unless KNN is called.
const defaultK = 3

// Query creates a new fluent search builder for the given query vector.
//
// Example:
//
//	results, err := idx.Query(q).
//	    KNN(10).
//	    Where("lang", "en").
//	    Execute()
//
//	// Or with streaming:
//	for result, err := range idx.Query(q).KNN(100).Stream() {
//	    if err != nil { break }
//	    if result.Score > threshold { break }
//	    process(result)
//	}
func (idx *Index) Query(query []float32) *QueryBuilder {
	return &QueryBuilder{
		idx:   idx,
		query: query,
		k:     defaultK,
	}
}

// QueryBuilder is a fluent builder for constructing search queries.
type QueryBuilder struct {
	idx     *Index
	query   []float32
	k       int
	filters []metadata.Filter
}

// KNN sets the number of nearest neighbors to return.
func (qb *QueryBuilder) KNN(k int) *QueryBuilder {
	qb.k = k
	return qb
}

// Where requires key to hold exactly value. Calls accumulate with AND semantics.
func (qb *QueryBuilder) Where(key, value string) *QueryBuilder {
	qb.filters = append(qb.filters, metadata.Eq(key, value))
	return qb
}

// Filter adds every filter of fs.
func (qb *QueryBuilder) Filter(fs *metadata.FilterSet) *QueryBuilder {
	if !fs.IsEmpty() {
		qb.filters = append(qb.filters, fs.Filters...)
	}
	return qb
}

// Execute runs the search and returns the results.
func (qb *QueryBuilder) Execute() ([]SearchResult, error) {
	return qb.idx.Search(qb.query, qb.k, WithFilterSet(metadata.And(qb.filters...)))
}

// MustExecute runs the search, panicking on error.
// Use this only in tests or when you're certain the query is valid.
func (qb *QueryBuilder) MustExecute() []SearchResult {
	results, err := qb.Execute()
	if err != nil {
		panic(err)
	}
	return results
}

// Stream returns an iterator over search results, nearest first.
// The iterator supports early termination by breaking from the loop.
func (qb *QueryBuilder) Stream() iter.Seq2[SearchResult, error] {
	return func(yield func(SearchResult, error) bool) {
		results, err := qb.Execute()
		if err != nil {
			yield(SearchResult{}, err)
			return
		}
		for _, r := range results {
			if !yield(r, nil) {
				return
			}
		}
	}
}

// First returns only the nearest result, or ErrNotFound if none qualifies.
func (qb *QueryBuilder) First() (SearchResult, error) {
	qb.k = 1
	results, err := qb.Execute()
	if err != nil {
		return SearchResult{}, err
	}
	if len(results) == 0 {
		return SearchResult{}, ErrNotFound
	}
	return results[0], nil
}

// Count executes the search and returns the number of results.
func (qb *QueryBuilder) Count() (int, error) {
	results, err := qb.Execute()
	if err != nil {
		return 0, err
	}
	return len(results), nil
}

// Exists checks if at least one record qualifies.
func (qb *QueryBuilder) Exists() (bool, error) {
	qb.k = 1
	results, err := qb.Execute()
	if err != nil {
		return false, err
	}
	return len(results) > 0, nil
}

// Package shared wraps a vaf.Index for use from many goroutines.
//
// A vaf.Index is not safe for concurrent mutation. Index adds a
// readers-writer lock around it: Add and AddBatch take the write lock,
// searches take the read lock and run in parallel with each other.
//
// Searches may additionally pass through an admission controller that
// bounds the number in flight and the query rate:
//
//	idx, _ := vaf.New(128, "cosine")
//	s := shared.New(idx, func(o *shared.Options) {
//	    o.MaxConcurrentSearches = 16
//	    o.QueriesPerSecond = 1000
//	})
//
//	results, err := s.SearchBatch(ctx, queries, 10)
package shared

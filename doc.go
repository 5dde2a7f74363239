// Package vaf provides an embeddable in-memory vector index for Go.
//
// An Index stores fixed-dimension float32 vectors, each tagged with a
// caller-assigned uint64 ID and string attributes, and answers "k most similar
// to this query" requests by scanning every candidate exactly:
//
//   - Metrics: squared L2 and cosine distance, fixed at construction
//   - Attribute filters: conjunctions of exact key=value equalities
//   - Deterministic ranking: ascending score, ties in insertion order
//   - Roaring Bitmap inverted index to resolve filtered candidates
//
// # Quick Start
//
//	idx, err := vaf.New(3, "cosine")
//	if err != nil {
//	    panic(err)
//	}
//
//	_ = idx.Add(1, []float32{0.1, 0.2, 0.3}, metadata.Document{"lang": "en"})
//	_ = idx.Add(2, []float32{0.3, 0.2, 0.1}, metadata.Document{"lang": "fr"})
//
//	results, err := idx.Search([]float32{0.1, 0.2, 0.25}, 10,
//	    vaf.WithFilters(map[string]string{"lang": "en"}))
//
// Or with the fluent API:
//
//	results, err := idx.Query(q).KNN(10).Where("lang", "en").Execute()
//
// # Concurrency
//
// An Index performs no internal locking. Concurrent Search calls on an index
// that is not being modified are safe; any mutation must be serialized with
// every other call. Package shared provides a locking wrapper.
package vaf

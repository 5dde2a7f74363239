// Package testutil provides testing utilities for vaf.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random vectors and attributes and for
// computing a reference ranking by exhaustive stable sort.
//
// # Random Data Generation
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.UniformVectors(1000, 128)  // uniform [0, 1)
//	vecs := rng.GridVectors(1000, 4, 3)    // small integers, many ties
//	docs := rng.Documents(1000, []string{"lang"}, []string{"en", "fr"})
//
// # Reference Ranking
//
//	want := testutil.ExactTopK(query, records, k, filter, distance.SquaredL2)
package testutil

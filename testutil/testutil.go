package testutil

import (
	"cmp"
	"math"
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/vaf/distance"
	"github.com/hupe1980/vaf/metadata"
	"github.com/hupe1980/vaf/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillUniform fills dst with random values in range [0, 1).
// Locks only once per call (preferred over calling Float32 in a loop).
func (r *RNG) FillUniform(dst []float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Float32()
	}
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float32()
		}
		vectors[i] = vec
	}

	return vectors
}

// UnitVectors generates L2-normalized random vectors (on the hypersphere).
// Uses Gaussian distribution for uniform distribution on the sphere.
func (r *RNG) UnitVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		var norm float64
		for j := range vec {
			v := r.rand.NormFloat64()
			vec[j] = float32(v)
			norm += v * v
		}

		if norm == 0 {
			norm = 1
		}

		invNorm := float32(1.0 / math.Sqrt(norm))
		for j := range vec {
			vec[j] *= invNorm
		}
		vectors[i] = vec
	}

	return vectors
}

// GridVectors generates vectors whose components are integers in [0, levels).
// Scores computed from them are exact in float32, so equal distances are
// common; use it to exercise tie-breaking.
func (r *RNG) GridVectors(num, dimensions, levels int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, num*dimensions)
	vectors := make([][]float32, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = float32(r.rand.Intn(levels))
		}
		vectors[i] = vec
	}

	return vectors
}

// Documents generates n attribute documents. Each key is present with
// probability 3/4 and takes a uniformly chosen value.
func (r *RNG) Documents(n int, keys, values []string) []metadata.Document {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs := make([]metadata.Document, n)
	for i := range n {
		doc := make(metadata.Document, len(keys))
		for _, k := range keys {
			if r.rand.Intn(4) == 0 {
				continue
			}
			doc[k] = values[r.rand.Intn(len(values))]
		}
		docs[i] = doc
	}

	return docs
}

// Records zips vectors and documents into records with IDs drawn from [0, idSpace).
// A small idSpace produces duplicate IDs.
func (r *RNG) Records(vectors [][]float32, docs []metadata.Document, idSpace int) []model.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	recs := make([]model.Record, len(vectors))
	for i, v := range vectors {
		var doc metadata.Document
		if i < len(docs) {
			doc = docs[i]
		}
		recs[i] = model.Record{ID: uint64(r.rand.Intn(idSpace)), Vector: v, Metadata: doc}
	}
	return recs
}

// ExactTopK ranks records against query by scoring every record that passes
// fs and stable-sorting the scores. It is the reference the index must match.
func ExactTopK(query []float32, records []model.Record, k int, fs *metadata.FilterSet, fn distance.Func) []model.SearchResult {
	candidates := metadata.Apply(records, fs)

	results := make([]model.SearchResult, len(candidates))
	for i, rec := range candidates {
		score := fn(query, rec.Vector)
		if math.IsNaN(float64(score)) {
			score = float32(math.Inf(1))
		}
		results[i] = model.SearchResult{ID: rec.ID, Score: score}
	}

	slices.SortStableFunc(results, func(a, b model.SearchResult) int {
		return cmp.Compare(a.Score, b.Score)
	})

	if k < len(results) {
		results = results[:k]
	}
	return results
}

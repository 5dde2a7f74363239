// Package index provides a Roaring Bitmap inverted index over record attributes.
package index

import (
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/vaf/metadata"
)

// InvertedIndex maps every (key, value) attribute pair to the positions of the
// records that carry it. Positions are the records' insertion ordinals, so
// iterating a resolved bitmap visits matches in insertion order.
//
// It is not safe for concurrent mutation; callers serialize Add against
// Resolve.
type InvertedIndex struct {
	// key -> value -> positions
	fields map[string]map[string]*roaring.Bitmap
}

// New creates an empty inverted index.
func New() *InvertedIndex {
	return &InvertedIndex{fields: make(map[string]map[string]*roaring.Bitmap)}
}

// Add records that the document at pos carries each of doc's attributes.
func (ix *InvertedIndex) Add(pos uint32, doc metadata.Document) {
	for k, v := range doc {
		vm, ok := ix.fields[k]
		if !ok {
			vm = make(map[string]*roaring.Bitmap)
			ix.fields[k] = vm
		}
		bm, ok := vm[v]
		if !ok {
			bm = roaring.New()
			vm[v] = bm
		}
		bm.Add(pos)
	}
}

// Postings returns the positions holding key=value, or nil if there are none.
// The returned bitmap must not be modified.
func (ix *InvertedIndex) Postings(key, value string) *roaring.Bitmap {
	vm, ok := ix.fields[key]
	if !ok {
		return nil
	}
	return vm[value]
}

// Cardinality returns the number of positions holding key=value.
func (ix *InvertedIndex) Cardinality(key, value string) uint64 {
	bm := ix.Postings(key, value)
	if bm == nil {
		return 0
	}
	return bm.GetCardinality()
}

// Keys returns the number of distinct attribute keys seen.
func (ix *InvertedIndex) Keys() int {
	return len(ix.fields)
}

// Resolve computes the positions matching every filter in fs.
//
// ok is false when fs is empty, meaning every position matches and no bitmap
// was built. Otherwise the returned bitmap is owned by the caller.
func (ix *InvertedIndex) Resolve(fs *metadata.FilterSet) (bm *roaring.Bitmap, ok bool) {
	if fs.IsEmpty() {
		return nil, false
	}

	sets := make([]*roaring.Bitmap, 0, len(fs.Filters))
	for _, f := range fs.Filters {
		ids := ix.Postings(f.Key, f.Value)
		if ids == nil || ids.IsEmpty() {
			// Key/value doesn't exist; the conjunction is empty.
			return roaring.New(), true
		}
		sets = append(sets, ids)
	}

	// Intersect from the smallest set to reduce work.
	slices.SortFunc(sets, func(a, b *roaring.Bitmap) int {
		ca, cb := a.GetCardinality(), b.GetCardinality()
		switch {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		default:
			return 0
		}
	})

	result := sets[0].Clone()
	for _, s := range sets[1:] {
		result.And(s)
		if result.IsEmpty() {
			break
		}
	}
	return result, true
}

// Positions iterates bm in ascending order.
func Positions(bm *roaring.Bitmap) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := bm.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

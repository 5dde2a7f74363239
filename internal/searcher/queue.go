package searcher

import (
	"math"
	"slices"

	"github.com/hupe1980/vaf/model"
)

// Candidate is a scored record during a scan.
type Candidate struct {
	Seq   uint32  // Insertion sequence of the record; the tie-break key.
	ID    uint64  // Caller-assigned record identifier.
	Score float32 // Distance to the query.
}

// ranksAfter reports whether a ranks after b: higher score, or equal score and
// later insertion.
func ranksAfter(a, b Candidate) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Seq > b.Seq
}

func compare(a, b Candidate) int {
	switch {
	case ranksAfter(a, b):
		return 1
	case ranksAfter(b, a):
		return -1
	default:
		return 0
	}
}

// TopK keeps the k best candidates seen so far.
//
// It is a max-heap on (Score, Seq): the root is the worst retained candidate
// and is evicted when a better one arrives. It does NOT implement
// container/heap to avoid interface overhead.
type TopK struct {
	k     int
	items []Candidate
}

// NewTopK creates a selector for at most k candidates.
// sizeHint bounds the initial allocation.
func NewTopK(k, sizeHint int) *TopK {
	capacity := min(k, sizeHint)
	if capacity < 0 {
		capacity = 0
	}
	return &TopK{
		k:     k,
		items: make([]Candidate, 0, capacity),
	}
}

// Reset clears the selector for reuse with a new k.
func (t *TopK) Reset(k int) {
	t.k = k
	t.items = t.items[:0]
}

// Len returns the number of retained candidates.
func (t *TopK) Len() int {
	return len(t.items)
}

// Push offers a candidate. NaN scores are ranked as +Inf.
func (t *TopK) Push(c Candidate) {
	if t.k <= 0 {
		return
	}
	if c.Score != c.Score {
		c.Score = float32(math.Inf(1))
	}

	if len(t.items) < t.k {
		t.items = append(t.items, c)
		t.siftUp(len(t.items) - 1)
		return
	}

	// Heap is full: replace the worst if c beats it.
	if ranksAfter(t.items[0], c) {
		t.items[0] = c
		t.siftDown(0)
	}
}

// Worst returns the worst retained candidate.
func (t *TopK) Worst() (Candidate, bool) {
	if len(t.items) == 0 {
		return Candidate{}, false
	}
	return t.items[0], true
}

// Candidates returns the retained candidates best first.
// The selector is left empty.
func (t *TopK) Candidates() []Candidate {
	out := slices.Clone(t.items)
	slices.SortFunc(out, compare)
	t.items = t.items[:0]
	return out
}

// Results returns the retained candidates best first as search results.
// The selector is left empty.
func (t *TopK) Results() []model.SearchResult {
	cands := t.Candidates()
	out := make([]model.SearchResult, len(cands))
	for i, c := range cands {
		out[i] = model.SearchResult{ID: c.ID, Score: c.Score}
	}
	return out
}

func (t *TopK) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !ranksAfter(t.items[i], t.items[parent]) {
			break
		}
		t.items[i], t.items[parent] = t.items[parent], t.items[i]
		i = parent
	}
}

func (t *TopK) siftDown(i int) {
	n := len(t.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		child := left
		right := left + 1
		if right < n && ranksAfter(t.items[right], t.items[left]) {
			child = right
		}
		if !ranksAfter(t.items[child], t.items[i]) {
			break
		}
		t.items[i], t.items[child] = t.items[child], t.items[i]
		i = child
	}
}

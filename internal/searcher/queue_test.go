package searcher

import (
	"math"
	"math/rand"
	"slices"
	"testing"
)

func TestTopK(t *testing.T) {
	t.Run("KeepsBest", func(t *testing.T) {
		tk := NewTopK(2, 8)
		tk.Push(Candidate{Seq: 0, ID: 10, Score: 5})
		tk.Push(Candidate{Seq: 1, ID: 11, Score: 1})
		tk.Push(Candidate{Seq: 2, ID: 12, Score: 9})
		tk.Push(Candidate{Seq: 3, ID: 13, Score: 3})

		if tk.Len() != 2 {
			t.Fatalf("expected len 2, got %d", tk.Len())
		}
		worst, ok := tk.Worst()
		if !ok || worst.ID != 13 {
			t.Errorf("expected worst 13, got %+v", worst)
		}

		res := tk.Results()
		if len(res) != 2 || res[0].ID != 11 || res[1].ID != 13 {
			t.Errorf("unexpected results: %v", res)
		}
		if tk.Len() != 0 {
			t.Errorf("expected selector drained, got %d", tk.Len())
		}
	})

	t.Run("TiesKeepInsertionOrder", func(t *testing.T) {
		tk := NewTopK(3, 8)
		for seq := range uint32(6) {
			tk.Push(Candidate{Seq: seq, ID: uint64(100 + seq), Score: 1})
		}
		res := tk.Results()
		ids := []uint64{res[0].ID, res[1].ID, res[2].ID}
		if !slices.Equal(ids, []uint64{100, 101, 102}) {
			t.Errorf("expected earliest inserted ties, got %v", ids)
		}
	})

	t.Run("ZeroK", func(t *testing.T) {
		tk := NewTopK(0, 8)
		tk.Push(Candidate{Seq: 0, ID: 1, Score: 1})
		if tk.Len() != 0 {
			t.Errorf("expected no candidates for k=0")
		}
		if _, ok := tk.Worst(); ok {
			t.Errorf("expected no worst candidate")
		}
		if res := tk.Results(); len(res) != 0 {
			t.Errorf("expected empty results, got %v", res)
		}
	})

	t.Run("NaNRanksLast", func(t *testing.T) {
		tk := NewTopK(3, 3)
		tk.Push(Candidate{Seq: 0, ID: 1, Score: float32(math.NaN())})
		tk.Push(Candidate{Seq: 1, ID: 2, Score: 7})
		tk.Push(Candidate{Seq: 2, ID: 3, Score: float32(math.Inf(1))})

		res := tk.Results()
		if res[0].ID != 2 || res[1].ID != 1 || res[2].ID != 3 {
			t.Errorf("unexpected order: %v", res)
		}
		if !math.IsInf(float64(res[1].Score), 1) {
			t.Errorf("expected NaN reported as +Inf, got %v", res[1].Score)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		tk := NewTopK(1, 1)
		tk.Push(Candidate{Seq: 0, ID: 1, Score: 1})
		tk.Reset(2)
		tk.Push(Candidate{Seq: 0, ID: 2, Score: 2})
		tk.Push(Candidate{Seq: 1, ID: 3, Score: 3})
		if tk.Len() != 2 {
			t.Errorf("expected len 2 after reset, got %d", tk.Len())
		}
	})
}

func TestTopKMatchesStableSort(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for trial := range 50 {
		n := r.Intn(200)
		k := r.Intn(50)
		cands := make([]Candidate, n)
		for i := range cands {
			// Few distinct scores to force ties.
			cands[i] = Candidate{Seq: uint32(i), ID: uint64(r.Intn(20)), Score: float32(r.Intn(8))}
		}

		tk := NewTopK(k, n)
		for _, c := range cands {
			tk.Push(c)
		}
		got := tk.Candidates()

		want := slices.Clone(cands)
		slices.SortStableFunc(want, func(a, b Candidate) int {
			switch {
			case a.Score < b.Score:
				return -1
			case a.Score > b.Score:
				return 1
			default:
				return 0
			}
		})
		want = want[:min(k, n)]

		if !slices.Equal(got, want) {
			t.Fatalf("trial %d (n=%d k=%d): got %v want %v", trial, n, k, got, want)
		}
	}
}

func BenchmarkTopK(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	scores := make([]float32, 10000)
	for i := range scores {
		scores[i] = r.Float32()
	}
	tk := NewTopK(10, 10)
	b.ResetTimer()
	for b.Loop() {
		tk.Reset(10)
		for i, s := range scores {
			tk.Push(Candidate{Seq: uint32(i), ID: uint64(i), Score: s})
		}
		_ = tk.Candidates()
	}
}

package vaf_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/vaf"
	"github.com/hupe1980/vaf/metadata"
	"github.com/hupe1980/vaf/model"
)

// Example_search demonstrates ranking by squared L2 distance.
func Example_search() {
	idx, err := vaf.New(2, "l2")
	if err != nil {
		log.Fatal(err)
	}

	_ = idx.Add(1, []float32{0, 1}, nil)
	_ = idx.Add(2, []float32{0, 2}, nil)
	_ = idx.Add(3, []float32{12, 5}, nil)

	results, err := idx.Search([]float32{0, 0}, 2)
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range results {
		fmt.Println(r.ID, r.Score)
	}
	// Output:
	// 1 1
	// 2 4
}

// Example_filter demonstrates restricting candidates by attributes.
func Example_filter() {
	idx, _ := vaf.New(2, "cosine")

	_ = idx.AddBatch([]model.Record{
		model.NewRecord(1, []float32{1, 0}).WithMetadata("lang", "en").Build(),
		model.NewRecord(2, []float32{1, 0}).WithMetadata("lang", "fr").Build(),
		model.NewRecord(3, []float32{0, 1}).WithMetadata("lang", "en").Build(),
	})

	results, _ := idx.Search([]float32{1, 0}, 10, vaf.WithFilters(map[string]string{"lang": "en"}))
	fmt.Println(results)
	// Output: [(1, 0) (3, 1)]
}

// Example_query demonstrates the fluent search API.
func Example_query() {
	idx, _ := vaf.New(2, "l2")
	_ = idx.Add(1, []float32{0, 1}, metadata.Document{"category": "fashion"})
	_ = idx.Add(2, []float32{0, 2}, metadata.Document{"category": "architecture"})

	r, err := idx.Query([]float32{0, 0}).Where("category", "architecture").First()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(r.ID)
	// Output: 2
}

// Example_errors demonstrates the typed construction and validation errors.
func Example_errors() {
	_, err := vaf.New(3, "dot")
	fmt.Println(errors.Is(err, vaf.ErrInvalidConfig))

	idx, _ := vaf.New(3, "l2")
	err = idx.Add(1, []float32{1, 2}, nil)

	var dm *vaf.ErrDimensionMismatch
	fmt.Println(errors.As(err, &dm), dm.Expected, dm.Actual, idx.Len())
	// Output:
	// true
	// true 3 2 0
}

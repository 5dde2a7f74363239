package model

import (
	"testing"

	"github.com/hupe1980/vaf/metadata"
	"github.com/stretchr/testify/assert"
)

func TestRecordBuilder(t *testing.T) {
	rec := NewRecord(7, []float32{1, 2}).
		WithMetadata("lang", "en").
		WithDocument(metadata.Document{"topic": "go"}).
		Build()

	assert.Equal(t, uint64(7), rec.ID)
	assert.Equal(t, []float32{1, 2}, rec.Vector)
	assert.Equal(t, metadata.Document{"lang": "en", "topic": "go"}, rec.Attributes())
}

func TestRecordClone(t *testing.T) {
	rec := NewRecord(1, []float32{1, 2}).WithMetadata("k", "v").Build()
	cp := rec.Clone()

	rec.Vector[0] = 9
	rec.Metadata["k"] = "changed"

	assert.Equal(t, []float32{1, 2}, cp.Vector)
	assert.Equal(t, "v", cp.Metadata["k"])
}

func TestSearchResultString(t *testing.T) {
	assert.Equal(t, "(1, 4)", SearchResult{ID: 1, Score: 4}.String())
}

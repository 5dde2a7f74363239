package model

import (
	"fmt"
	"slices"

	"github.com/hupe1980/vaf/metadata"
)

// Record is the stored unit of an index.
//
// IDs are caller-assigned and not required to be unique.
type Record struct {
	ID       uint64
	Vector   []float32
	Metadata metadata.Document
}

// Attributes returns the record's metadata. It lets metadata.Apply filter records.
func (r Record) Attributes() metadata.Document {
	return r.Metadata
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	return Record{
		ID:       r.ID,
		Vector:   slices.Clone(r.Vector),
		Metadata: r.Metadata.Clone(),
	}
}

// SearchResult is a ranked candidate.
type SearchResult struct {
	// ID is the identifier the record was added with.
	ID uint64

	// Score is the metric's dissimilarity to the query (lower is closer).
	Score float32
}

// String returns a string representation of the SearchResult.
func (r SearchResult) String() string {
	return fmt.Sprintf("(%d, %g)", r.ID, r.Score)
}

// RecordBuilder assembles a Record.
type RecordBuilder struct {
	rec Record
}

// NewRecord starts a record with the given id and vector.
func NewRecord(id uint64, vector []float32) *RecordBuilder {
	return &RecordBuilder{rec: Record{ID: id, Vector: vector}}
}

// WithMetadata sets one attribute.
func (b *RecordBuilder) WithMetadata(key, value string) *RecordBuilder {
	if b.rec.Metadata == nil {
		b.rec.Metadata = make(metadata.Document)
	}
	b.rec.Metadata[key] = value
	return b
}

// WithDocument merges all attributes of doc.
func (b *RecordBuilder) WithDocument(doc metadata.Document) *RecordBuilder {
	for k, v := range doc {
		b.WithMetadata(k, v)
	}
	return b
}

// Build returns the assembled record.
func (b *RecordBuilder) Build() Record {
	return b.rec
}

package metadata

import (
	"fmt"
	"slices"
	"strings"
)

// Filter requires Key to be present with exactly Value.
type Filter struct {
	Key   string
	Value string
}

// Eq returns an equality filter.
func Eq(key, value string) Filter {
	return Filter{Key: key, Value: value}
}

// String returns a string representation of the filter.
func (f Filter) String() string {
	return fmt.Sprintf("%s=%q", f.Key, f.Value)
}

// Matches checks if the provided metadata matches this filter.
func (f Filter) Matches(doc Document) bool {
	value, exists := doc[f.Key]
	if !exists {
		return false
	}
	return value == f.Value
}

// FilterSet is a conjunction of filters.
type FilterSet struct {
	Filters []Filter
}

// And combines filters into a FilterSet.
func And(filters ...Filter) *FilterSet {
	return &FilterSet{Filters: filters}
}

// FromMap builds a FilterSet from key to value equalities.
// Filters are ordered by key so the set is deterministic.
func FromMap(required map[string]string) *FilterSet {
	if len(required) == 0 {
		return &FilterSet{}
	}
	fs := &FilterSet{Filters: make([]Filter, 0, len(required))}
	for k, v := range required {
		fs.Filters = append(fs.Filters, Filter{Key: k, Value: v})
	}
	slices.SortFunc(fs.Filters, func(a, b Filter) int {
		return strings.Compare(a.Key, b.Key)
	})
	return fs
}

// IsEmpty reports whether the set has no filters. A nil set is empty.
func (fs *FilterSet) IsEmpty() bool {
	return fs == nil || len(fs.Filters) == 0
}

// Matches checks if the provided metadata matches all filters in the set.
func (fs *FilterSet) Matches(doc Document) bool {
	if fs == nil {
		return true
	}
	for _, filter := range fs.Filters {
		if !filter.Matches(doc) {
			return false
		}
	}
	return true
}

// String returns a string representation of the set.
func (fs *FilterSet) String() string {
	if fs.IsEmpty() {
		return "{}"
	}
	parts := make([]string, len(fs.Filters))
	for i, f := range fs.Filters {
		parts[i] = f.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Attributed is implemented by anything that carries a Document.
type Attributed interface {
	Attributes() Document
}

// Apply returns the elements of records whose attributes match fs, in their
// original order. An empty fs keeps every element.
func Apply[S ~[]E, E Attributed](records S, fs *FilterSet) S {
	if fs.IsEmpty() {
		return slices.Clone(records)
	}
	out := make(S, 0, len(records))
	for _, r := range records {
		if fs.Matches(r.Attributes()) {
			out = append(out, r)
		}
	}
	return out
}

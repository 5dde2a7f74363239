package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterMatches(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		metadata Document
		want     bool
	}{
		{
			name:     "match",
			filter:   Eq("category", "tech"),
			metadata: Document{"category": "tech"},
			want:     true,
		},
		{
			name:     "no match",
			filter:   Eq("category", "tech"),
			metadata: Document{"category": "sports"},
			want:     false,
		},
		{
			name:     "missing key",
			filter:   Eq("category", "tech"),
			metadata: Document{"lang": "en"},
			want:     false,
		},
		{
			name:     "nil document",
			filter:   Eq("category", "tech"),
			metadata: nil,
			want:     false,
		},
		{
			name:     "empty value present",
			filter:   Eq("category", ""),
			metadata: Document{"category": ""},
			want:     true,
		},
		{
			name:     "empty value missing key",
			filter:   Eq("category", ""),
			metadata: Document{},
			want:     false,
		},
		{
			name:     "no prefix match",
			filter:   Eq("lang", "en"),
			metadata: Document{"lang": "en-US"},
			want:     false,
		},
		{
			name:     "case sensitive",
			filter:   Eq("lang", "en"),
			metadata: Document{"lang": "EN"},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tt.metadata))
		})
	}
}

func TestFilterSetMatches(t *testing.T) {
	doc := Document{"lang": "en", "topic": "fashion"}

	assert.True(t, (*FilterSet)(nil).Matches(doc))
	assert.True(t, And().Matches(doc))
	assert.True(t, And().Matches(nil))
	assert.True(t, And(Eq("lang", "en")).Matches(doc))
	assert.True(t, And(Eq("lang", "en"), Eq("topic", "fashion")).Matches(doc))
	assert.False(t, And(Eq("lang", "en"), Eq("topic", "architecture")).Matches(doc))
	assert.False(t, And(Eq("lang", "en"), Eq("lang", "fr")).Matches(doc))
	assert.False(t, And(Eq("lang", "en"), Eq("year", "2024")).Matches(doc))
}

func TestFromMap(t *testing.T) {
	fs := FromMap(map[string]string{"b": "2", "a": "1", "c": "3"})
	assert.Equal(t, []Filter{Eq("a", "1"), Eq("b", "2"), Eq("c", "3")}, fs.Filters)
	assert.Equal(t, `{a="1", b="2", c="3"}`, fs.String())

	assert.True(t, FromMap(nil).IsEmpty())
	assert.True(t, FromMap(map[string]string{}).IsEmpty())
	assert.Equal(t, "{}", (*FilterSet)(nil).String())
}

func TestDocumentClone(t *testing.T) {
	assert.Nil(t, Document(nil).Clone())

	doc := Document{"k": "v"}
	cp := doc.Clone()
	doc["k"] = "changed"
	assert.Equal(t, "v", cp["k"])

	v, ok := cp.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	_, ok = cp.Get("missing")
	assert.False(t, ok)
}

type item struct {
	id  int
	doc Document
}

func (i item) Attributes() Document { return i.doc }

func TestApply(t *testing.T) {
	items := []item{
		{1, Document{"lang": "en"}},
		{2, Document{"lang": "fr"}},
		{3, nil},
		{4, Document{"lang": "en", "topic": "go"}},
		{5, Document{"lang": "en"}},
	}

	ids := func(in []item) []int {
		out := make([]int, len(in))
		for i, it := range in {
			out[i] = it.id
		}
		return out
	}

	t.Run("Empty filter keeps all", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(Apply(items, nil)))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(Apply(items, And())))
	})

	t.Run("Preserves order", func(t *testing.T) {
		assert.Equal(t, []int{1, 4, 5}, ids(Apply(items, And(Eq("lang", "en")))))
	})

	t.Run("Conjunction", func(t *testing.T) {
		assert.Equal(t, []int{4}, ids(Apply(items, FromMap(map[string]string{"lang": "en", "topic": "go"}))))
	})

	t.Run("No match", func(t *testing.T) {
		assert.Empty(t, Apply(items, And(Eq("lang", "de"))))
	})

	t.Run("Does not alias input", func(t *testing.T) {
		out := Apply(items, nil)
		out[0] = item{id: 99}
		assert.Equal(t, 1, items[0].id)
	})
}

package metadata

import "maps"

// Document holds the attributes of one record.
type Document map[string]string

// Clone returns a copy of the document. A nil document clones to nil.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	return maps.Clone(d)
}

// Get returns the value stored under key.
func (d Document) Get(key string) (string, bool) {
	v, ok := d[key]
	return v, ok
}

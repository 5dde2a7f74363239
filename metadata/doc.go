// Package metadata provides record attributes and equality filtering.
//
// Attributes are flat string to string documents:
//
//	doc := metadata.Document{
//	    "lang":  "en",
//	    "topic": "fashion",
//	}
//
// # Filter Operations
//
// A FilterSet is a conjunction of exact equalities. A document matches when it
// holds every filtered key with exactly the filtered value; a missing key never
// matches. An empty FilterSet matches every document.
//
//	filter := metadata.And(
//	    metadata.Eq("lang", "en"),
//	    metadata.Eq("topic", "fashion"),
//	)
//
// Filters built from a plain map use FromMap:
//
//	filter := metadata.FromMap(map[string]string{"lang": "en"})
//
// # Subpackages
//
//   - index: Roaring Bitmap-based inverted index that resolves a FilterSet to
//     the positions of matching records
package metadata

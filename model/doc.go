// Package model defines the core types shared by the index and its wrappers.
//
// # Data Types
//
//   - Record: identifier, vector and string attributes
//   - SearchResult: identifier and score of a ranked candidate
//
// # Record Builder
//
// Use the fluent API to construct records:
//
//	rec := model.NewRecord(42, vec).
//	    WithMetadata("lang", "en").
//	    Build()
package model

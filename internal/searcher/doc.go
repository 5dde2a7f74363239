// Package searcher implements the bounded top-k selection used by linear scans.
//
// Candidates are ordered by score, then by insertion sequence, so equal scores
// rank the earlier-inserted record first and results are deterministic.
package searcher

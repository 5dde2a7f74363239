// Package distance provides the dissimilarity metrics used to rank vectors.
//
// Every metric returns a score where lower means more similar.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance (no square root is taken)
//   - MetricCosine: 1 - cosine similarity, in [0, 2]
//
// # Usage
//
//	m, err := distance.ParseMetric("cosine")
//	fn, err := distance.Provider(m)
//	score := fn(a, b)
//
// Kernels assume equal-length inputs. Use Distance when the lengths are not
// already known to match.
package distance

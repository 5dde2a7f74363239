package distance

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownMetric is returned when a metric tag or value is not recognized.
	ErrUnknownMetric = errors.New("unknown metric")

	// ErrLengthMismatch is returned when two vectors of different length are compared.
	ErrLengthMismatch = errors.New("vector lengths do not match")
)

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricCosine
)

// Tags accepted by ParseMetric.
const (
	TagL2     = "l2"
	TagCosine = "cosine"
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricCosine:
		return "Cosine"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Tag returns the tag ParseMetric accepts for m.
func (m Metric) Tag() string {
	switch m {
	case MetricL2:
		return TagL2
	case MetricCosine:
		return TagCosine
	default:
		return ""
	}
}

// Valid reports whether m is one of the supported metrics.
func (m Metric) Valid() bool {
	return m == MetricL2 || m == MetricCosine
}

// ParseMetric maps a tag ("l2" or "cosine") to its Metric.
// Unknown tags are rejected; there is no fallback metric.
func ParseMetric(tag string) (Metric, error) {
	switch tag {
	case TagL2:
		return MetricL2, nil
	case TagCosine:
		return MetricCosine, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, tag)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []float32) float32

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return SquaredL2, nil
	case MetricCosine:
		return Cosine, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMetric, m)
	}
}

// Distance computes the score of a and b under m.
// Unlike the raw kernels it fails on a length mismatch.
func Distance(m Metric, a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(a), len(b))
	}
	fn, err := Provider(m)
	if err != nil {
		return 0, err
	}
	return fn(a, b), nil
}

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}
	return ret
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	var d float32
	for i := range a {
		diff := a[i] - b[i]
		d += diff * diff
	}
	return d
}

// Cosine returns 1 - cos(a, b), in [0, 2].
//
// A zero-magnitude input has no direction; Cosine returns +Inf for it so the
// pair ranks after every comparable one.
// Assumes vectors are the same length (caller's responsibility).
func Cosine(a, b []float32) float32 {
	var dot, normA, normB float64
	for i := range a {
		ai, bi := float64(a[i]), float64(b[i])
		dot += ai * bi
		normA += ai * ai
		normB += bi * bi
	}

	if normA == 0 || normB == 0 {
		return float32(math.Inf(1))
	}

	similarity := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Clamp to [-1, 1] to absorb rounding.
	if similarity > 1 {
		similarity = 1
	}
	if similarity < -1 {
		similarity = -1
	}
	return float32(1 - similarity)
}

// Magnitude calculates the L2 norm of v.
func Magnitude(v []float32) float32 {
	return float32(math.Sqrt(float64(Dot(v, v))))
}

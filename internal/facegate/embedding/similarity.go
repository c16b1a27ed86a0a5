package embedding

import (
	"errors"
	"fmt"
	"math"
)

// ErrDimensionMismatch indicates vectors of unequal length.  Both sides of
// a comparison must come from the same embedding model; silently zipping
// to the shorter vector would make the score meaningless.
var ErrDimensionMismatch = errors.New("embedding dimension mismatch")

// Cosine computes the cosine similarity between two vectors of equal
// length.  If either vector has zero magnitude the result is 0.0, a
// deliberate floor, not an error.  Accumulation runs in float64 to keep
// long vectors numerically stable.
func Cosine(a, b []float32) (float32, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB))), nil
}

// Decide applies the grant threshold to a similarity score.  The
// comparison is strictly greater-than: a score exactly at the threshold
// denies.
func Decide(similarity, threshold float32) bool {
	return similarity > threshold
}

package generation

import "math"

// CosineSimilarity scores two vectors in [-1, 1]. Empty vectors, length
// mismatches and zero magnitudes all score 0: retrieval treats them as
// "no signal" and keeps going instead of failing.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, magnitudeA, magnitudeB float64
	for i := range a {
		dot += a[i] * b[i]
		magnitudeA += a[i] * a[i]
		magnitudeB += b[i] * b[i]
	}
	if magnitudeA == 0 || magnitudeB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magnitudeA) * math.Sqrt(magnitudeB))
}

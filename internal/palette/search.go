package palette

// largestSatisfying binary-searches [lo, hi] for the largest value at which
// ok still holds, assuming ok is monotone (true on [lo, x], false above).
// It runs a fixed number of iterations, so the work is bounded and the
// result is deterministic; 20 iterations narrow the interval well below
// one byte step of precision for the factor ranges used here.
func largestSatisfying(lo, hi float64, iterations int, ok func(float64) bool) float64 {
	for i := 0; i < iterations; i++ {
		mid := (lo + hi) / 2
		if ok(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}

package skyrunner

// weightEpsilon is how far below 1.0 a weight vector may sum and still be
// treated as complete.
const weightEpsilon = 1e-9

// SelectWeighted picks an index from a cumulative walk over weights using
// the uniform draw r in [0, 1): the first index whose running total meets
// or exceeds r.
//
// Zero weights are skipped, so a disabled type is never chosen. A draw
// that lands above the final total of a vector summing to 1 (float
// rounding) goes to the last index with positive weight rather than
// falling back to the first type. For malformed
// vectors (empty, non-positive or short of 1) it returns index 0 and
// ok=false so the caller can report the fallback.
func SelectWeighted(weights []float64, r float64) (idx int, ok bool) {
	total := 0.0
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		total += w
		last = i
		if r <= total {
			return i, true
		}
	}
	if last >= 0 && total >= 1-weightEpsilon {
		return last, true
	}
	return 0, false
}

package series

// Diff returns the pairwise differences of consecutive elements.
func Diff(xs []float64) []float64 {
	if len(xs) < 2 {
		return nil
	}
	dx := make([]float64, len(xs)-1)
	for i := range dx {
		dx[i] = xs[i+1] - xs[i]
	}
	return dx
}

// IsStrictlyIncreasing reports whether each element is greater than its
// predecessor. Slices with fewer than two elements are trivially
// increasing.
func IsStrictlyIncreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}

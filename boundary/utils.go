package boundary

import (
	"math"
	"sort"
)

// nanSlice returns n NaNs.
func nanSlice(n int) []float64 {
	s := make([]float64, n)
	fillNaN(s)

	return s
}

func fillNaN(s []float64) {
	nan := math.NaN()
	for i := range s {
		s[i] = nan
	}
}

func cloneSlice(s []float64) []float64 {
	out := make([]float64, len(s))
	copy(out, s)

	return out
}

// setIndices returns the positions holding a number, ascending.
func setIndices(s []float64) []int {
	var out []int
	for i, v := range s {
		if !math.IsNaN(v) {
			out = append(out, i)
		}
	}

	return out
}

func sortedKeys(m map[int]bool) []int {
	if len(m) == 0 {
		return nil
	}
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

package health

import (
	"math"

	"github.com/katalvlaran/poreflow/matrix"
)

// CheckSystem reports whether every stored entry of a and every entry of
// b is finite. A nil matrix is unhealthy.
func CheckSystem(a *matrix.Sparse, b []float64) bool {
	if a == nil || !a.AllFinite() {
		return false
	}
	for _, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

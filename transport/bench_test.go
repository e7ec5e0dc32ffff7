package transport_test

import (
	"testing"

	"github.com/katalvlaran/poreflow/boundary"
)

// BenchmarkRun_Grid30 measures one assemble/solve/re-assemble cycle on a
// 900-pore lattice with a cached Laplacian.
func BenchmarkRun_Grid30(b *testing.B) {
	const n = 30
	conns := gridConns(n, n)
	tr, _ := setup(b, n*n, conns, ones(len(conns)))
	var left, right []int
	for y := 0; y < n; y++ {
		left = append(left, n*y)
		right = append(right, n-1+n*y)
	}
	_, _ = tr.SetValueBC(left, []float64{1}, boundary.Merge)
	_, _ = tr.SetValueBC(right, []float64{0}, boundary.Merge)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tr.Run(nil, nil); err != nil {
			b.Fatal(err)
		}
	}
}

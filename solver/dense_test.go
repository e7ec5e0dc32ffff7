package solver_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poreflow/matrix"
	"github.com/katalvlaran/poreflow/solver"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func mustSparse(t *testing.T, n int, entries []matrix.Entry) *matrix.Sparse {
	t.Helper()
	a, err := matrix.NewSparse(n, entries)
	require.NoError(t, err)

	return a
}

// spd is a diagonally dominant tridiagonal 3×3 matrix.
func spd(t *testing.T) *matrix.Sparse {
	return mustSparse(t, 3, []matrix.Entry{
		{Row: 0, Col: 0, Val: 4}, {Row: 0, Col: 1, Val: -1},
		{Row: 1, Col: 0, Val: -1}, {Row: 1, Col: 1, Val: 4}, {Row: 1, Col: 2, Val: -1},
		{Row: 2, Col: 1, Val: -1}, {Row: 2, Col: 2, Val: 4},
	})
}

func TestDense_SymmetricPositiveDefinite(t *testing.T) {
	a := spd(t)
	want := []float64{1, 2, 3}
	b, err := a.MulVec(want)
	require.NoError(t, err)

	for _, s := range []*solver.Dense{solver.NewDense(), solver.NewDense(solver.WithCholesky())} {
		x, code, err := s.Solve(a, b, nil)
		require.NoError(t, err)
		assert.Equal(t, solver.Success, code)
		if diff := cmp.Diff(want, x, approx); diff != "" {
			t.Errorf("solution mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestDense_AsymmetricFallsBackToLU(t *testing.T) {
	a := mustSparse(t, 2, []matrix.Entry{
		{Row: 0, Col: 0, Val: 2}, {Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 0, Val: 0}, {Row: 1, Col: 1, Val: 3},
	})
	x, code, err := solver.NewDense(solver.WithCholesky()).Solve(a, []float64{4, 6}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, solver.Success, code)
	if diff := cmp.Diff([]float64{1, 2}, x, approx); diff != "" {
		t.Errorf("solution mismatch (-want +got):\n%s", diff)
	}
}

func TestDense_Singular(t *testing.T) {
	// A pure Laplacian has the constant vector in its null space.
	a, err := matrix.Laplacian(3, [][2]int{{0, 1}, {1, 2}}, nil)
	require.NoError(t, err)

	cases := []struct {
		name string
		s    *solver.Dense
		b    []float64
	}{
		{"LU_Balanced", solver.NewDense(), []float64{1, 0, -1}},
		{"LU_RateOnly", solver.NewDense(), []float64{1, 0, 0}},
		{"Cholesky_Balanced", solver.NewDense(solver.WithCholesky()), []float64{1, 0, -1}},
		{"Cholesky_RateOnly", solver.NewDense(solver.WithCholesky()), []float64{1, 0, 0}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			x, code, err := tc.s.Solve(a, tc.b, nil)
			require.NoError(t, err)
			assert.Equal(t, solver.Singular, code)
			assert.Nil(t, x)
			assert.Equal(t, "singular", code.String())
		})
	}
}

func TestDense_DiagonalIsExact(t *testing.T) {
	a := mustSparse(t, 2, []matrix.Entry{{Row: 0, Col: 0, Val: 2}, {Row: 1, Col: 1, Val: 2}})
	x, code, err := solver.NewDense().Solve(a, []float64{20, 0}, nil)
	require.NoError(t, err)
	assert.Equal(t, solver.Success, code)
	assert.Equal(t, []float64{10, 0}, x)
}

func TestDense_InvalidInput(t *testing.T) {
	s := solver.NewDense()

	_, code, err := s.Solve(nil, nil, nil)
	assert.ErrorIs(t, err, solver.ErrNilMatrix)
	assert.Equal(t, solver.InvalidInput, code)

	_, code, err = s.Solve(spd(t), []float64{1}, nil)
	assert.ErrorIs(t, err, solver.ErrDimensionMismatch)
	assert.Equal(t, solver.InvalidInput, code)

	_, _, err = s.Solve(spd(t), []float64{1, 2, 3}, []float64{0})
	assert.ErrorIs(t, err, solver.ErrDimensionMismatch)
}

func TestWithSymmetryTolerance_Panics(t *testing.T) {
	assert.Panics(t, func() { solver.WithSymmetryTolerance(-1) })
	assert.NotPanics(t, func() { solver.WithSymmetryTolerance(0) })
}

func TestFunc_Adapter(t *testing.T) {
	var called bool
	f := solver.Func(func(a *matrix.Sparse, b, x0 []float64) ([]float64, solver.ExitCode, error) {
		called = true
		return b, solver.Success, nil
	})
	x, code, err := f.Solve(nil, []float64{7}, nil)
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, solver.Success, code)
	assert.Equal(t, []float64{7}, x)
}

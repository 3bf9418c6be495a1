// Package grid_test contains unit tests for the Dense well grid.
package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/plateplan/grid"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := grid.NewDense(0, 5)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)

	_, err = grid.NewDense(5, -1)
	require.ErrorIs(t, err, grid.ErrInvalidDimensions)
}

// TestNewDenseZeroed verifies a fresh grid holds only zeros.
func TestNewDenseZeroed(t *testing.T) {
	m, err := grid.NewDense(8, 12)
	require.NoError(t, err)

	require.Zero(t, m.Sum())
	s := m.Slices()
	require.Len(t, s, 8)
	require.Len(t, s[0], 12)
}

// TestAccessorsOutOfRange ensures At and Add return ErrOutOfRange on invalid access.
func TestAccessorsOutOfRange(t *testing.T) {
	m, err := grid.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	require.ErrorIs(t, m.Add(2, 0, 1), grid.ErrOutOfRange)
	require.ErrorIs(t, m.Add(0, 2, 1), grid.ErrOutOfRange)
}

// TestAddAccumulates checks that Add sums into a cell instead of overwriting it.
func TestAddAccumulates(t *testing.T) {
	m, err := grid.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Add(1, 2, 10))
	require.NoError(t, m.Add(1, 2, 5.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 15.5, v)
	require.Equal(t, 15.5, m.Sum())
}

// TestNonFiniteRejected checks that NaN/Inf never reach the buffer.
func TestNonFiniteRejected(t *testing.T) {
	m, err := grid.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Add(0, 0, math.NaN()), grid.ErrNaNInf)
	require.ErrorIs(t, m.Add(0, 0, math.Inf(1)), grid.ErrNaNInf)

	require.NoError(t, m.Add(0, 0, math.MaxFloat64))
	require.ErrorIs(t, m.Add(0, 0, math.MaxFloat64), grid.ErrNaNInf) // overflow to +Inf
	v, _ := m.At(0, 0)
	require.Equal(t, math.MaxFloat64, v) // untouched on error
}

// TestMax returns the first maximal cell in row-major order.
func TestMax(t *testing.T) {
	m, err := grid.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Add(0, 1, 7)
	_ = m.Add(1, 0, 7)

	v, r, c := m.Max()
	require.Equal(t, 7.0, v)
	require.Equal(t, 0, r)
	require.Equal(t, 1, c)
}

// TestEqual compares shape and bit patterns.
func TestEqual(t *testing.T) {
	m, _ := grid.NewDense(2, 2)
	n, _ := grid.NewDense(2, 2)
	_ = m.Add(0, 0, 1)
	_ = n.Add(0, 0, 1)
	require.True(t, m.Equal(n))

	_ = n.Add(0, 0, 2)
	require.False(t, m.Equal(n))

	other, _ := grid.NewDense(1, 4)
	require.False(t, m.Equal(other))
	require.False(t, m.Equal(nil))
}

// TestSlicesIsACopy ensures Slices does not alias the backing buffer.
func TestSlicesIsACopy(t *testing.T) {
	m, err := grid.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Add(1, 1, 4)

	s := m.Slices()
	require.Equal(t, [][]float64{{0, 0}, {0, 4}}, s)
	s[1][1] = 99
	v, _ := m.At(1, 1)
	require.Equal(t, 4.0, v)
}

// TestMap combines two grids cell by cell and rejects shape mismatches.
func TestMap(t *testing.T) {
	a, _ := grid.NewDense(1, 2)
	b, _ := grid.NewDense(1, 2)
	_ = a.Add(0, 0, 6)
	_ = b.Add(0, 0, 3)

	out, err := a.Map(b, func(x, y float64) float64 {
		if y == 0 {
			return 0
		}
		return x / y
	})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 0}}, out.Slices())

	c, _ := grid.NewDense(2, 1)
	_, err = a.Map(c, func(x, y float64) float64 { return x })
	require.ErrorIs(t, err, grid.ErrShapeMismatch)
}

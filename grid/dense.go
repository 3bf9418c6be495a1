// SPDX-License-Identifier: MIT

// Package grid - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep per-well accumulators in one contiguous buffer (offset = i*cols + j).
//   - Guarantee safety at the public surface: At/Add return errors instead of panicking.
//   - Keep reductions deterministic (fixed row-major loop order).

package grid

import (
	"fmt"
	"math"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxAdd = "Add"
)

// denseErrorf wraps a sentinel with the Dense method name and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major grid of float64 values.
// r and c hold the dimensions; data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // flat backing storage, len == r*c
}

// NewDense creates an r×c Dense grid initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate the flat zero-filled buffer.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The caller wraps the sentinel with its own method context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
// Errors: ErrOutOfRange when indices are invalid.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Add accumulates delta into (row, col).
// Stage 1 (Validate): bounds check and finiteness of delta and of the result.
// Stage 2 (Execute): write the new sum; on error the cell is left untouched.
// Complexity: O(1).
func (m *Dense) Add(row, col int, delta float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxAdd, row, col, err)
	}
	sum := m.data[off] + delta
	if isNonFinite(delta) || isNonFinite(sum) {
		return denseErrorf(ctxAdd, row, col, ErrNaNInf)
	}
	m.data[off] = sum

	return nil
}

// Sum returns the sum of all cells in row-major order.
// Complexity: O(r*c).
func (m *Dense) Sum() float64 {
	var s float64
	for _, v := range m.data {
		s += v
	}

	return s
}

// Max returns the largest value and its first position in row-major order.
// Complexity: O(r*c).
func (m *Dense) Max() (v float64, row, col int) {
	best := 0
	for i := 1; i < len(m.data); i++ {
		if m.data[i] > m.data[best] {
			best = i
		}
	}

	return m.data[best], best / m.c, best % m.c
}

// Equal reports whether other has the same shape and bit-identical values.
// Complexity: O(r*c).
func (m *Dense) Equal(other *Dense) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if math.Float64bits(v) != math.Float64bits(other.data[i]) {
			return false
		}
	}

	return true
}

// Slices returns the grid as a freshly allocated [][]float64 (row-major).
// Mutating the result never affects m.
// Complexity: O(r*c).
func (m *Dense) Slices() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// Map returns a new grid with f applied cell by cell, passing the matching
// cell of other as the second argument. Shapes must agree.
// Complexity: O(r*c).
func (m *Dense) Map(other *Dense, f func(a, b float64) float64) (*Dense, error) {
	if other == nil || m.r != other.r || m.c != other.c {
		return nil, fmt.Errorf("Dense.Map: %w", ErrShapeMismatch)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := range m.data {
		out.data[i] = f(m.data[i], other.data[i])
	}

	return out, nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every message is prefixed with "grid: ..." so it is easy to grep in logs.
// Methods wrap these with fmt.Errorf("Dense.<Method>(r,c): %w", ErrX); callers
// match them with errors.Is.

package grid

import "errors"

var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("grid: NaN or Inf encountered")

	// ErrShapeMismatch indicates two grids of different shape were combined.
	ErrShapeMismatch = errors.New("grid: shape mismatch")
)

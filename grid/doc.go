// SPDX-License-Identifier: MIT

// Package grid provides the dense row-major float64 storage used for per-well
// accumulators on a plate.
//
// What:
//
//   - Dense is an r×c grid stored in one flat slice (offset = row*cols + col).
//   - Public accessors (At, Add) never panic on bad input; they return
//     sentinel errors wrapped with the method name and coordinates.
//   - Values must stay finite: NaN and ±Inf are rejected on write.
//
// Complexity:
//
//   - NewDense, Slices, Map, Sum, Max, Equal: O(r*c).
//   - At, Add: O(1).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols ≤ 0.
//   - ErrOutOfRange: index outside [0,rows)×[0,cols).
//   - ErrNaNInf: a write would store NaN or ±Inf.
package grid

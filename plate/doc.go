// SPDX-License-Identifier: MIT

// Package plate plans dispensing onto a multi-well plate.
//
// What:
//
//   - Layout: named or numbered rows and columns, a per-well capacity in uL.
//   - Location resolution: "A:1" strings, (row, column) references given by
//     label or 1-indexed number, and canonical zero-indexed Wells all resolve
//     to one Well.
//   - Dispense engine: AddCustom is the single primitive that accumulates
//     volumes (uL), reagent amounts (umol), supply usage and the instruction
//     log. Every convenience dispenser (rows, columns, blocks, fills, gradients)
//     builds a DispenseMap and calls AddCustom exactly once.
//   - Exports: volume and mole grids, per-reagent concentrations (mM), the
//     supply ledger, the instruction log and overflow warnings, which together
//     are enough to render a complete dispensing report.
//
// Guarantees:
//
//   - A failed call mutates nothing.
//   - Grids are a pure fold of the instruction log; Replay reproduces them
//     bit-for-bit.
//   - Exceeding the per-well capacity never fails a call. It is recorded as a
//     Warning (and logged when WithLogger is set) so over-capacity plans can
//     be explored before they are fixed.
//
// Concurrency:
//
//	A Plate is not safe for concurrent mutation; drive each plate from one goroutine.
//
// Errors:
//
//   - ErrInvalidArgument: bad layout, non-positive capacity, nil source, empty
//     map, negative or non-finite volumes.
//   - ErrInvalidLocation: unresolvable or out-of-range locations, inverted
//     corners, gradient endpoints not on one row/column.
//   - ErrDuplicateDestination: one call addresses the same well twice.
//   - ErrNegativeFill: fill target below a well's current volume.
package plate

// SPDX-License-Identifier: MIT
// Package chem: sentinel error set. Constructors wrap these with the failing
// check ("NewStockSolution: concentration 0 must be > 0: chem: invalid argument");
// callers match with errors.Is.

package chem

import "errors"

var (
	// ErrInvalidArgument indicates malformed construction input: empty names,
	// non-positive or non-finite quantities, or a nil where a value is required.
	ErrInvalidArgument = errors.New("chem: invalid argument")

	// ErrDilutionConsistency indicates a StockSolution made from another
	// StockSolution that is not strictly more dilute or uses a different Solvent.
	ErrDilutionConsistency = errors.New("chem: inconsistent dilution")
)

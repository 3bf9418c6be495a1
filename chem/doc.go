// SPDX-License-Identifier: MIT

// Package chem models the chemistry that feeds a plate: reagents, bulk
// solvents and the stock solutions prepared from them.
//
// What:
//
//   - Reagent: an immutable solid or liquid chemical (name, g/mol, g/mL for liquids).
//   - Solvent: an immutable named bulk liquid with a finite available volume (mL).
//   - StockSolution: a Reagent dissolved in a Solvent, or a dilution of another
//     StockSolution in the same Solvent, at a known concentration (mol/L) and volume (mL).
//   - Recipe: the pure preparation instructions for a StockSolution.
//
// Identity:
//
//	Every Reagent, Solvent and StockSolution receives a Handle at construction.
//	Handles are unique for the life of the process; two values built from the same
//	fields are still different entities for ledger purposes.
//
// Sum types:
//
//	Base   = *Reagent | *StockSolution   (what a stock is made from)
//	Source = *StockSolution | *Solvent   (what can be dispensed onto a plate)
//
//	Both interfaces are sealed; consumers switch exhaustively on the concrete types.
//
// Errors:
//
//   - ErrInvalidArgument: malformed construction input.
//   - ErrDilutionConsistency: a dilution that is not strictly more dilute, or that
//     changes solvent.
package chem

// SPDX-License-Identifier: MIT

// Package protocol loads a dispensing protocol written in HCL and runs it
// against a plate.
//
// A protocol file declares one plate block, then the chemistry (reagent,
// solvent and stock blocks) and finally the dispense steps:
//
//	plate "screen" {
//	  preset     = "generic96"
//	  max_volume = 200
//	}
//
//	reagent "nitrile" {
//	  name             = "benzonitrile"
//	  kind             = "liquid"
//	  molecular_weight = 117.15
//	  density          = 1.015
//	}
//
//	solvent "MeCN" {
//	  name   = "acetonitrile"
//	  volume = 20
//	}
//
//	stock "nitrile_100mM" {
//	  base          = "nitrile"
//	  concentration = 0.1
//	  solvent       = "MeCN"
//	  volume        = 1
//	}
//
//	dispense "row_gradient" {
//	  source = "nitrile_100mM"
//	  from   = "A:1"
//	  to     = "A:10"
//	  lo     = 5
//	  hi     = 50
//	  order  = "descending"
//	}
//
// Reagent, solvent and stock labels share one namespace. A stock's base names
// a reagent or an earlier stock; a dispense source names a stock or a solvent.
// Dispense steps run in file order, each becoming one plate instruction.
//
// Dispense kinds and their attributes:
//
//   - custom: source, wells = { "A:1" = 10, "B:2" = 5 }
//   - rows, columns: source, volume, rows/columns (a label, a 1-based number
//     or a list of either)
//   - block: source, volume, from, to
//   - fill: source, target, from, to
//   - row_gradient, column_gradient: source, from, to, lo, hi, order
//     (optional, "ascending" by default)
//
// Errors carry the source range of the offending block and wrap one of the
// sentinels below, or the chem/plate sentinel that rejected the values.
package protocol

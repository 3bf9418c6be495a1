// Package plateplan plans the dispensing of reagent solutions onto multi-well
// plates and tracks, per well, how much volume and how much of each reagent
// ends up there.
//
// What is plateplan?
//
//	A small, dependency-light toolkit for bench chemists:
//		• Chemistry: solid and liquid reagents, solvents, stock solutions and
//		  serial dilutions, with lab-readable preparation recipes
//		• Plates: 96/384-well presets or any named/numbered layout, wells
//		  addressed as "A:1", by (row, column) label or number, or by index
//		• Dispensing: custom maps, whole rows/columns, blocks, fill-to-volume
//		  and linear gradients, all validated before anything is committed
//		• Accounting: per-well volumes (uL), per-reagent amounts (umol) and
//		  concentrations (mM), supply usage, overflow warnings, a replayable
//		  instruction log
//		• Protocols: the same operations written declaratively in HCL
//
// Packages:
//
//	grid/           dense row-major float64 grids backing every per-well quantity
//	chem/           Reagent, Solvent, StockSolution, recipes and unit formatting
//	plate/          Plate layout, location resolution and the dispense engine
//	protocol/       HCL protocol files: declare chemistry, run dispense steps
//	report/         plain-text lab sheet for a finished plate
//	cmd/plateplan/  command line: load a protocol, print its lab sheet
//
// Quick start:
//
//	sulfate, _ := chem.NewSolid("sodium sulfate", 142.04)
//	water, _ := chem.NewSolvent("water", 10)
//	half, _ := chem.NewStockSolution(sulfate, 0.5, water, 5)
//
//	p, _ := plate.NewGeneric96("screen", 200)
//	_ = p.AddToRows(half, 50, plate.Num(1))
//	_ = p.FillBlockUpToVolume(water, 100, plate.Loc("A:1"), plate.Loc("A:12"))
//
//	conc, _ := p.Concentrations(sulfate) // conc[0][0] == 250 (mM)
//
// See examples/ for complete protocol files.
package plateplan

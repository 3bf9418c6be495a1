// SPDX-License-Identifier: MIT

package chem

import "fmt"

// Base is what a StockSolution is prepared from: a *Reagent (dissolution) or
// another *StockSolution (dilution). The interface is sealed.
type Base interface {
	fmt.Stringer
	Handle() Handle
	isBase()
}

// Source is anything that can be dispensed onto a plate: a *StockSolution or
// a *Solvent. The interface is sealed.
type Source interface {
	fmt.Stringer
	Handle() Handle
	// Volume is the total volume available from this source, in mL.
	Volume() float64
	isSource()
}

// Compile-time assertions for the sealed sets.
var (
	_ Base   = (*Reagent)(nil)
	_ Base   = (*StockSolution)(nil)
	_ Source = (*StockSolution)(nil)
	_ Source = (*Solvent)(nil)
)

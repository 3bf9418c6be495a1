// SPDX-License-Identifier: MIT

package chem

import (
	"fmt"
	"math"
)

// StockSolution is an immutable solution of a Base in a Solvent.
// Invariants (checked once by NewStockSolution):
//   - concentration and volume are finite and > 0;
//   - when base is a *StockSolution: concentration < base.concentration and
//     solvent is the very same *Solvent as base.solvent.
type StockSolution struct {
	handle        Handle
	base          Base
	reagent       *Reagent // terminal reagent of the dilution chain
	concentration float64  // mol/L
	solvent       *Solvent
	volume        float64 // mL
}

// NewStockSolution prepares volume mL of base at concentration mol/L in solvent.
//
// Checks run in a fixed order and the first failure is returned:
//  1. base is a non-nil *Reagent or *StockSolution;
//  2. for a dilution: strictly more dilute, same solvent (ErrDilutionConsistency);
//  3. concentration > 0;
//  4. solvent is non-nil;
//  5. volume > 0;
//  6. for a liquid reagent: the neat reagent fits within volume.
//
// Errors: ErrInvalidArgument or ErrDilutionConsistency. Nothing is returned on failure.
func NewStockSolution(base Base, concentration float64, solvent *Solvent, volume float64) (*StockSolution, error) {
	var reagent *Reagent
	switch b := base.(type) {
	case *Reagent:
		if b == nil {
			return nil, fmt.Errorf("NewStockSolution: base reagent is nil: %w", ErrInvalidArgument)
		}
		reagent = b
	case *StockSolution:
		if b == nil {
			return nil, fmt.Errorf("NewStockSolution: base stock solution is nil: %w", ErrInvalidArgument)
		}
		if !(concentration < b.concentration) {
			return nil, fmt.Errorf("NewStockSolution: concentration %g M must be below %g M of %s: %w",
				concentration, b.concentration, b, ErrDilutionConsistency)
		}
		if solvent != b.solvent {
			return nil, fmt.Errorf("NewStockSolution: dilution of %s must use solvent %s: %w",
				b, b.solvent, ErrDilutionConsistency)
		}
		reagent = b.reagent
	default:
		return nil, fmt.Errorf("NewStockSolution: base must be a reagent or stock solution: %w", ErrInvalidArgument)
	}
	if !positive(concentration) {
		return nil, fmt.Errorf("NewStockSolution: concentration %g must be > 0: %w", concentration, ErrInvalidArgument)
	}
	if solvent == nil {
		return nil, fmt.Errorf("NewStockSolution: solvent is nil: %w", ErrInvalidArgument)
	}
	if !positive(volume) {
		return nil, fmt.Errorf("NewStockSolution: volume %g must be > 0: %w", volume, ErrInvalidArgument)
	}

	s := &StockSolution{
		base:          base,
		reagent:       reagent,
		concentration: concentration,
		solvent:       solvent,
		volume:        volume,
	}
	if _, isReagent := base.(*Reagent); isReagent && reagent.kind == Liquid {
		if neat := s.reagentVolume(); neat > volume || math.IsInf(neat, 0) {
			return nil, fmt.Errorf("NewStockSolution: %.3f mL of neat %s exceeds %g mL total: %w",
				neat, reagent.name, volume, ErrInvalidArgument)
		}
	}
	s.handle = newHandle()

	return s, nil
}

// Handle returns the stock's identity.
func (s *StockSolution) Handle() Handle { return s.handle }

// Base returns what the stock is prepared from.
func (s *StockSolution) Base() Base { return s.base }

// Reagent returns the effective reagent at the bottom of the dilution chain.
func (s *StockSolution) Reagent() *Reagent { return s.reagent }

// Concentration returns mol/L.
func (s *StockSolution) Concentration() float64 { return s.concentration }

// Solvent returns the solvent of the whole dilution chain.
func (s *StockSolution) Solvent() *Solvent { return s.solvent }

// Volume returns the prepared volume in mL.
func (s *StockSolution) Volume() float64 { return s.volume }

// String renders "sodium sulfate (0.50 M in water)" or "triethylamine (10.0 mM in DMSO)".
func (s *StockSolution) String() string {
	return fmt.Sprintf("%s (%s in %s)", s.reagent.name, FormatConcentration(s.concentration), s.solvent.name)
}

// mass returns grams of reagent in the whole stock:
// (mol/L) * (mL / 1000 mL/L) * (g/mol).
func (s *StockSolution) mass() float64 {
	return s.concentration * (s.volume / MilliLitersPerLiter) * s.reagent.molecularWeight
}

// reagentVolume returns mL of neat liquid reagent in the whole stock.
func (s *StockSolution) reagentVolume() float64 {
	return s.mass() / s.reagent.density
}

func (*StockSolution) isBase()   {}
func (*StockSolution) isSource() {}

// SPDX-License-Identifier: MIT

package chem

import "fmt"

// Method is how a stock solution is prepared.
type Method int

const (
	// Dissolve weighs a solid into the full target volume of solvent.
	Dissolve Method = iota + 1
	// Mix measures a neat liquid and tops up with solvent (volumes assumed additive).
	Mix
	// Dilute draws from a more concentrated stock and tops up with solvent.
	Dilute
)

// String returns "dissolve", "mix" or "dilute".
func (m Method) String() string {
	switch m {
	case Dissolve:
		return "dissolve"
	case Mix:
		return "mix"
	case Dilute:
		return "dilute"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Recipe holds the quantities needed to prepare one StockSolution.
//   - Dissolve: MassG of Component into SolventVolumeML (the full target volume).
//   - Mix:      ComponentVolumeML of neat Component plus SolventVolumeML.
//   - Dilute:   ComponentVolumeML of the parent stock plus SolventVolumeML.
type Recipe struct {
	Method            Method
	Component         string // reagent name, or the parent stock's String()
	MassG             float64
	ComponentVolumeML float64
	SolventVolumeML   float64
	Solvent           string
}

// Recipe computes preparation quantities from the stock's own fields.
// It is a pure function: no side effects, no dependency on any plate.
func (s *StockSolution) Recipe() Recipe {
	switch b := s.base.(type) {
	case *StockSolution:
		// C1*V1 = C2*V2  =>  V1 = C2*V2/C1
		draw := s.concentration * s.volume / b.concentration
		return Recipe{
			Method:            Dilute,
			Component:         b.String(),
			ComponentVolumeML: draw,
			SolventVolumeML:   s.volume - draw,
			Solvent:           s.solvent.name,
		}
	default:
		mass := s.mass()
		if s.reagent.kind == Liquid {
			neat := mass / s.reagent.density
			return Recipe{
				Method:            Mix,
				Component:         s.reagent.name,
				MassG:             mass,
				ComponentVolumeML: neat,
				SolventVolumeML:   s.volume - neat,
				Solvent:           s.solvent.name,
			}
		}
		return Recipe{
			Method:          Dissolve,
			Component:       s.reagent.name,
			MassG:           mass,
			SolventVolumeML: s.volume,
			Solvent:         s.solvent.name,
		}
	}
}

// Instructions returns the recipe as one lab-readable sentence, e.g.
// "Add 710.2 mg of sodium sulfate to 10.000 mL of water."
func (s *StockSolution) Instructions() string { return s.Recipe().String() }

// String renders the recipe sentence.
func (r Recipe) String() string {
	if r.Method == Dissolve {
		return fmt.Sprintf("Add %s of %s to %s of %s.",
			FormatMass(r.MassG), r.Component, FormatVolume(r.SolventVolumeML), r.Solvent)
	}

	return fmt.Sprintf("Add %s of %s to %s of %s.",
		FormatVolume(r.ComponentVolumeML), r.Component, FormatVolume(r.SolventVolumeML), r.Solvent)
}

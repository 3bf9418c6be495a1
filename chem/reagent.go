// SPDX-License-Identifier: MIT

package chem

import "fmt"

// Kind distinguishes solid from liquid reagents.
type Kind int

const (
	// Solid reagents are weighed and assumed to displace no volume.
	Solid Kind = iota + 1
	// Liquid reagents are measured by volume through their density.
	Liquid
)

// String returns "solid" or "liquid".
func (k Kind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Liquid:
		return "liquid"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Reagent is an immutable description of a chemical.
// density is meaningful iff kind == Liquid.
type Reagent struct {
	handle          Handle
	name            string
	molecularWeight float64 // g/mol
	kind            Kind
	density         float64 // g/mL, zero for solids
}

// NewSolid creates a solid Reagent.
// Errors: ErrInvalidArgument when name is blank or molecularWeight is not a finite value > 0.
func NewSolid(name string, molecularWeight float64) (*Reagent, error) {
	if err := validateReagent("NewSolid", name, molecularWeight); err != nil {
		return nil, err
	}

	return &Reagent{handle: newHandle(), name: name, molecularWeight: molecularWeight, kind: Solid}, nil
}

// NewLiquid creates a liquid Reagent with a density in g/mL.
// Errors: ErrInvalidArgument for a blank name, or a molecularWeight or density
// that is not a finite value > 0.
func NewLiquid(name string, molecularWeight, density float64) (*Reagent, error) {
	if err := validateReagent("NewLiquid", name, molecularWeight); err != nil {
		return nil, err
	}
	if !positive(density) {
		return nil, fmt.Errorf("NewLiquid: density %g must be > 0: %w", density, ErrInvalidArgument)
	}

	return &Reagent{handle: newHandle(), name: name, molecularWeight: molecularWeight, kind: Liquid, density: density}, nil
}

func validateReagent(ctx, name string, molecularWeight float64) error {
	if !validName(name) {
		return fmt.Errorf("%s: name must not be empty: %w", ctx, ErrInvalidArgument)
	}
	if !positive(molecularWeight) {
		return fmt.Errorf("%s: molecular weight %g must be > 0: %w", ctx, molecularWeight, ErrInvalidArgument)
	}

	return nil
}

// Handle returns the reagent's identity.
func (r *Reagent) Handle() Handle { return r.handle }

// Name returns the reagent name.
func (r *Reagent) Name() string { return r.name }

// MolecularWeight returns g/mol.
func (r *Reagent) MolecularWeight() float64 { return r.molecularWeight }

// Kind reports Solid or Liquid.
func (r *Reagent) Kind() Kind { return r.kind }

// Density returns g/mL and true for liquids; (0, false) for solids.
func (r *Reagent) Density() (float64, bool) {
	if r.kind != Liquid {
		return 0, false
	}

	return r.density, true
}

// String renders "name (142.04 g/mol)" or, for liquids, "name (101.19 g/mol, 0.726 g/mL)".
func (r *Reagent) String() string {
	if r.kind == Liquid {
		return fmt.Sprintf("%s (%.2f g/mol, %.3f g/mL)", r.name, r.molecularWeight, r.density)
	}

	return fmt.Sprintf("%s (%.2f g/mol)", r.name, r.molecularWeight)
}

func (*Reagent) isBase() {}

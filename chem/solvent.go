// SPDX-License-Identifier: MIT

package chem

import "fmt"

// Solvent is an immutable bulk liquid supply. Solvents are assumed to carry no
// reagent, so dispensing one adds volume but never moles.
type Solvent struct {
	handle Handle
	name   string
	volume float64 // mL available
}

// NewSolvent creates a Solvent with volume mL available.
// Errors: ErrInvalidArgument for a blank name or a volume that is not a finite value > 0.
func NewSolvent(name string, volume float64) (*Solvent, error) {
	if !validName(name) {
		return nil, fmt.Errorf("NewSolvent: name must not be empty: %w", ErrInvalidArgument)
	}
	if !positive(volume) {
		return nil, fmt.Errorf("NewSolvent: volume %g must be > 0: %w", volume, ErrInvalidArgument)
	}

	return &Solvent{handle: newHandle(), name: name, volume: volume}, nil
}

// Handle returns the solvent's identity.
func (s *Solvent) Handle() Handle { return s.handle }

// Name returns the solvent name.
func (s *Solvent) Name() string { return s.name }

// Volume returns the available volume in mL.
func (s *Solvent) Volume() float64 { return s.volume }

// String returns the solvent name.
func (s *Solvent) String() string { return s.name }

func (*Solvent) isSource() {}

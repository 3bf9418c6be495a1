// SPDX-License-Identifier: MIT

package plate

import (
	"fmt"

	"github.com/katalvlaran/plateplan/chem"
)

// Volume returns the accumulated uL at loc.
// Errors: ErrInvalidLocation.
func (p *Plate) Volume(loc Location) (float64, error) {
	w, err := p.Resolve(loc)
	if err != nil {
		return 0, err
	}

	return p.volumes.At(w.Row, w.Col)
}

// Volumes returns a copy of the accumulated uL per well, indexed [row][column].
func (p *Plate) Volumes() [][]float64 { return p.volumes.Slices() }

// TotalVolume returns the uL dispensed onto the whole plate.
func (p *Plate) TotalVolume() float64 { return p.volumes.Sum() }

// Reagents returns the effective reagents seen so far, in first-dispense order.
func (p *Plate) Reagents() []*chem.Reagent { return append([]*chem.Reagent(nil), p.reagents...) }

// Moles returns a copy of the umol of r per well, or false if r was never dispensed.
func (p *Plate) Moles(r *chem.Reagent) ([][]float64, bool) {
	if r == nil {
		return nil, false
	}
	i, ok := p.reagentIndex[r.Handle()]
	if !ok {
		return nil, false
	}

	return p.moles[i].Slices(), true
}

// Concentrations returns the concentration of r per well in mM, or false if r
// was never dispensed. Empty wells report 0.
// umol / uL = mol / L, so mM = 1000 * umol / uL.
func (p *Plate) Concentrations(r *chem.Reagent) ([][]float64, bool) {
	if r == nil {
		return nil, false
	}
	i, ok := p.reagentIndex[r.Handle()]
	if !ok {
		return nil, false
	}
	conc, err := p.moles[i].Map(p.volumes, func(umol, uL float64) float64 {
		if uL == 0 {
			return 0
		}
		return umol / uL * chem.MilliMolarPerMolar
	})
	if err != nil {
		panic(fmt.Sprintf("plate: slab shape for %s: %v", r.Name(), err))
	}

	return conc.Slices(), true
}

// Usage returns the supply ledger in first-use order.
func (p *Plate) Usage() []SupplyUsage { return append([]SupplyUsage(nil), p.usage...) }

// UsageOf returns the uL withdrawn from src so far (0 if never used).
func (p *Plate) UsageOf(src chem.Source) float64 {
	if src == nil {
		return 0
	}
	if i, ok := p.usageIndex[src.Handle()]; ok {
		return p.usage[i].UsedUL
	}

	return 0
}

// Instructions returns a copy of the instruction log in call order.
func (p *Plate) Instructions() []Instruction {
	out := make([]Instruction, len(p.log))
	for i, in := range p.log {
		out[i] = in.clone()
	}

	return out
}

// Warnings returns a copy of the overflow warnings in step order.
func (p *Plate) Warnings() []Warning {
	out := make([]Warning, len(p.warnings))
	for i, w := range p.warnings {
		w.Wells = append([]WellVolume(nil), w.Wells...)
		out[i] = w
	}

	return out
}

// Replay builds a fresh plate with the same layout and options and re-applies
// the instruction log in order. Its grids, ledger, log and warnings equal the
// original's exactly.
// Complexity: O(sum of instruction sizes + steps*rows*columns).
func (p *Plate) Replay() (*Plate, error) {
	q, err := newPlate(p.name, p.makeLabel, p.rows, p.cols, p.maxVolume, p.opts)
	if err != nil {
		return nil, err
	}
	for _, in := range p.log {
		m := make(DispenseMap, len(in.Wells))
		for i, wv := range in.Wells {
			m[i] = Dispense{At: wv.Well, Volume: wv.Volume}
		}
		if err := q.AddCustom(in.Source, m); err != nil {
			return nil, fmt.Errorf("Plate(%s).Replay: step %d: %w", p.name, in.Step, err)
		}
	}

	return q, nil
}

// SameState reports whether q's volume and mole grids are bit-identical to p's,
// with reagents registered in the same order.
func (p *Plate) SameState(q *Plate) bool {
	if q == nil || !p.volumes.Equal(q.volumes) || len(p.reagents) != len(q.reagents) {
		return false
	}
	for i, r := range p.reagents {
		if q.reagents[i] != r || !p.moles[i].Equal(q.moles[i]) {
			return false
		}
	}

	return true
}

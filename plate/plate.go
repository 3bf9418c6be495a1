// SPDX-License-Identifier: MIT

package plate

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/plateplan/chem"
	"github.com/katalvlaran/plateplan/grid"
)

// Plate is a grid of wells plus everything dispensed onto it so far.
//
// volumes and every slab in moles are only written by AddCustom; moles[i]
// holds umol of reagents[i]. The ledger, the log and the warnings are
// append-only.
type Plate struct {
	name      string
	makeLabel string
	rows      axis
	cols      axis
	maxVolume float64 // uL per well
	opts      options

	volumes *grid.Dense // uL

	reagents     []*chem.Reagent
	reagentIndex map[chem.Handle]int
	moles        []*grid.Dense // umol, parallel to reagents

	usage      []SupplyUsage
	usageIndex map[chem.Handle]int

	log      []Instruction
	warnings []Warning
}

// New creates an empty plate.
// Stage 1 (Validate): name non-blank, both axes valid, maxVolume finite and > 0.
// Stage 2 (Prepare): allocate a zeroed rows×columns volume grid.
// Errors: ErrInvalidArgument.
// Complexity: O(rows*columns).
func New(name, makeLabel string, rows, columns Axis, maxVolume float64, opts ...Option) (*Plate, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("plate.New: name must not be empty: %w", ErrInvalidArgument)
	}
	r, err := rows.build("row")
	if err != nil {
		return nil, fmt.Errorf("plate.New(%q): %w", name, err)
	}
	c, err := columns.build("column")
	if err != nil {
		return nil, fmt.Errorf("plate.New(%q): %w", name, err)
	}
	if !(maxVolume > 0) || math.IsInf(maxVolume, 0) {
		return nil, fmt.Errorf("plate.New(%q): max volume %g must be > 0: %w", name, maxVolume, ErrInvalidArgument)
	}

	return newPlate(name, makeLabel, r, c, maxVolume, gatherOptions(opts...))
}

// NewGeneric96 creates an 8×12 plate with rows A–H and columns 1–12.
func NewGeneric96(name string, maxVolume float64, opts ...Option) (*Plate, error) {
	return New(name, DefaultGeneric96Make, Labeled(letters(8)...), Numbered(12), maxVolume, opts...)
}

// NewGeneric384 creates a 16×24 plate with rows A–P and columns 1–24.
func NewGeneric384(name string, maxVolume float64, opts ...Option) (*Plate, error) {
	return New(name, DefaultGeneric384Make, Labeled(letters(16)...), Numbered(24), maxVolume, opts...)
}

func newPlate(name, makeLabel string, rows, cols axis, maxVolume float64, o options) (*Plate, error) {
	vol, err := grid.NewDense(rows.len(), cols.len())
	if err != nil {
		return nil, fmt.Errorf("plate.New(%q): %w", name, err)
	}

	return &Plate{
		name:         name,
		makeLabel:    makeLabel,
		rows:         rows,
		cols:         cols,
		maxVolume:    maxVolume,
		opts:         o,
		volumes:      vol,
		reagentIndex: make(map[chem.Handle]int),
		usageIndex:   make(map[chem.Handle]int),
	}, nil
}

// letters returns "A", "B", ... for n ≤ 26.
func letters(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('A' + i))
	}

	return out
}

// Name returns the plate name.
func (p *Plate) Name() string { return p.name }

// Make returns the plate make label.
func (p *Plate) Make() string { return p.makeLabel }

// Rows returns the number of rows.
func (p *Plate) Rows() int { return p.rows.len() }

// Columns returns the number of columns.
func (p *Plate) Columns() int { return p.cols.len() }

// RowNames returns a copy of the row labels.
func (p *Plate) RowNames() []string { return append([]string(nil), p.rows.names...) }

// ColumnNames returns a copy of the column labels.
func (p *Plate) ColumnNames() []string { return append([]string(nil), p.cols.names...) }

// MaxVolume returns the per-well capacity in uL.
func (p *Plate) MaxVolume() float64 { return p.maxVolume }

// Resolve converts any Location to its canonical Well.
// Resolving a Well that is in range returns it unchanged.
// Errors: ErrInvalidLocation.
func (p *Plate) Resolve(loc Location) (Well, error) {
	if loc == nil {
		return Well{}, fmt.Errorf("plate: nil location: %w", ErrInvalidLocation)
	}

	return loc.resolve(p.rows, p.cols)
}

// WellName renders w as "<row name>:<column name>", e.g. "A:1".
// w must be in range.
func (p *Plate) WellName(w Well) string {
	return p.rows.names[w.Row] + ":" + p.cols.names[w.Col]
}

// String renders "name (make, 8x12, max 500.000 uL/well)".
func (p *Plate) String() string {
	return fmt.Sprintf("%s (%s, %dx%d, max %.3f uL/well)", p.name, p.makeLabel, p.Rows(), p.Columns(), p.maxVolume)
}

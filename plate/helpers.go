// SPDX-License-Identifier: MIT

package plate

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/plateplan/chem"
)

// Order selects the direction of a gradient.
type Order int

const (
	// Ascending puts the low volume at the left/top endpoint.
	Ascending Order = iota
	// Descending puts the high volume at the left/top endpoint.
	Descending
)

// String returns "ascending", "descending" or "Order(n)" for unknown values.
func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "Order(" + strconv.Itoa(int(o)) + ")"
	}
}

// AddToRows dispenses volume uL into every well of each selected row.
// Errors: ErrInvalidArgument (no rows), ErrInvalidLocation, ErrDuplicateDestination
// (a row selected twice), plus anything AddCustom returns.
func (p *Plate) AddToRows(src chem.Source, volume float64, rows ...Ref) error {
	idx, err := p.selectLines(p.rows, "AddToRows", rows)
	if err != nil {
		return err
	}
	m := make(DispenseMap, 0, len(idx)*p.cols.len())
	for _, r := range idx {
		for c := 0; c < p.cols.len(); c++ {
			m = append(m, Dispense{At: Well{Row: r, Col: c}, Volume: volume})
		}
	}

	return p.AddCustom(src, m)
}

// AddToColumns dispenses volume uL into every well of each selected column.
// Errors: as AddToRows.
func (p *Plate) AddToColumns(src chem.Source, volume float64, columns ...Ref) error {
	idx, err := p.selectLines(p.cols, "AddToColumns", columns)
	if err != nil {
		return err
	}
	m := make(DispenseMap, 0, len(idx)*p.rows.len())
	for _, c := range idx {
		for r := 0; r < p.rows.len(); r++ {
			m = append(m, Dispense{At: Well{Row: r, Col: c}, Volume: volume})
		}
	}

	return p.AddCustom(src, m)
}

// selectLines resolves row or column references, rejecting empty and repeated selections.
func (p *Plate) selectLines(a axis, op string, refs []Ref) ([]int, error) {
	if len(refs) == 0 {
		return nil, p.opErrorf(op, fmt.Errorf("no %ss selected: %w", a.kind, ErrInvalidArgument))
	}
	out := make([]int, 0, len(refs))
	seen := make(map[int]struct{}, len(refs))
	for _, ref := range refs {
		i, err := a.resolve(ref)
		if err != nil {
			return nil, p.opErrorf(op, err)
		}
		if _, dup := seen[i]; dup {
			return nil, p.opErrorf(op, fmt.Errorf("%s %s selected twice: %w", a.kind, a.names[i], ErrDuplicateDestination))
		}
		seen[i] = struct{}{}
		out = append(out, i)
	}

	return out, nil
}

// block resolves two corners of an inclusive rectangle.
func (p *Plate) block(op string, upperLeft, lowerRight Location) (Well, Well, error) {
	ul, err := p.Resolve(upperLeft)
	if err != nil {
		return Well{}, Well{}, p.opErrorf(op, err)
	}
	lr, err := p.Resolve(lowerRight)
	if err != nil {
		return Well{}, Well{}, p.opErrorf(op, err)
	}
	if ul.Row > lr.Row || ul.Col > lr.Col {
		return Well{}, Well{}, p.opErrorf(op, fmt.Errorf("upper-left %s is below or right of lower-right %s: %w",
			p.WellName(ul), p.WellName(lr), ErrInvalidLocation))
	}

	return ul, lr, nil
}

// AddToBlock dispenses volume uL into every well of the inclusive rectangle
// from upperLeft to lowerRight.
// Errors: ErrInvalidLocation (unresolvable or inverted corners), plus anything AddCustom returns.
func (p *Plate) AddToBlock(src chem.Source, volume float64, upperLeft, lowerRight Location) error {
	ul, lr, err := p.block("AddToBlock", upperLeft, lowerRight)
	if err != nil {
		return err
	}
	m := make(DispenseMap, 0, (lr.Row-ul.Row+1)*(lr.Col-ul.Col+1))
	for r := ul.Row; r <= lr.Row; r++ {
		for c := ul.Col; c <= lr.Col; c++ {
			m = append(m, Dispense{At: Well{Row: r, Col: c}, Volume: volume})
		}
	}

	return p.AddCustom(src, m)
}

// FillBlockUpToVolume tops every well of the rectangle up to target uL,
// dispensing target minus the well's current volume.
// Errors: ErrInvalidArgument (target negative or non-finite), ErrInvalidLocation,
// ErrNegativeFill when a well already holds more than target.
func (p *Plate) FillBlockUpToVolume(src chem.Source, target float64, upperLeft, lowerRight Location) error {
	const op = "FillBlockUpToVolume"
	if !(target >= 0) || math.IsInf(target, 0) {
		return p.opErrorf(op, fmt.Errorf("target %g must be >= 0: %w", target, ErrInvalidArgument))
	}
	ul, lr, err := p.block(op, upperLeft, lowerRight)
	if err != nil {
		return err
	}
	m := make(DispenseMap, 0, (lr.Row-ul.Row+1)*(lr.Col-ul.Col+1))
	for r := ul.Row; r <= lr.Row; r++ {
		for c := ul.Col; c <= lr.Col; c++ {
			cur, _ := p.volumes.At(r, c)
			w := Well{Row: r, Col: c}
			if cur > target {
				return p.opErrorf(op, fmt.Errorf("%s holds %.3f uL, above target %.3f uL: %w",
					p.WellName(w), cur, target, ErrNegativeFill))
			}
			m = append(m, Dispense{At: w, Volume: target - cur})
		}
	}

	return p.AddCustom(src, m)
}

// AddGradientToRow dispenses linearly spaced volumes from lo to hi (inclusive)
// across the row segment from left to right.
// Errors: ErrInvalidArgument (lo/hi out of 0 ≤ lo ≤ hi ≤ MaxVolume, or an
// order other than Ascending and Descending),
// ErrInvalidLocation (endpoints on different rows or right before left).
func (p *Plate) AddGradientToRow(src chem.Source, lo, hi float64, left, right Location, order Order) error {
	const op = "AddGradientToRow"
	if err := p.checkGradient(op, lo, hi, order); err != nil {
		return err
	}
	a, b, err := p.block(op, left, right)
	if err != nil {
		return err
	}
	if a.Row != b.Row {
		return p.opErrorf(op, fmt.Errorf("%s and %s are not on one row: %w", p.WellName(a), p.WellName(b), ErrInvalidLocation))
	}
	vols := gradient(lo, hi, b.Col-a.Col+1, order)
	m := make(DispenseMap, len(vols))
	for i, v := range vols {
		m[i] = Dispense{At: Well{Row: a.Row, Col: a.Col + i}, Volume: v}
	}

	return p.AddCustom(src, m)
}

// AddGradientToColumn dispenses linearly spaced volumes from lo to hi
// (inclusive) down the column segment from top to bottom.
// Errors: as AddGradientToRow, with endpoints required on one column.
func (p *Plate) AddGradientToColumn(src chem.Source, lo, hi float64, top, bottom Location, order Order) error {
	const op = "AddGradientToColumn"
	if err := p.checkGradient(op, lo, hi, order); err != nil {
		return err
	}
	a, b, err := p.block(op, top, bottom)
	if err != nil {
		return err
	}
	if a.Col != b.Col {
		return p.opErrorf(op, fmt.Errorf("%s and %s are not in one column: %w", p.WellName(a), p.WellName(b), ErrInvalidLocation))
	}
	vols := gradient(lo, hi, b.Row-a.Row+1, order)
	m := make(DispenseMap, len(vols))
	for i, v := range vols {
		m[i] = Dispense{At: Well{Row: a.Row + i, Col: a.Col}, Volume: v}
	}

	return p.AddCustom(src, m)
}

func (p *Plate) checkGradient(op string, lo, hi float64, order Order) error {
	switch {
	case order != Ascending && order != Descending:
		return p.opErrorf(op, fmt.Errorf("unknown gradient order %v: %w", order, ErrInvalidArgument))
	case !(lo >= 0) || math.IsInf(lo, 0):
		return p.opErrorf(op, fmt.Errorf("low volume %g must be >= 0: %w", lo, ErrInvalidArgument))
	case !(hi >= lo) || math.IsInf(hi, 0):
		return p.opErrorf(op, fmt.Errorf("high volume %g must be >= low volume %g: %w", hi, lo, ErrInvalidArgument))
	case hi > p.maxVolume:
		return p.opErrorf(op, fmt.Errorf("high volume %g exceeds %g uL/well: %w", hi, p.maxVolume, ErrInvalidArgument))
	}

	return nil
}

// gradient returns n evenly spaced values from lo to hi with both endpoints
// exact; Descending reverses them. n == 1 yields [lo].
func gradient(lo, hi float64, n int, order Order) []float64 {
	out := make([]float64, n)
	for i := range out {
		switch {
		case i == 0:
			out[i] = lo
		case i == n-1:
			out[i] = hi
		default:
			out[i] = lo + (hi-lo)*float64(i)/float64(n-1)
		}
	}
	if order == Descending {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return out
}

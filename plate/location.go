// SPDX-License-Identifier: MIT

package plate

import (
	"fmt"
	"strconv"
	"strings"
)

// Ref addresses one row or column, by label or by 1-indexed number.
// A label that matches no name but parses as an in-range integer is taken as a number.
type Ref struct {
	label   string
	num     int
	byLabel bool
}

// Label refers to a row or column by name ("A", or "3" on a numbered axis).
func Label(s string) Ref { return Ref{label: s, byLabel: true} }

// Num refers to a row or column by its 1-indexed position.
func Num(n int) Ref { return Ref{num: n} }

// String returns the label or the number.
func (r Ref) String() string {
	if r.byLabel {
		return r.label
	}

	return strconv.Itoa(r.num)
}

// Location is any encoding of a single well. The set is sealed:
//   - Well: canonical zero-indexed (row, column);
//   - Position: (row, column) pair of Refs;
//   - Loc: "<row>:<column>" text.
type Location interface {
	fmt.Stringer
	resolve(rows, cols axis) (Well, error)
}

var (
	_ Location = Well{}
	_ Location = Position{}
	_ Location = Loc("")
)

// Well is the canonical zero-indexed (row, column) form of a location.
type Well struct {
	Row, Col int
}

// resolve checks bounds and returns w unchanged.
func (w Well) resolve(rows, cols axis) (Well, error) {
	if w.Row < 0 || w.Row >= rows.len() || w.Col < 0 || w.Col >= cols.len() {
		return Well{}, fmt.Errorf("plate: well %s outside %dx%d: %w", w, rows.len(), cols.len(), ErrInvalidLocation)
	}

	return w, nil
}

// String renders "(row,col)" in zero-indexed form.
func (w Well) String() string { return fmt.Sprintf("(%d,%d)", w.Row, w.Col) }

// Position is the (row, column) tuple form of a location.
type Position struct {
	Row, Col Ref
}

// Pos builds a Position from a row and a column reference.
func Pos(row, col Ref) Position { return Position{Row: row, Col: col} }

func (p Position) resolve(rows, cols axis) (Well, error) {
	r, err := rows.resolve(p.Row)
	if err != nil {
		return Well{}, err
	}
	c, err := cols.resolve(p.Col)
	if err != nil {
		return Well{}, err
	}

	return Well{Row: r, Col: c}, nil
}

// String renders "row:column".
func (p Position) String() string { return p.Row.String() + ":" + p.Col.String() }

// Loc is the "<row>:<column>" text form of a location, e.g. "A:1" or "1:12".
// Surrounding spaces around either part are ignored.
type Loc string

func (l Loc) resolve(rows, cols axis) (Well, error) {
	parts := strings.Split(string(l), ":")
	if len(parts) != 2 {
		return Well{}, fmt.Errorf("plate: location %q is not of the form row:column: %w", string(l), ErrInvalidLocation)
	}

	return Pos(Label(strings.TrimSpace(parts[0])), Label(strings.TrimSpace(parts[1]))).resolve(rows, cols)
}

// String returns the text as given.
func (l Loc) String() string { return string(l) }

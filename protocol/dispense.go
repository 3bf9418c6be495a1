// SPDX-License-Identifier: MIT

package protocol

import (
	"fmt"

	"github.com/katalvlaran/plateplan/chem"
	"github.com/katalvlaran/plateplan/plate"
)

// dispense decodes one dispense block against the schema of its kind and
// applies it to the plate. step is 1-based.
func (l *loader) dispense(step int, b hclBlock) error {
	const typ = "dispense"
	fail := func(err error) error {
		return blockErrorf(b, typ, fmt.Errorf("step %d: %w", step, err))
	}
	p := l.proto.Plate

	var (
		label string
		run   func(src chem.Source) error
	)
	switch b.Label {
	case kindCustom:
		var a customArgs
		if err := decode(b, typ, &a); err != nil {
			return err
		}
		label = a.Source
		run = func(src chem.Source) error {
			m, err := wellsOf(a.Wells)
			if err != nil {
				return err
			}
			return p.AddCustom(src, m)
		}
	case kindRows:
		var a rowsArgs
		if err := decode(b, typ, &a); err != nil {
			return err
		}
		label = a.Source
		run = func(src chem.Source) error {
			refs, err := refsOf("rows", a.Rows)
			if err != nil {
				return err
			}
			return p.AddToRows(src, a.Volume, refs...)
		}
	case kindColumns:
		var a columnsArgs
		if err := decode(b, typ, &a); err != nil {
			return err
		}
		label = a.Source
		run = func(src chem.Source) error {
			refs, err := refsOf("columns", a.Columns)
			if err != nil {
				return err
			}
			return p.AddToColumns(src, a.Volume, refs...)
		}
	case kindBlock:
		var a blockArgs
		if err := decode(b, typ, &a); err != nil {
			return err
		}
		label = a.Source
		run = func(src chem.Source) error {
			return p.AddToBlock(src, a.Volume, plate.Loc(a.From), plate.Loc(a.To))
		}
	case kindFill:
		var a fillArgs
		if err := decode(b, typ, &a); err != nil {
			return err
		}
		label = a.Source
		run = func(src chem.Source) error {
			return p.FillBlockUpToVolume(src, a.Target, plate.Loc(a.From), plate.Loc(a.To))
		}
	case kindRowGradient, kindColumnGradient:
		var a gradientArgs
		if err := decode(b, typ, &a); err != nil {
			return err
		}
		label = a.Source
		run = func(src chem.Source) error {
			order, err := orderOf(a.Order)
			if err != nil {
				return err
			}
			if b.Label == kindRowGradient {
				return p.AddGradientToRow(src, a.Lo, a.Hi, plate.Loc(a.From), plate.Loc(a.To), order)
			}
			return p.AddGradientToColumn(src, a.Lo, a.Hi, plate.Loc(a.From), plate.Loc(a.To), order)
		}
	default:
		return fail(fmt.Errorf("unknown dispense kind: %w", ErrInvalidBlock))
	}

	src, err := l.source(label)
	if err != nil {
		return fail(err)
	}
	if err := run(src); err != nil {
		return fail(err)
	}
	l.opts.debug("dispense step applied", "step", step, "kind", b.Label, "source", label)

	return nil
}

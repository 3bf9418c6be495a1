// SPDX-License-Identifier: MIT

package protocol

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/plateplan/chem"
	"github.com/katalvlaran/plateplan/plate"
)

// Protocol is a loaded and executed protocol file. Reagents, Solvents and
// Stocks are in declaration order; Plate holds the result of every dispense
// step.
type Protocol struct {
	Plate    *plate.Plate
	Reagents []*chem.Reagent
	Solvents []*chem.Solvent
	Stocks   []*chem.StockSolution

	labels map[chem.Handle]string
}

// Label returns the block label an object was declared under, or "" if it
// does not belong to this protocol.
func (p *Protocol) Label(obj interface{ Handle() chem.Handle }) string {
	if obj == nil {
		return ""
	}

	return p.labels[obj.Handle()]
}

// Load reads the protocol at path and runs it. See Parse.
func Load(path string, opts ...Option) (*Protocol, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("protocol: %w", err)
	}

	return Parse(src, path, opts...)
}

// Parse decodes src (named filename in diagnostics), builds the plate and the
// chemistry and runs every dispense step in file order.
// Stage 1 (Decode): HCL syntax and block layout.
// Stage 2 (Declare): plate, reagents, solvents, stocks, in that order.
// Stage 3 (Run): dispense steps. The first failing step aborts the load.
// Errors: ErrSyntax, ErrInvalidBlock, ErrDuplicateLabel, ErrUnknownReference,
// ErrWrongKind, and any chem or plate sentinel.
func Parse(src []byte, filename string, opts ...Option) (*Protocol, error) {
	o := gatherOptions(opts...)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("protocol: parse %s: %w: %w", filename, ErrSyntax, diags)
	}
	var f hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("protocol: decode %s: %w: %w", filename, ErrSyntax, diags)
	}

	l := &loader{
		opts:    o,
		objects: make(map[string]any),
		proto:   &Protocol{labels: make(map[chem.Handle]string)},
	}
	if err := l.declare(&f); err != nil {
		return nil, err
	}
	for i, b := range f.Dispenses {
		if err := l.dispense(i+1, b); err != nil {
			return nil, err
		}
	}
	o.debug("protocol loaded", "file", filename, "plate", l.proto.Plate.Name(),
		"reagents", len(l.proto.Reagents), "solvents", len(l.proto.Solvents),
		"stocks", len(l.proto.Stocks), "steps", len(f.Dispenses))

	return l.proto, nil
}

// loader carries the state of one Parse call.
type loader struct {
	opts    options
	objects map[string]any // label → *chem.Reagent | *chem.Solvent | *chem.StockSolution
	proto   *Protocol
}

// blockErrorf prefixes err with the block's position and header.
func blockErrorf(b hclBlock, typ string, err error) error {
	return fmt.Errorf("%s: %s %q: %w", posOf(b.Body), typ, b.Label, err)
}

// posOf renders "file:line,column" of the start of body.
func posOf(body hcl.Body) string {
	r := body.MissingItemRange()
	return fmt.Sprintf("%s:%d,%d", r.Filename, r.Start.Line, r.Start.Column)
}

// decode decodes b's body into args, mapping diagnostics to ErrSyntax.
func decode(b hclBlock, typ string, args any) error {
	if diags := gohcl.DecodeBody(b.Body, nil, args); diags.HasErrors() {
		return blockErrorf(b, typ, fmt.Errorf("%w: %w", ErrSyntax, diags))
	}

	return nil
}

func (l *loader) declare(f *hclFile) error {
	if err := l.declarePlate(f.Plate); err != nil {
		return err
	}
	for _, b := range f.Reagents {
		if err := l.declareReagent(b); err != nil {
			return err
		}
	}
	for _, b := range f.Solvents {
		if err := l.declareSolvent(b); err != nil {
			return err
		}
	}
	for _, b := range f.Stocks {
		if err := l.declareStock(b); err != nil {
			return err
		}
	}

	return nil
}

// register binds label to obj in the shared namespace.
func (l *loader) register(b hclBlock, typ string, h chem.Handle, obj any) error {
	if strings.TrimSpace(b.Label) == "" {
		return blockErrorf(b, typ, fmt.Errorf("label must not be blank: %w", ErrInvalidBlock))
	}
	if _, dup := l.objects[b.Label]; dup {
		return blockErrorf(b, typ, ErrDuplicateLabel)
	}
	l.objects[b.Label] = obj
	l.proto.labels[h] = b.Label

	return nil
}

func (l *loader) declarePlate(b hclBlock) error {
	const typ = "plate"
	var a plateArgs
	if err := decode(b, typ, &a); err != nil {
		return err
	}
	opts := l.opts.plateOptions()

	var (
		p   *plate.Plate
		err error
	)
	if a.Preset != nil {
		if a.Make != nil || !a.Rows.IsNull() || a.RowCount != nil || !a.Columns.IsNull() || a.ColumnCount != nil {
			return blockErrorf(b, typ, fmt.Errorf("preset excludes make, rows and columns: %w", ErrInvalidBlock))
		}
		switch *a.Preset {
		case "generic96":
			p, err = plate.NewGeneric96(b.Label, a.MaxVolume, opts...)
		case "generic384":
			p, err = plate.NewGeneric384(b.Label, a.MaxVolume, opts...)
		default:
			return blockErrorf(b, typ, fmt.Errorf("unknown preset %q: %w", *a.Preset, ErrInvalidBlock))
		}
	} else {
		rows, aerr := axisOf("rows", a.Rows, "row_count", a.RowCount)
		if aerr != nil {
			return blockErrorf(b, typ, aerr)
		}
		cols, aerr := axisOf("columns", a.Columns, "column_count", a.ColumnCount)
		if aerr != nil {
			return blockErrorf(b, typ, aerr)
		}
		makeLabel := "custom plate"
		if a.Make != nil {
			makeLabel = *a.Make
		}
		p, err = plate.New(b.Label, makeLabel, rows, cols, a.MaxVolume, opts...)
	}
	if err != nil {
		return blockErrorf(b, typ, err)
	}
	l.proto.Plate = p

	return nil
}

func (l *loader) declareReagent(b hclBlock) error {
	const typ = "reagent"
	var a reagentArgs
	if err := decode(b, typ, &a); err != nil {
		return err
	}
	name := b.Label
	if a.Name != nil {
		name = *a.Name
	}

	var (
		r   *chem.Reagent
		err error
	)
	switch a.Kind {
	case "solid":
		if a.Density != nil {
			return blockErrorf(b, typ, fmt.Errorf("a solid has no density: %w", ErrInvalidBlock))
		}
		r, err = chem.NewSolid(name, a.MolecularWeight)
	case "liquid":
		if a.Density == nil {
			return blockErrorf(b, typ, fmt.Errorf("a liquid needs a density: %w", ErrInvalidBlock))
		}
		r, err = chem.NewLiquid(name, a.MolecularWeight, *a.Density)
	default:
		return blockErrorf(b, typ, fmt.Errorf("kind %q must be solid or liquid: %w", a.Kind, ErrInvalidBlock))
	}
	if err != nil {
		return blockErrorf(b, typ, err)
	}
	if err := l.register(b, typ, r.Handle(), r); err != nil {
		return err
	}
	l.proto.Reagents = append(l.proto.Reagents, r)

	return nil
}

func (l *loader) declareSolvent(b hclBlock) error {
	const typ = "solvent"
	var a solventArgs
	if err := decode(b, typ, &a); err != nil {
		return err
	}
	name := b.Label
	if a.Name != nil {
		name = *a.Name
	}
	s, err := chem.NewSolvent(name, a.Volume)
	if err != nil {
		return blockErrorf(b, typ, err)
	}
	if err := l.register(b, typ, s.Handle(), s); err != nil {
		return err
	}
	l.proto.Solvents = append(l.proto.Solvents, s)

	return nil
}

func (l *loader) declareStock(b hclBlock) error {
	const typ = "stock"
	var a stockArgs
	if err := decode(b, typ, &a); err != nil {
		return err
	}

	var base chem.Base
	switch obj := l.objects[a.Base].(type) {
	case *chem.Reagent:
		base = obj
	case *chem.StockSolution:
		base = obj
	case nil:
		return blockErrorf(b, typ, fmt.Errorf("base %q: %w", a.Base, ErrUnknownReference))
	default:
		return blockErrorf(b, typ, fmt.Errorf("base %q is a %s, not a reagent or stock: %w", a.Base, kindOf(obj), ErrWrongKind))
	}
	var solvent *chem.Solvent
	switch obj := l.objects[a.Solvent].(type) {
	case *chem.Solvent:
		solvent = obj
	case nil:
		return blockErrorf(b, typ, fmt.Errorf("solvent %q: %w", a.Solvent, ErrUnknownReference))
	default:
		return blockErrorf(b, typ, fmt.Errorf("solvent %q is a %s: %w", a.Solvent, kindOf(obj), ErrWrongKind))
	}

	s, err := chem.NewStockSolution(base, a.Concentration, solvent, a.Volume)
	if err != nil {
		return blockErrorf(b, typ, err)
	}
	if err := l.register(b, typ, s.Handle(), s); err != nil {
		return err
	}
	l.proto.Stocks = append(l.proto.Stocks, s)

	return nil
}

// source resolves a dispense source label.
func (l *loader) source(label string) (chem.Source, error) {
	switch obj := l.objects[label].(type) {
	case *chem.StockSolution:
		return obj, nil
	case *chem.Solvent:
		return obj, nil
	case nil:
		return nil, fmt.Errorf("source %q: %w", label, ErrUnknownReference)
	default:
		return nil, fmt.Errorf("source %q is a %s, not a stock or solvent: %w", label, kindOf(obj), ErrWrongKind)
	}
}

// kindOf names the block type of a registered object.
func kindOf(obj any) string {
	switch obj.(type) {
	case *chem.Reagent:
		return "reagent"
	case *chem.Solvent:
		return "solvent"
	case *chem.StockSolution:
		return "stock"
	default:
		return fmt.Sprintf("%T", obj)
	}
}

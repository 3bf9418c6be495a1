// SPDX-License-Identifier: MIT

package report

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/plateplan/chem"
	"github.com/katalvlaran/plateplan/plate"
)

// Table layout.
const (
	minWidth = 0
	tabWidth = 0
	padding  = 2
	padChar  = ' '
	indent   = "  "
	empty    = "-" // printed for a zero cell
)

// Write renders p and the recipes of stocks to w. stocks should list every
// stock the protocol declares, bases before dilutions; they are printed in
// the given order. Nothing is written if p is nil.
// Errors: plate.ErrInvalidArgument for a nil plate or stock, or the error of
// the single write to w.
func Write(w io.Writer, p *plate.Plate, stocks []*chem.StockSolution) error {
	if p == nil {
		return fmt.Errorf("report.Write: nil plate: %w", plate.ErrInvalidArgument)
	}
	for i, s := range stocks {
		if s == nil {
			return fmt.Errorf("report.Write: stock %d is nil: %w", i, plate.ErrInvalidArgument)
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Plate: %s\n", p)
	writeRecipes(&buf, stocks)
	writeSteps(&buf, p)
	writeGrid(&buf, "Volumes (uL)", p, p.Volumes())
	for _, r := range p.Reagents() {
		conc, _ := p.Concentrations(r)
		writeGrid(&buf, fmt.Sprintf("Concentration of %s (mM)", r.Name()), p, conc)
	}
	writeSupply(&buf, p)
	writeWarnings(&buf, p)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("report.Write: %w", err)
	}

	return nil
}

func newTable(buf *bytes.Buffer, flags uint) *tabwriter.Writer {
	return tabwriter.NewWriter(buf, minWidth, tabWidth, padding, padChar, flags)
}

func writeRecipes(buf *bytes.Buffer, stocks []*chem.StockSolution) {
	buf.WriteString("\nStock solutions:\n")
	if len(stocks) == 0 {
		buf.WriteString(indent + "none\n")
		return
	}
	tw := newTable(buf, 0)
	for _, s := range stocks {
		fmt.Fprintf(tw, "%s%s\t%s\n", indent, s, s.Instructions())
	}
	_ = tw.Flush() // a bytes.Buffer does not fail
}

func writeSteps(buf *bytes.Buffer, p *plate.Plate) {
	buf.WriteString("\nSteps:\n")
	log := p.Instructions()
	if len(log) == 0 {
		buf.WriteString(indent + "none\n")
		return
	}
	for _, in := range log {
		fmt.Fprintf(buf, "%s%s\n", indent, in)
	}
}

// writeGrid prints g with row names down the left and column names across.
func writeGrid(buf *bytes.Buffer, title string, p *plate.Plate, g [][]float64) {
	fmt.Fprintf(buf, "\n%s:\n", title)
	tw := newTable(buf, tabwriter.AlignRight)
	fmt.Fprint(tw, indent, "\t")
	for _, c := range p.ColumnNames() {
		fmt.Fprintf(tw, "%s\t", c)
	}
	fmt.Fprintln(tw)
	for r, name := range p.RowNames() {
		fmt.Fprintf(tw, "%s%s\t", indent, name)
		for _, v := range g[r] {
			fmt.Fprintf(tw, "%s\t", cell(v))
		}
		fmt.Fprintln(tw)
	}
	_ = tw.Flush()
}

func cell(v float64) string {
	if v == 0 {
		return empty
	}

	return fmt.Sprintf("%.2f", v)
}

func writeSupply(buf *bytes.Buffer, p *plate.Plate) {
	buf.WriteString("\nSupply:\n")
	usage := p.Usage()
	if len(usage) == 0 {
		buf.WriteString(indent + "none\n")
		return
	}
	tw := newTable(buf, 0)
	fmt.Fprintf(tw, "%sSOURCE\tUSED\tAVAILABLE\tSTATUS\n", indent)
	for _, u := range usage {
		status := "OK"
		if !u.Sufficient() {
			status = fmt.Sprintf("INSUFFICIENT (short by %s)", chem.FormatVolume(-u.RemainingUL()/chem.MicroLitersPerMilliLiter))
		}
		fmt.Fprintf(tw, "%s%s\t%s\t%s\t%s\n", indent, u.Source,
			chem.FormatVolume(u.UsedUL/chem.MicroLitersPerMilliLiter), chem.FormatVolume(u.Source.Volume()), status)
	}
	_ = tw.Flush()
}

func writeWarnings(buf *bytes.Buffer, p *plate.Plate) {
	buf.WriteString("\nWarnings:\n")
	warns := p.Warnings()
	if len(warns) == 0 {
		buf.WriteString(indent + "none\n")
		return
	}
	for _, w := range warns {
		fmt.Fprintf(buf, "%s%s\n", indent, w)
	}
}

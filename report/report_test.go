package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/plateplan/chem"
	"github.com/katalvlaran/plateplan/plate"
	"github.com/katalvlaran/plateplan/report"
	"github.com/stretchr/testify/require"
)

// normalize collapses runs of blanks so assertions do not depend on column widths.
func normalize(s string) []string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}

	return lines
}

func TestWrite(t *testing.T) {
	sulfate, err := chem.NewSolid("sodium sulfate", 142.04)
	require.NoError(t, err)
	water, err := chem.NewSolvent("water", 0.3)
	require.NoError(t, err)
	half, err := chem.NewStockSolution(sulfate, 0.5, water, 10)
	require.NoError(t, err)

	p, err := plate.New("demo", "strip", plate.Labeled("A", "B"), plate.Numbered(3), 150)
	require.NoError(t, err)
	require.NoError(t, p.AddToRows(half, 50, plate.Num(1)))
	require.NoError(t, p.FillBlockUpToVolume(water, 100, plate.Loc("A:1"), plate.Loc("B:3")))
	require.NoError(t, p.AddCustom(water, plate.DispenseMap{{At: plate.Loc("B:3"), Volume: 60}}))

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, p, []*chem.StockSolution{half}))

	want := []string{
		"Plate: demo (strip, 2x3, max 150.000 uL/well)",
		"",
		"Stock solutions:",
		"sodium sulfate (0.50 M in water) Add 710.2 mg of sodium sulfate to 10.000 mL of water.",
		"",
		"Steps:",
		"step 1: add 50.00 uL of sodium sulfate (0.50 M in water) to each of A:1, A:2, A:3 (3 wells, 150.00 uL total)",
		"step 2: add water to A:1 (50.00 uL), A:2 (50.00 uL), A:3 (50.00 uL), B:1 (100.00 uL), B:2 (100.00 uL), B:3 (100.00 uL) (6 wells, 450.00 uL total)",
		"step 3: add 60.00 uL of water to B:3",
		"",
		"Volumes (uL):",
		"1 2 3",
		"A 100.00 100.00 100.00",
		"B 100.00 100.00 160.00",
		"",
		"Concentration of sodium sulfate (mM):",
		"1 2 3",
		"A 250.00 250.00 250.00",
		"B - - -",
		"",
		"Supply:",
		"SOURCE USED AVAILABLE STATUS",
		"sodium sulfate (0.50 M in water) 150.00 uL 10.000 mL OK",
		"water 510.00 uL 300.00 uL INSUFFICIENT (short by 210.00 uL)",
		"",
		"Warnings:",
		"step 3: 1 well(s) over 150.00 uL after adding water: B:3 (160.00 uL)",
	}
	require.Equal(t, want, normalize(buf.String()))
}

func TestWrite_GridColumnsLineUp(t *testing.T) {
	water, err := chem.NewSolvent("water", 10)
	require.NoError(t, err)
	p, err := plate.NewGeneric96("aligned", 1000)
	require.NoError(t, err)
	require.NoError(t, p.AddCustom(water, plate.DispenseMap{{At: plate.Loc("A:12"), Volume: 123.45}}))

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, p, nil))

	var header, rowA string
	for _, l := range strings.Split(buf.String(), "\n") {
		switch f := strings.Fields(l); {
		case len(f) == 12 && f[0] == "1" && header == "":
			header = l
		case len(f) == 13 && f[0] == "A" && rowA == "":
			rowA = l
		}
	}
	require.NotEmpty(t, header)
	require.NotEmpty(t, rowA)
	// Right-aligned: the last column ends at the same offset in both lines.
	require.Equal(t, strings.Index(header, "12")+len("12"), strings.Index(rowA, "123.45")+len("123.45"))
}

func TestWrite_EmptyPlate(t *testing.T) {
	p, err := plate.NewGeneric384("empty", 100)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, p, nil))
	out := buf.String()
	require.Equal(t, 4, strings.Count(out, "  none\n")) // recipes, steps, supply, warnings
	require.NotContains(t, out, "Concentration of")
	require.Contains(t, out, "Volumes (uL):")
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWrite_Errors(t *testing.T) {
	p, err := plate.NewGeneric96("p", 100)
	require.NoError(t, err)

	require.ErrorIs(t, report.Write(&bytes.Buffer{}, nil, nil), plate.ErrInvalidArgument)
	require.ErrorIs(t, report.Write(&bytes.Buffer{}, p, []*chem.StockSolution{nil}), plate.ErrInvalidArgument)
	require.ErrorIs(t, report.Write(failingWriter{}, p, nil), errDiskFull)
}

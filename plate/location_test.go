package plate_test

import (
	"testing"

	"github.com/katalvlaran/plateplan/plate"
	"github.com/stretchr/testify/require"
)

// TestResolve_Encodings checks every encoding resolves to the same canonical well.
func TestResolve_Encodings(t *testing.T) {
	p := new96(t, 100)
	want := plate.Well{Row: 1, Col: 2}

	cases := []struct {
		name string
		loc  plate.Location
	}{
		{"Text", plate.Loc("B:3")},
		{"TextSpaces", plate.Loc(" B : 3 ")},
		{"TextNumericRow", plate.Loc("2:3")},
		{"PairLabels", plate.Pos(plate.Label("B"), plate.Label("3"))},
		{"PairNumbers", plate.Pos(plate.Num(2), plate.Num(3))},
		{"PairMixed", plate.Pos(plate.Label("B"), plate.Num(3))},
		{"PairNumericString", plate.Pos(plate.Label("2"), plate.Label("3"))},
		{"Canonical", plate.Well{Row: 1, Col: 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.Resolve(tc.loc)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

// TestResolve_CanonicalIsIdempotent resolves every well of the plate to itself.
func TestResolve_CanonicalIsIdempotent(t *testing.T) {
	p := new96(t, 100)
	for r := 0; r < p.Rows(); r++ {
		for c := 0; c < p.Columns(); c++ {
			w := plate.Well{Row: r, Col: c}
			got, err := p.Resolve(w)
			require.NoError(t, err)
			require.Equal(t, w, got)

			again, err := p.Resolve(got)
			require.NoError(t, err)
			require.Equal(t, got, again)
		}
	}
}

// TestResolve_Invalid covers the InvalidLocation paths.
func TestResolve_Invalid(t *testing.T) {
	p := new96(t, 100)
	cases := []struct {
		name string
		loc  plate.Location
	}{
		{"Nil", nil},
		{"NoColon", plate.Loc("A1")},
		{"TwoColons", plate.Loc("A:1:2")},
		{"UnknownRow", plate.Loc("Z:1")},
		{"RowZero", plate.Loc("0:1")},
		{"ColumnTooLarge", plate.Loc("A:13")},
		{"NegativeNumber", plate.Pos(plate.Num(-1), plate.Num(1))},
		{"NotANumber", plate.Pos(plate.Label("A"), plate.Label("1.5"))},
		{"CanonicalOutOfRange", plate.Well{Row: 8, Col: 0}},
		{"CanonicalNegative", plate.Well{Row: 0, Col: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := p.Resolve(tc.loc)
			require.ErrorIs(t, err, plate.ErrInvalidLocation)
		})
	}
}

// TestResolve_LabelBeatsNumber ensures an exact name wins over numeric parsing
// on axes whose labels look like decimals.
func TestResolve_LabelBeatsNumber(t *testing.T) {
	p, err := plate.New("p2", "test plate",
		plate.Labeled("A", "aa", "a"), plate.Labeled("1.5", "1.7", "1.70"), 10)
	require.NoError(t, err)

	w, err := p.Resolve(plate.Loc("a:1.70"))
	require.NoError(t, err)
	require.Equal(t, plate.Well{Row: 2, Col: 2}, w)

	w, err = p.Resolve(plate.Loc("3:2"))
	require.NoError(t, err)
	require.Equal(t, plate.Well{Row: 2, Col: 1}, w)

	_, err = p.Resolve(plate.Pos(plate.Label("a "), plate.Num(1))) // no trimming for Refs
	require.ErrorIs(t, err, plate.ErrInvalidLocation)
}

// TestWellName renders labels for both labeled and numbered axes.
func TestWellName(t *testing.T) {
	p := new96(t, 100)
	require.Equal(t, "A:1", p.WellName(plate.Well{Row: 0, Col: 0}))
	require.Equal(t, "H:12", p.WellName(plate.Well{Row: 7, Col: 11}))
	require.Equal(t, "B:3", plate.Pos(plate.Label("B"), plate.Num(3)).String())
}

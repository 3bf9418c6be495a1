package plate_test

import (
	"testing"

	"github.com/katalvlaran/plateplan/chem"
	"github.com/katalvlaran/plateplan/plate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillSample runs a mixed protocol on p, including one overflow.
func fillSample(t *testing.T, k kit, p *plate.Plate) {
	t.Helper()
	require.NoError(t, p.AddToRows(k.half, 12.5, plate.Num(1), plate.Num(2)))
	require.NoError(t, p.AddGradientToRow(k.n10, 0.1, 33.3, plate.Loc("C:1"), plate.Loc("C:12"), plate.Descending))
	require.NoError(t, p.AddToColumns(k.n100, 1.7, plate.Num(5)))
	require.NoError(t, p.FillBlockUpToVolume(k.mecn, 90, plate.Loc("A:1"), plate.Loc("H:12")))
	require.NoError(t, p.AddCustom(k.water, plate.MapOf(map[string]float64{"A:1": 20, "H:12": 0.3})))
}

func TestReplay_ReproducesState(t *testing.T) {
	k := newKit(t)
	p := new96(t, 100)
	fillSample(t, k, p)

	q, err := p.Replay()
	require.NoError(t, err)
	require.True(t, p.SameState(q))
	require.True(t, q.SameState(p))
	require.Equal(t, p.Usage(), q.Usage())
	require.Equal(t, p.Instructions(), q.Instructions())
	require.Equal(t, p.Warnings(), q.Warnings())
	require.Equal(t, p.String(), q.String())

	// Diverging afterwards breaks equality.
	require.NoError(t, q.AddCustom(k.water, plate.DispenseMap{{At: plate.Loc("B:7"), Volume: 1e-9}}))
	require.False(t, p.SameState(q))
	require.False(t, p.SameState(nil))
}

func TestSameState_ReagentOrderMatters(t *testing.T) {
	k := newKit(t)
	p := new96(t, 100)
	q := new96(t, 100)

	require.NoError(t, p.AddCustom(k.half, plate.DispenseMap{{At: plate.Loc("A:1"), Volume: 1}}))
	require.NoError(t, p.AddCustom(k.n100, plate.DispenseMap{{At: plate.Loc("A:2"), Volume: 1}}))
	require.NoError(t, q.AddCustom(k.n100, plate.DispenseMap{{At: plate.Loc("A:2"), Volume: 1}}))
	require.NoError(t, q.AddCustom(k.half, plate.DispenseMap{{At: plate.Loc("A:1"), Volume: 1}}))

	require.Equal(t, p.Volumes(), q.Volumes())
	require.False(t, p.SameState(q))
}

func TestConcentrations(t *testing.T) {
	k := newKit(t)
	p := new96(t, 100)

	require.NoError(t, p.AddCustom(k.n100, plate.DispenseMap{{At: plate.Loc("A:1"), Volume: 10}}))
	require.NoError(t, p.AddCustom(k.mecn, plate.DispenseMap{{At: plate.Loc("A:1"), Volume: 90}, {At: plate.Loc("A:2"), Volume: 5}}))

	conc, ok := p.Concentrations(k.nitrile)
	require.True(t, ok)
	require.InDelta(t, 10.0, conc[0][0], 1e-12) // 100 mM diluted tenfold
	require.Equal(t, 0.0, conc[0][1])           // solvent only
	require.Equal(t, 0.0, conc[5][5])           // empty well

	_, ok = p.Concentrations(k.sulfate)
	require.False(t, ok)
	_, ok = p.Concentrations(nil)
	require.False(t, ok)
	_, ok = p.Moles(nil)
	require.False(t, ok)
}

func TestVolume_Errors(t *testing.T) {
	p := new96(t, 100)
	_, err := p.Volume(plate.Loc("Z:1"))
	require.ErrorIs(t, err, plate.ErrInvalidLocation)
	_, err = p.Volume(nil)
	require.ErrorIs(t, err, plate.ErrInvalidLocation)
}

func TestExports_AreCopies(t *testing.T) {
	k := newKit(t)
	p := new96(t, 10)
	require.NoError(t, p.AddCustom(k.half, plate.DispenseMap{{At: plate.Loc("A:1"), Volume: 20}}))

	v := p.Volumes()
	v[0][0] = -1
	m, _ := p.Moles(k.sulfate)
	m[0][0] = -1
	r := p.Reagents()
	r[0] = nil
	u := p.Usage()
	u[0].UsedUL = -1
	w := p.Warnings()
	w[0].Wells[0].Volume = -1

	got, _ := p.Volume(plate.Loc("A:1"))
	assert.Equal(t, 20.0, got)
	m, _ = p.Moles(k.sulfate)
	assert.Equal(t, 10.0, m[0][0])
	assert.Equal(t, []*chem.Reagent{k.sulfate}, p.Reagents())
	assert.Equal(t, 20.0, p.Usage()[0].UsedUL)
	assert.Equal(t, 20.0, p.Warnings()[0].Wells[0].Volume)
}

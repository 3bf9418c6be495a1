package plate_test

import (
	"testing"

	"github.com/katalvlaran/plateplan/chem"
	"github.com/katalvlaran/plateplan/plate"
	"github.com/stretchr/testify/require"
)

// kit bundles the chemistry shared by the plate tests.
type kit struct {
	sulfate *chem.Reagent
	nitrile *chem.Reagent
	water   *chem.Solvent
	mecn    *chem.Solvent
	half    *chem.StockSolution // sodium sulfate 0.5 M in water
	n100    *chem.StockSolution // benzonitrile 0.1 M in acetonitrile
	n10     *chem.StockSolution // benzonitrile 0.01 M in acetonitrile (dilution of n100)
}

func newKit(t *testing.T) kit {
	t.Helper()
	var k kit
	var err error
	k.sulfate, err = chem.NewSolid("sodium sulfate", 142.04)
	require.NoError(t, err)
	k.nitrile, err = chem.NewLiquid("benzonitrile", 117.15, 1.015)
	require.NoError(t, err)
	k.water, err = chem.NewSolvent("water", 5)
	require.NoError(t, err)
	k.mecn, err = chem.NewSolvent("acetonitrile", 20)
	require.NoError(t, err)
	k.half, err = chem.NewStockSolution(k.sulfate, 0.5, k.water, 10)
	require.NoError(t, err)
	k.n100, err = chem.NewStockSolution(k.nitrile, 0.1, k.mecn, 1)
	require.NoError(t, err)
	k.n10, err = chem.NewStockSolution(k.n100, 0.01, k.mecn, 1)
	require.NoError(t, err)

	return k
}

// new96 returns an empty 8x12 plate holding at most maxUL per well.
func new96(t *testing.T, maxUL float64, opts ...plate.Option) *plate.Plate {
	t.Helper()
	p, err := plate.NewGeneric96("test plate", maxUL, opts...)
	require.NoError(t, err)

	return p
}

// sum adds every cell of g.
func sum(g [][]float64) float64 {
	var s float64
	for _, row := range g {
		for _, v := range row {
			s += v
		}
	}

	return s
}

// zeros returns an r×c grid of zeros.
func zeros(r, c int) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
	}

	return out
}

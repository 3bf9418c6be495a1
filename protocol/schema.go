// SPDX-License-Identifier: MIT

package protocol

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// hclFile is the top-level layout of a protocol file. Each block keeps its
// body so it can be decoded against the schema of its kind in a second pass.
type hclFile struct {
	Plate     hclBlock   `hcl:"plate,block"`
	Reagents  []hclBlock `hcl:"reagent,block"`
	Solvents  []hclBlock `hcl:"solvent,block"`
	Stocks    []hclBlock `hcl:"stock,block"`
	Dispenses []hclBlock `hcl:"dispense,block"`
}

// hclBlock is any labeled block: plate name, chemistry label or dispense kind.
type hclBlock struct {
	Label string   `hcl:"label,label"`
	Body  hcl.Body `hcl:",remain"`
}

type plateArgs struct {
	Preset      *string   `hcl:"preset,optional"`
	Make        *string   `hcl:"make,optional"`
	Rows        cty.Value `hcl:"rows,optional"`
	RowCount    *int      `hcl:"row_count,optional"`
	Columns     cty.Value `hcl:"columns,optional"`
	ColumnCount *int      `hcl:"column_count,optional"`
	MaxVolume   float64   `hcl:"max_volume"`
}

type reagentArgs struct {
	Name            *string  `hcl:"name,optional"`
	Kind            string   `hcl:"kind"`
	MolecularWeight float64  `hcl:"molecular_weight"`
	Density         *float64 `hcl:"density,optional"`
}

type solventArgs struct {
	Name   *string `hcl:"name,optional"`
	Volume float64 `hcl:"volume"`
}

type stockArgs struct {
	Base          string  `hcl:"base"`
	Concentration float64 `hcl:"concentration"`
	Solvent       string  `hcl:"solvent"`
	Volume        float64 `hcl:"volume"`
}

// Dispense kinds.
const (
	kindCustom         = "custom"
	kindRows           = "rows"
	kindColumns        = "columns"
	kindBlock          = "block"
	kindFill           = "fill"
	kindRowGradient    = "row_gradient"
	kindColumnGradient = "column_gradient"
)

type customArgs struct {
	Source string         `hcl:"source"`
	Wells  hcl.Expression `hcl:"wells"`
}

type rowsArgs struct {
	Source string    `hcl:"source"`
	Volume float64   `hcl:"volume"`
	Rows   cty.Value `hcl:"rows"`
}

type columnsArgs struct {
	Source  string    `hcl:"source"`
	Volume  float64   `hcl:"volume"`
	Columns cty.Value `hcl:"columns"`
}

type blockArgs struct {
	Source string  `hcl:"source"`
	Volume float64 `hcl:"volume"`
	From   string  `hcl:"from"`
	To     string  `hcl:"to"`
}

type fillArgs struct {
	Source string  `hcl:"source"`
	Target float64 `hcl:"target"`
	From   string  `hcl:"from"`
	To     string  `hcl:"to"`
}

type gradientArgs struct {
	Source string  `hcl:"source"`
	From   string  `hcl:"from"`
	To     string  `hcl:"to"`
	Lo     float64 `hcl:"lo"`
	Hi     float64 `hcl:"hi"`
	Order  *string `hcl:"order,optional"`
}

// SPDX-License-Identifier: MIT

package protocol

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/plateplan/plate"
)

// axisOf builds a plate axis from either a list of names or a count.
func axisOf(namesAttr string, names cty.Value, countAttr string, count *int) (plate.Axis, error) {
	switch {
	case !names.IsNull() && count != nil:
		return plate.Axis{}, fmt.Errorf("%s and %s are exclusive: %w", namesAttr, countAttr, ErrInvalidBlock)
	case count != nil:
		return plate.Numbered(*count), nil
	case names.IsNull():
		return plate.Axis{}, fmt.Errorf("one of %s or %s is required: %w", namesAttr, countAttr, ErrInvalidBlock)
	}

	list, err := convert.Convert(names, cty.List(cty.String))
	if err != nil {
		return plate.Axis{}, fmt.Errorf("%s must be a list of names: %v: %w", namesAttr, err, ErrInvalidBlock)
	}
	var out []string
	if err := gocty.FromCtyValue(list, &out); err != nil {
		return plate.Axis{}, fmt.Errorf("%s: %v: %w", namesAttr, err, ErrInvalidBlock)
	}

	return plate.Labeled(out...), nil
}

// refsOf accepts a single label or number, or a list/tuple/set of them.
func refsOf(attr string, v cty.Value) ([]plate.Ref, error) {
	if v.IsNull() {
		return nil, fmt.Errorf("%s must not be null: %w", attr, ErrInvalidBlock)
	}
	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() && !ty.IsSetType() {
		r, err := refOf(attr, v)
		if err != nil {
			return nil, err
		}
		return []plate.Ref{r}, nil
	}

	out := make([]plate.Ref, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		_, el := it.Element()
		r, err := refOf(attr, el)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

// refOf maps a string to a label reference and a whole number to a 1-based
// position reference.
func refOf(attr string, v cty.Value) (plate.Ref, error) {
	switch {
	case v.IsNull():
		return plate.Ref{}, fmt.Errorf("%s: null entry: %w", attr, ErrInvalidBlock)
	case v.Type().Equals(cty.String):
		return plate.Label(v.AsString()), nil
	case v.Type().Equals(cty.Number):
		var n int
		if err := gocty.FromCtyValue(v, &n); err != nil {
			return plate.Ref{}, fmt.Errorf("%s: %s is not a whole number: %w", attr, v.AsBigFloat().String(), ErrInvalidBlock)
		}
		return plate.Num(n), nil
	default:
		return plate.Ref{}, fmt.Errorf("%s: %s is neither a label nor a number: %w", attr, v.Type().FriendlyName(), ErrInvalidBlock)
	}
}

// wellsOf reads an object expression { "A:1" = 10, ... } in source order.
func wellsOf(expr hcl.Expression) (plate.DispenseMap, error) {
	pairs, diags := hcl.ExprMap(expr)
	if diags.HasErrors() {
		return nil, fmt.Errorf("wells must be an object of well = volume: %w: %w", ErrSyntax, diags)
	}

	out := make(plate.DispenseMap, 0, len(pairs))
	for _, kv := range pairs {
		k, diags := kv.Key.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("wells: %w: %w", ErrSyntax, diags)
		}
		if k.IsNull() || !k.Type().Equals(cty.String) {
			return nil, fmt.Errorf("wells: keys must be well names: %w", ErrInvalidBlock)
		}
		v, diags := kv.Value.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("wells: %w: %w", ErrSyntax, diags)
		}
		num, err := convert.Convert(v, cty.Number)
		if err != nil || num.IsNull() {
			return nil, fmt.Errorf("wells: volume for %q must be a number: %w", k.AsString(), ErrInvalidBlock)
		}
		var vol float64
		if err := gocty.FromCtyValue(num, &vol); err != nil {
			return nil, fmt.Errorf("wells: volume for %q: %v: %w", k.AsString(), err, ErrInvalidBlock)
		}
		out = append(out, plate.Dispense{At: plate.Loc(k.AsString()), Volume: vol})
	}

	return out, nil
}

// orderOf parses a gradient order; absent means ascending.
func orderOf(s *string) (plate.Order, error) {
	if s == nil {
		return plate.Ascending, nil
	}
	switch *s {
	case plate.Ascending.String():
		return plate.Ascending, nil
	case plate.Descending.String():
		return plate.Descending, nil
	}

	return 0, fmt.Errorf("order %q must be ascending or descending: %w", *s, ErrInvalidBlock)
}

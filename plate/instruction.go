// SPDX-License-Identifier: MIT

package plate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/plateplan/chem"
)

// WellVolume is one resolved entry of a dispense: Volume uL into Well.
// Name is the well's display name on the plate it was logged on ("A:1").
type WellVolume struct {
	Well   Well
	Name   string
	Volume float64
}

// Instruction records one dispensing call: Source went into Wells, in the
// order given by the caller. Step is 1-based and equals the call order.
type Instruction struct {
	Step   int
	Source chem.Source
	Wells  []WellVolume
}

// Total returns the summed volume of the instruction in uL.
func (in Instruction) Total() float64 {
	var t float64
	for _, w := range in.Wells {
		t += w.Volume
	}

	return t
}

// uniform reports whether every well receives the same volume.
func (in Instruction) uniform() bool {
	for _, w := range in.Wells[1:] {
		if w.Volume != in.Wells[0].Volume {
			return false
		}
	}

	return true
}

// String renders one lab-readable line, e.g.
// "step 2: add 5.00 uL of toluene to each of A:1, A:2 (2 wells, 10.00 uL total)".
func (in Instruction) String() string {
	if len(in.Wells) == 0 {
		return fmt.Sprintf("step %d: nothing to add from %s", in.Step, in.Source)
	}
	names := make([]string, len(in.Wells))
	if in.uniform() {
		for i, w := range in.Wells {
			names[i] = w.Name
		}
		if len(in.Wells) == 1 {
			return fmt.Sprintf("step %d: add %.2f uL of %s to %s", in.Step, in.Wells[0].Volume, in.Source, names[0])
		}
		return fmt.Sprintf("step %d: add %.2f uL of %s to each of %s (%d wells, %.2f uL total)",
			in.Step, in.Wells[0].Volume, in.Source, strings.Join(names, ", "), len(in.Wells), in.Total())
	}
	for i, w := range in.Wells {
		names[i] = fmt.Sprintf("%s (%.2f uL)", w.Name, w.Volume)
	}

	return fmt.Sprintf("step %d: add %s to %s (%d wells, %.2f uL total)",
		in.Step, in.Source, strings.Join(names, ", "), len(in.Wells), in.Total())
}

// clone returns a copy that shares no slice with in.
func (in Instruction) clone() Instruction {
	in.Wells = append([]WellVolume(nil), in.Wells...)
	return in
}

// Warning records that after Step at least one well on the plate held more
// than Limit uL. Wells lists every such well with its accumulated volume.
type Warning struct {
	Step   int
	Source chem.Source
	Limit  float64
	Wells  []WellVolume
}

// String renders e.g.
// "step 3: 1 well(s) over 100.00 uL after adding toluene: A:1 (120.00 uL)".
func (w Warning) String() string {
	parts := make([]string, len(w.Wells))
	for i, wv := range w.Wells {
		parts[i] = fmt.Sprintf("%s (%.2f uL)", wv.Name, wv.Volume)
	}

	return fmt.Sprintf("step %d: %d well(s) over %.2f uL after adding %s: %s",
		w.Step, len(w.Wells), w.Limit, w.Source, strings.Join(parts, ", "))
}

// SupplyUsage is the cumulative volume withdrawn from one source.
type SupplyUsage struct {
	Source chem.Source
	UsedUL float64
}

// AvailableUL returns the source's total volume in uL.
func (u SupplyUsage) AvailableUL() float64 {
	return u.Source.Volume() * chem.MicroLitersPerMilliLiter
}

// RemainingUL returns AvailableUL - UsedUL; negative when over-drawn.
func (u SupplyUsage) RemainingUL() float64 { return u.AvailableUL() - u.UsedUL }

// Sufficient reports whether the source covers everything withdrawn from it.
func (u SupplyUsage) Sufficient() bool { return u.UsedUL <= u.AvailableUL() }

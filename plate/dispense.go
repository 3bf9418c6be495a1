// SPDX-License-Identifier: MIT

package plate

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/plateplan/chem"
	"github.com/katalvlaran/plateplan/grid"
)

const ctxAddCustom = "AddCustom"

// Dispense is one entry of a DispenseMap: Volume uL into the well at At.
type Dispense struct {
	At     Location
	Volume float64
}

// DispenseMap lists the wells and volumes of one dispensing call. Order is
// preserved into the instruction log.
type DispenseMap []Dispense

// MapOf builds a DispenseMap from "row:column" keys, sorted by key so the
// result is deterministic.
func MapOf(m map[string]float64) DispenseMap {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(DispenseMap, len(keys))
	for i, k := range keys {
		out[i] = Dispense{At: Loc(k), Volume: m[k]}
	}

	return out
}

// opErrorf wraps a sentinel with the plate operation name.
func (p *Plate) opErrorf(op string, err error) error {
	return fmt.Errorf("Plate(%s).%s: %w", p.name, op, err)
}

// AddCustom dispenses src into the wells of m. It is the only operation that
// mutates the plate.
//
// Implementation:
//   - Stage 1 (Validate): src is a non-nil *chem.StockSolution or *chem.Solvent,
//     m is non-empty, every volume is finite and >= 0, every location resolves,
//     no well is addressed twice.
//   - Stage 2 (Commit): accumulate uL into volumes and into the supply ledger;
//     for a stock, register its effective reagent on first sight and accumulate
//     volume*concentration umol into that reagent's slab; append the instruction.
//   - Stage 3 (Check): if any well now exceeds MaxVolume, record a Warning.
//     The dispense stays committed.
//
// Errors: ErrInvalidArgument, ErrInvalidLocation, ErrDuplicateDestination.
// On error nothing is mutated.
//
// Complexity: O(len(m)) plus O(rows*columns) for the capacity scan.
func (p *Plate) AddCustom(src chem.Source, m DispenseMap) error {
	// Stage 1: validate everything before touching state.
	var stock *chem.StockSolution
	switch s := src.(type) {
	case *chem.StockSolution:
		if s == nil {
			return p.opErrorf(ctxAddCustom, fmt.Errorf("nil stock solution: %w", ErrInvalidArgument))
		}
		stock = s
	case *chem.Solvent:
		if s == nil {
			return p.opErrorf(ctxAddCustom, fmt.Errorf("nil solvent: %w", ErrInvalidArgument))
		}
	default:
		return p.opErrorf(ctxAddCustom, fmt.Errorf("source must be a stock solution or solvent: %w", ErrInvalidArgument))
	}
	if len(m) == 0 {
		return p.opErrorf(ctxAddCustom, fmt.Errorf("empty dispense map: %w", ErrInvalidArgument))
	}

	wells := make([]WellVolume, len(m))
	seen := make(map[Well]Location, len(m))
	for i, d := range m {
		if !(d.Volume >= 0) || math.IsInf(d.Volume, 0) {
			return p.opErrorf(ctxAddCustom, fmt.Errorf("volume %g at %v must be >= 0: %w", d.Volume, d.At, ErrInvalidArgument))
		}
		w, err := p.Resolve(d.At)
		if err != nil {
			return p.opErrorf(ctxAddCustom, err)
		}
		if prev, dup := seen[w]; dup {
			return p.opErrorf(ctxAddCustom, fmt.Errorf("%v and %v both resolve to %s: %w",
				prev, d.At, p.WellName(w), ErrDuplicateDestination))
		}
		seen[w] = d.At
		wells[i] = WellVolume{Well: w, Name: p.WellName(w), Volume: d.Volume}
	}
	if err := p.checkFinite(src, stock, wells); err != nil {
		return p.opErrorf(ctxAddCustom, err)
	}

	// Stage 2: commit.
	var slab *grid.Dense
	if stock != nil {
		slab = p.moles[p.registerReagent(stock.Reagent())]
	}
	var total float64
	for _, wv := range wells {
		mustAdd(p.volumes, wv.Well, wv.Volume)
		if slab != nil {
			mustAdd(slab, wv.Well, wv.Volume*stock.Concentration())
		}
		total += wv.Volume
	}
	p.recordUsage(src, total)
	in := Instruction{Step: len(p.log) + 1, Source: src, Wells: wells}
	p.log = append(p.log, in)
	if l := p.opts.logger; l != nil {
		l.Debug("dispensed", "plate", p.name, "step", in.Step, "source", src.String(),
			"source_id", src.Handle().String(), "wells", len(wells), "total_ul", total)
	}

	// Stage 3: capacity check, non-fatal.
	p.checkCapacity(in)

	return nil
}

// checkFinite rejects a dispense whose accumulated values would overflow to
// ±Inf, so that the commit stage cannot fail half-way. That covers every well's
// volume and umol as well as the call total added to src's supply ledger.
func (p *Plate) checkFinite(src chem.Source, stock *chem.StockSolution, wells []WellVolume) error {
	var slab *grid.Dense
	if stock != nil {
		if i, ok := p.reagentIndex[stock.Reagent().Handle()]; ok {
			slab = p.moles[i]
		}
	}
	var total float64
	for _, wv := range wells {
		total += wv.Volume
		cur, _ := p.volumes.At(wv.Well.Row, wv.Well.Col)
		if math.IsInf(cur+wv.Volume, 0) {
			return fmt.Errorf("volume at %s overflows: %w", wv.Name, ErrInvalidArgument)
		}
		if stock == nil {
			continue
		}
		amount := wv.Volume * stock.Concentration()
		var have float64
		if slab != nil {
			have, _ = slab.At(wv.Well.Row, wv.Well.Col)
		}
		if math.IsInf(amount, 0) || math.IsInf(have+amount, 0) {
			return fmt.Errorf("amount at %s overflows: %w", wv.Name, ErrInvalidArgument)
		}
	}
	if math.IsInf(total, 0) || math.IsInf(p.UsageOf(src)+total, 0) {
		return fmt.Errorf("total of %d wells overflows the %s supply ledger: %w", len(wells), src, ErrInvalidArgument)
	}

	return nil
}

// mustAdd accumulates into a pre-validated cell. A failure here means the
// validation stage missed a case, which is a programming error.
func mustAdd(g *grid.Dense, w Well, delta float64) {
	if err := g.Add(w.Row, w.Col, delta); err != nil {
		panic(fmt.Sprintf("plate: accumulate %s: %v", w, err))
	}
}

// registerReagent returns the slab index of r, appending a zeroed slab the
// first time r is seen.
func (p *Plate) registerReagent(r *chem.Reagent) int {
	if i, ok := p.reagentIndex[r.Handle()]; ok {
		return i
	}
	slab, err := grid.NewDense(p.rows.len(), p.cols.len())
	if err != nil {
		panic(fmt.Sprintf("plate: allocate slab for %s: %v", r.Name(), err))
	}
	i := len(p.reagents)
	p.reagents = append(p.reagents, r)
	p.moles = append(p.moles, slab)
	p.reagentIndex[r.Handle()] = i

	return i
}

// recordUsage adds uL withdrawn from src to the supply ledger.
func (p *Plate) recordUsage(src chem.Source, uL float64) {
	i, ok := p.usageIndex[src.Handle()]
	if !ok {
		i = len(p.usage)
		p.usage = append(p.usage, SupplyUsage{Source: src})
		p.usageIndex[src.Handle()] = i
	}
	p.usage[i].UsedUL += uL
}

// checkCapacity records a Warning when any well exceeds the per-well limit.
func (p *Plate) checkCapacity(in Instruction) {
	if top, _, _ := p.volumes.Max(); !(top > p.maxVolume) {
		return
	}
	var over []WellVolume
	for r := 0; r < p.rows.len(); r++ {
		for c := 0; c < p.cols.len(); c++ {
			v, _ := p.volumes.At(r, c)
			if v > p.maxVolume {
				w := Well{Row: r, Col: c}
				over = append(over, WellVolume{Well: w, Name: p.WellName(w), Volume: v})
			}
		}
	}
	warn := Warning{Step: in.Step, Source: in.Source, Limit: p.maxVolume, Wells: over}
	p.warnings = append(p.warnings, warn)
	if l := p.opts.logger; l != nil {
		top, _, _ := p.volumes.Max()
		l.Warn("well volume exceeds plate capacity", "plate", p.name, "step", in.Step,
			"source", in.Source.String(), "source_id", in.Source.Handle().String(),
			"wells", len(over), "max_ul", top, "limit_ul", p.maxVolume)
	}
}

// SPDX-License-Identifier: MIT

package chem

import (
	"strconv"
	"sync/atomic"
)

// Handle is a stable identity issued to every Reagent, Solvent and
// StockSolution at construction. Ledgers key on Handle, never on field values.
type Handle uint64

// nextHandle is the process-wide handle counter; the zero Handle is never issued.
var nextHandle atomic.Uint64

// newHandle returns the next unused Handle.
func newHandle() Handle { return Handle(nextHandle.Add(1)) }

// String renders the handle as "#<n>".
func (h Handle) String() string { return "#" + strconv.FormatUint(uint64(h), 10) }

// SPDX-License-Identifier: MIT
// Package plate: sentinel error set.
// Every message is prefixed with "plate: ..."; operations wrap them with the
// method name and the offending value, callers match with errors.Is.

package plate

import (
	"errors"

	"github.com/katalvlaran/plateplan/chem"
)

var (
	// ErrInvalidLocation indicates a location that cannot be resolved to an
	// in-range well, or a pair of corners/endpoints with the wrong geometry.
	ErrInvalidLocation = errors.New("plate: invalid location")

	// ErrDuplicateDestination indicates one dispense call targets the same well
	// (or the same row/column selection) more than once.
	ErrDuplicateDestination = errors.New("plate: duplicate destination")

	// ErrNegativeFill indicates a fill-to-volume target below a well's current volume.
	ErrNegativeFill = errors.New("plate: fill target below current volume")
)

// ALIASES of the chem sentinels, so plate callers can match the whole taxonomy
// without importing chem. They are the same values: errors.Is works both ways.

// ErrInvalidArgument aliases chem.ErrInvalidArgument.
var ErrInvalidArgument = chem.ErrInvalidArgument

// ErrDilutionConsistency aliases chem.ErrDilutionConsistency.
var ErrDilutionConsistency = chem.ErrDilutionConsistency

// SPDX-License-Identifier: MIT
// Package protocol: sentinel error set.
// Loader errors are prefixed with the block's source range and name; callers
// match with errors.Is.

package protocol

import "errors"

var (
	// ErrSyntax indicates the file is not valid HCL or does not match the
	// block schema (unknown blocks, missing or unexpected attributes).
	ErrSyntax = errors.New("protocol: syntax error")

	// ErrInvalidBlock indicates a well-formed block whose values do not make
	// sense together, e.g. a preset combined with explicit rows.
	ErrInvalidBlock = errors.New("protocol: invalid block")

	// ErrDuplicateLabel indicates two reagent/solvent/stock blocks share a label.
	ErrDuplicateLabel = errors.New("protocol: duplicate label")

	// ErrUnknownReference indicates a label that no earlier block declares.
	ErrUnknownReference = errors.New("protocol: unknown reference")

	// ErrWrongKind indicates a label that names the wrong kind of block,
	// e.g. a dispense source naming a reagent.
	ErrWrongKind = errors.New("protocol: reference of wrong kind")
)

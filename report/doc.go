// SPDX-License-Identifier: MIT

// Package report renders a finished plate as a plain-text lab sheet: stock
// recipes, the numbered dispensing steps, the per-well volume table, one
// concentration table per reagent, the supply check and any overflow
// warnings.
package report

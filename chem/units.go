// SPDX-License-Identifier: MIT

package chem

import (
	"fmt"
	"math"
	"strings"
)

// Unit conventions: concentrations in mol/L, stock and solvent volumes in mL,
// plate volumes in uL, plate amounts in umol, masses in g.
const (
	MilliLitersPerLiter      = 1000.0
	MicroLitersPerMilliLiter = 1000.0
	MilliGramsPerGram        = 1000.0
	MilliMolarPerMolar       = 1000.0
)

// FormatMass renders grams with an automatic unit: mg below 1 g, else g.
func FormatMass(grams float64) string {
	if grams < 1.0 {
		return fmt.Sprintf("%.1f mg", grams*MilliGramsPerGram)
	}

	return fmt.Sprintf("%.3f g", grams)
}

// FormatVolume renders milliliters with an automatic unit: uL below 1 mL, else mL.
func FormatVolume(milliliters float64) string {
	if milliliters < 1.0 {
		return fmt.Sprintf("%.2f uL", milliliters*MicroLitersPerMilliLiter)
	}

	return fmt.Sprintf("%.3f mL", milliliters)
}

// FormatConcentration renders mol/L as "0.50 M" above 0.1 M, else as "10.0 mM".
func FormatConcentration(molar float64) string {
	if molar > 0.1 {
		return fmt.Sprintf("%.2f M", molar)
	}

	return fmt.Sprintf("%.1f mM", molar*MilliMolarPerMolar)
}

// positive reports whether v is a finite number > 0 (NaN fails).
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// validName reports whether s has any non-space content.
func validName(s string) bool {
	return strings.TrimSpace(s) != ""
}

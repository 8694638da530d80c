// Package core holds the domain types and pure helpers shared by the
// statement, report and delivery layers.
//
// This file converts amounts in minor currency units to their display form.
// All arithmetic stays in integer minor units; conversion happens only when
// rendering.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders absolute minor units as major units with exactly two
// decimal digits and space-grouped thousands in the integer part:
//
//	FormatAmount(250000) -> "2 500.00"
//	FormatAmount(5000)   -> "50.00"
//	FormatAmount(99)     -> "0.99"
//
// The decimal part is never grouped. Negative input is treated as its
// absolute value.
func FormatAmount(minor int64) string {
	if minor < 0 {
		minor = -minor
	}
	fixed := decimal.New(minor, -2).StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return groupThousands(intPart) + "." + fracPart
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mfigueredo/viatico/internal/model"
)

// FormatMoney formats an amount with thousands separators and the currency
// code. e.g., 1234567.5, "COP" -> "1,234,567.50 COP"
func FormatMoney(amount float64, currency string) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	remainder := len(intPart) % 3
	if remainder > 0 {
		b.WriteString(intPart[:remainder])
	}
	for i := remainder; i < len(intPart); i += 3 {
		if b.Len() > btoi(neg) {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	if currency != "" {
		b.WriteByte(' ')
		b.WriteString(currency)
	}
	return b.String()
}

func btoi(v bool) int {
	if v {
		return 1
	}
	return 0
}

// FormatDate renders a calendar date in YYYY-MM-DD form with its weekday.
// e.g., "2025-01-02 Thu"
func FormatDate(d model.Date) string {
	return d.String() + " " + d.Weekday().String()[:3]
}

// FormatRange renders an inclusive date range.
func FormatRange(start, end model.Date) string {
	return fmt.Sprintf("%s to %s (%dd)", start, end, start.DaysUntil(end)+1)
}

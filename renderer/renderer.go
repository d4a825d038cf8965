// Package renderer turns feed snapshots and configuration views into
// markdown reports for the terminal.
package renderer

import "fmt"

// Masked replaces monetary amounts when the total asset value is hidden.
const Masked = "$LOCKED$"

// Percent formats a fraction as a signed percentage.
func Percent(fraction float64) string {
	return fmt.Sprintf("%+.2f%%", fraction*100)
}

// Amount formats a monetary amount, honoring the masked display mode.
func Amount(v float64, masked bool) string {
	if masked {
		return Masked
	}
	return fmt.Sprintf("$%.2f", v)
}

package masterclock

import "fmt"

const psPerMS = 1_000_000_000

// formatElapsedMS renders elapsedPS, in picoseconds, as a fixed-width
// "0000.000000000" millisecond string, matching the original's
// DecimalFormat("0000.000000000") on totalElapsedTimePs / PS_PER_MS.
func formatElapsedMS(elapsedPS int64) string {
	whole := elapsedPS / psPerMS
	frac := elapsedPS % psPerMS
	if frac < 0 {
		frac = -frac
	}
	return fmt.Sprintf("%04d.%09d", whole, frac)
}

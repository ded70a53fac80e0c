package transcript

import "fmt"

// FormatTimestamp converts a seconds offset to a display timestamp:
// "MM:SS" under one hour, "HH:MM:SS" from one hour on. Fields are
// zero-padded and fractional seconds are truncated, not rounded.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

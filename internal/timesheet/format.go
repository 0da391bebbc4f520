package timesheet

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration in seconds as a human-readable string.
// Minutes close to an hour boundary are banded to whole hours: up to four
// minutes past the hour round down, 56 minutes or more round up. This is a
// deliberate display choice kept for compatibility with existing reports.
func FormatDuration(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60
	switch {
	case hours == 0 && minutes == 0 && secs == 1:
		return "1 second"
	case hours == 0 && minutes == 0:
		return fmt.Sprintf("%d seconds", secs)
	case hours == 0 && minutes == 1:
		return "1 minute"
	case hours == 0:
		return fmt.Sprintf("%d minutes", minutes)
	case hours == 1 && minutes <= 4:
		return "1 hour"
	case minutes <= 4:
		return fmt.Sprintf("%d hours", hours)
	case minutes >= 56:
		return fmt.Sprintf("%d hours", hours+1)
	default:
		return fmt.Sprintf("%d hours and %d minutes", hours, minutes)
	}
}

// FormatDate renders a unix timestamp as a local date stamp for reports.
func FormatDate(ts int64) string {
	return time.Unix(ts, 0).Format("2006-01-02, 15:04")
}

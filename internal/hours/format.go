package hours

import (
	"fmt"
	"strings"
)

// FormatTime renders a BusinessTime as "9:05 AM".
func FormatTime(t BusinessTime) string {
	return fmt.Sprintf("%d:%02d %s", t.Hour, t.Minute, t.Period)
}

// DisplayText renders the weekly schedule as seven lines in canonical
// order, one per day.
func DisplayText(w WeeklySchedule) string {
	var b strings.Builder
	for i, d := range DayOrder {
		if i > 0 {
			b.WriteByte('\n')
		}
		day := w.Hours(d)
		if day.Closed {
			fmt.Fprintf(&b, "%s: Closed", d.Label())
		} else {
			fmt.Fprintf(&b, "%s: %s - %s", d.Label(), FormatTime(day.Open), FormatTime(day.Close))
		}
	}
	return b.String()
}

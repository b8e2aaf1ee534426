package hours

import "fmt"

// MinutesOf converts a 12-hour time to minutes since midnight.
// Hour 12 maps to 0 before the PM offset: 12:00 AM is 0, 12:00 PM is 720.
func MinutesOf(t BusinessTime) int {
	hour := t.Hour
	if hour == 12 {
		hour = 0
	}
	minutes := hour*60 + t.Minute
	if t.Period == PM {
		minutes += 720
	}
	return minutes
}

// IsValidDayRange reports whether a day's hours are usable: closed days
// always are, open days need open strictly before close. A day with
// identical open and close times is invalid, not "open for 0 minutes".
func IsValidDayRange(d DayHours) bool {
	if d.Closed {
		return true
	}
	return MinutesOf(d.Open) < MinutesOf(d.Close)
}

// Validate checks every day's range in canonical order and returns an error
// describing the first failing day, or nil when the whole week is valid.
// The message is meant to be shown to the owner as-is.
func Validate(w WeeklySchedule) error {
	for _, d := range DayOrder {
		if !IsValidDayRange(w.Hours(d)) {
			return fmt.Errorf("%s opening time must be earlier than closing time.", d.Label())
		}
	}
	return nil
}

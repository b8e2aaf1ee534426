package hours

import "time"

// Status texts returned by the availability engine.
const (
	StatusOpenNow     = "Open now"
	StatusClosed      = "Closed"
	StatusClosedToday = "Closed today"
	StatusOpen24      = "Open 24 hours"
	StatusVary        = "Hours vary"
	StatusUnavailable = "Hours not available"
)

// Status is the live open/closed answer for a venue.
type Status struct {
	IsOpen     bool   `json:"is_open"`
	StatusText string `json:"status_text"`
}

// Availability is the full payload for a detail view: the live status plus
// the text to render for the week.
type Availability struct {
	IsOpen      bool   `json:"is_open"`
	StatusText  string `json:"status_text"`
	DisplayText string `json:"display_text"`
}

// StatusFor computes the live status from a structured schedule and the
// current wall-clock time. The comparison is half-open: the opening minute
// counts as open, the closing minute does not. The validator guarantees
// close is after open within the same day, so no wrap-around handling here.
func StatusFor(w WeeklySchedule, now time.Time) Status {
	today := w.Hours(dayOf(now.Weekday()))
	if today.Closed {
		return Status{IsOpen: false, StatusText: StatusClosedToday}
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	openMinutes := MinutesOf(today.Open)
	closeMinutes := MinutesOf(today.Close)

	if openMinutes <= nowMinutes && nowMinutes < closeMinutes {
		return Status{IsOpen: true, StatusText: StatusOpenNow}
	}
	return Status{IsOpen: false, StatusText: StatusClosed}
}

// Evaluate classifies a raw stored hours value and computes the availability
// payload for it. Every input yields a defined answer; missing or
// unrecognizable values come back as "Hours not available".
func Evaluate(raw []byte, now time.Time) Availability {
	stored := Classify(raw)
	switch stored.Kind {
	case KindStructured:
		st := StatusFor(stored.Schedule, now)
		return Availability{
			IsOpen:      st.IsOpen,
			StatusText:  st.StatusText,
			DisplayText: DisplayText(stored.Schedule),
		}
	case KindLegacyText:
		st := StatusFromText(stored.Text, now)
		return Availability{
			IsOpen:      st.IsOpen,
			StatusText:  st.StatusText,
			DisplayText: stored.Text,
		}
	default:
		return Availability{
			IsOpen:      false,
			StatusText:  StatusUnavailable,
			DisplayText: StatusUnavailable,
		}
	}
}

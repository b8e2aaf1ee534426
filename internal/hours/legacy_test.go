package hours

import (
	"testing"
)

func TestStatusFromTextDayAbbreviation(t *testing.T) {
	text := "Tue: 11:00 AM - 9:00 PM"

	tests := []struct {
		name         string
		hour, minute int
		open         bool
		status       string
	}{
		{"evening inside range", 20, 30, true, StatusOpenNow},
		{"after closing", 21, 30, false, StatusClosed},
		{"closing minute exactly", 21, 0, false, StatusClosed},
		{"opening minute exactly", 11, 0, true, StatusOpenNow},
		{"before opening", 10, 59, false, StatusClosed},
	}

	for _, test := range tests {
		got := StatusFromText(text, localTime(Tuesday, test.hour, test.minute))
		if got.IsOpen != test.open || got.StatusText != test.status {
			t.Errorf("%s: got %+v, expected open=%v status=%q", test.name, got, test.open, test.status)
		}
	}
}

func TestStatusFromTextFullDayName(t *testing.T) {
	text := "Open Wednesday 8 AM to 6:30 PM, call otherwise"

	if got := StatusFromText(text, localTime(Wednesday, 9, 0)); !got.IsOpen {
		t.Errorf("expected open at 9:00, got %+v", got)
	}
	if got := StatusFromText(text, localTime(Wednesday, 18, 30)); got.IsOpen {
		t.Errorf("expected closed at 18:30, got %+v", got)
	}
}

func TestStatusFromTextMidnightSpan(t *testing.T) {
	// Close before open means the range wraps past midnight.
	text := "Fri 8:00 PM - 2:00 AM"

	tests := []struct {
		name         string
		hour, minute int
		open         bool
	}{
		{"before opening", 19, 0, false},
		{"late evening", 23, 30, true},
		{"after midnight before close", 1, 30, true},
		{"after close", 2, 0, false},
		{"midday", 12, 0, false},
	}

	for _, test := range tests {
		got := StatusFromText(text, localTime(Friday, test.hour, test.minute))
		if got.IsOpen != test.open {
			t.Errorf("%s: IsOpen = %v, expected %v", test.name, got.IsOpen, test.open)
		}
	}
}

func TestStatusFromTextTwelveHourEdges(t *testing.T) {
	// 12 AM is midnight, 12 PM is noon.
	text := "Sat 12:00 PM - 12:00 AM"

	if got := StatusFromText(text, localTime(Saturday, 11, 0)); got.IsOpen {
		t.Errorf("before noon should be closed, got %+v", got)
	}
	if got := StatusFromText(text, localTime(Saturday, 15, 0)); !got.IsOpen {
		t.Errorf("afternoon should be open, got %+v", got)
	}
}

func TestStatusFromTextOtherDayDoesNotMatch(t *testing.T) {
	// The text only mentions Tuesday; on Monday the keywords decide.
	got := StatusFromText("Tue: 11:00 AM - 9:00 PM", localTime(Monday, 12, 0))
	if got.StatusText != StatusVary || got.IsOpen {
		t.Errorf("expected hours vary, got %+v", got)
	}
}

func TestStatusFromTextKeywords(t *testing.T) {
	tests := []struct {
		text   string
		open   bool
		status string
	}{
		{"We are open 24 hours a day", true, StatusOpen24},
		{"OPEN 24/7", true, StatusOpen24},
		{"Temporarily closed for renovation", false, StatusClosed},
		{"Call us for opening times", false, StatusVary},
		{"Lorem ipsum", false, StatusVary},
	}

	for _, test := range tests {
		got := StatusFromText(test.text, localTime(Monday, 12, 0))
		if got.IsOpen != test.open || got.StatusText != test.status {
			t.Errorf("%q: got %+v, expected open=%v status=%q", test.text, got, test.open, test.status)
		}
	}
}

func TestStatusFromTextFirstMatchWins(t *testing.T) {
	text := "Mon 9:00 AM - 5:00 PM\nMon 6:00 PM - 11:00 PM"

	// 19:00 falls only in the second range, but only the first match counts.
	got := StatusFromText(text, localTime(Monday, 19, 0))
	if got.IsOpen {
		t.Errorf("only the first day match should be used, got %+v", got)
	}
}

package hours

import "testing"

func TestMinutesOf(t *testing.T) {
	tests := []struct {
		time     BusinessTime
		expected int
	}{
		{BusinessTime{Hour: 12, Minute: 0, Period: AM}, 0},
		{BusinessTime{Hour: 12, Minute: 0, Period: PM}, 720},
		{BusinessTime{Hour: 1, Minute: 30, Period: PM}, 810},
		{BusinessTime{Hour: 9, Minute: 0, Period: AM}, 540},
		{BusinessTime{Hour: 5, Minute: 0, Period: PM}, 1020},
		{BusinessTime{Hour: 11, Minute: 59, Period: PM}, 1439},
		{BusinessTime{Hour: 12, Minute: 1, Period: AM}, 1},
	}

	for _, test := range tests {
		if got := MinutesOf(test.time); got != test.expected {
			t.Errorf("MinutesOf(%+v) = %d, expected %d", test.time, got, test.expected)
		}
	}
}

func TestIsValidDayRange(t *testing.T) {
	tests := []struct {
		name     string
		day      DayHours
		expected bool
	}{
		{
			"open before close",
			DayHours{Open: BusinessTime{9, 0, AM}, Close: BusinessTime{5, 0, PM}},
			true,
		},
		{
			"open equals close",
			DayHours{Open: BusinessTime{9, 0, AM}, Close: BusinessTime{9, 0, AM}},
			false,
		},
		{
			"open after close",
			DayHours{Open: BusinessTime{6, 0, PM}, Close: BusinessTime{5, 0, PM}},
			false,
		},
		{
			"closed day with inverted times",
			DayHours{Closed: true, Open: BusinessTime{6, 0, PM}, Close: BusinessTime{5, 0, PM}},
			true,
		},
	}

	for _, test := range tests {
		if got := IsValidDayRange(test.day); got != test.expected {
			t.Errorf("%s: IsValidDayRange = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestValidateDefaultSchedule(t *testing.T) {
	if err := Validate(DefaultSchedule()); err != nil {
		t.Errorf("default schedule should validate, got %v", err)
	}
}

func TestValidateReportsFirstFailingDay(t *testing.T) {
	w := DefaultSchedule()
	w.Thursday.Open = BusinessTime{Hour: 6, Minute: 0, Period: PM}
	w.Thursday.Close = BusinessTime{Hour: 5, Minute: 0, Period: PM}

	err := Validate(w)
	if err == nil {
		t.Fatal("expected validation error")
	}
	expected := "Thursday opening time must be earlier than closing time."
	if err.Error() != expected {
		t.Errorf("got %q, expected %q", err.Error(), expected)
	}
}

func TestValidateFailFast(t *testing.T) {
	// Two bad days: only the earliest in canonical order is reported.
	w := DefaultSchedule()
	w.Tuesday.Open = BusinessTime{Hour: 6, Minute: 0, Period: PM}
	w.Tuesday.Close = BusinessTime{Hour: 5, Minute: 0, Period: PM}
	w.Friday.Open = BusinessTime{Hour: 6, Minute: 0, Period: PM}
	w.Friday.Close = BusinessTime{Hour: 5, Minute: 0, Period: PM}

	err := Validate(w)
	if err == nil {
		t.Fatal("expected validation error")
	}
	expected := "Tuesday opening time must be earlier than closing time."
	if err.Error() != expected {
		t.Errorf("got %q, expected %q", err.Error(), expected)
	}
}

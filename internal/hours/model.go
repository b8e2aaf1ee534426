package hours

import "time"

// Meridiem is the AM/PM half of a 12-hour wall-clock time
type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// BusinessTime is a 12-hour wall-clock time with no date component
type BusinessTime struct {
	Hour   int      `json:"hour"`
	Minute int      `json:"minute"`
	Period Meridiem `json:"period"`
}

// DayHours holds one day's opening hours. When Closed is true,
// Open and Close are still present but ignored by every consumer.
type DayHours struct {
	Closed bool         `json:"closed"`
	Open   BusinessTime `json:"open"`
	Close  BusinessTime `json:"close"`
}

// WeeklySchedule is the structured weekly schedule. Using one named field
// per day makes "all seven days present" a property of the type itself.
type WeeklySchedule struct {
	Monday    DayHours `json:"monday"`
	Tuesday   DayHours `json:"tuesday"`
	Wednesday DayHours `json:"wednesday"`
	Thursday  DayHours `json:"thursday"`
	Friday    DayHours `json:"friday"`
	Saturday  DayHours `json:"saturday"`
	Sunday    DayHours `json:"sunday"`
}

// Day identifies one of the seven weekdays, Monday first.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DayOrder is the canonical monday→sunday iteration order.
var DayOrder = [7]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Key returns the lowercase JSON/storage key for the day.
func (d Day) Key() string {
	switch d {
	case Monday:
		return "monday"
	case Tuesday:
		return "tuesday"
	case Wednesday:
		return "wednesday"
	case Thursday:
		return "thursday"
	case Friday:
		return "friday"
	case Saturday:
		return "saturday"
	case Sunday:
		return "sunday"
	}
	return ""
}

// Label returns the display label for the day.
func (d Day) Label() string {
	switch d {
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	case Saturday:
		return "Saturday"
	case Sunday:
		return "Sunday"
	}
	return ""
}

// Hours returns the schedule entry for a day.
func (w WeeklySchedule) Hours(d Day) DayHours {
	switch d {
	case Monday:
		return w.Monday
	case Tuesday:
		return w.Tuesday
	case Wednesday:
		return w.Wednesday
	case Thursday:
		return w.Thursday
	case Friday:
		return w.Friday
	case Saturday:
		return w.Saturday
	case Sunday:
		return w.Sunday
	}
	return DayHours{Closed: true}
}

// SetHours replaces the schedule entry for a day.
func (w *WeeklySchedule) SetHours(d Day, h DayHours) {
	switch d {
	case Monday:
		w.Monday = h
	case Tuesday:
		w.Tuesday = h
	case Wednesday:
		w.Wednesday = h
	case Thursday:
		w.Thursday = h
	case Friday:
		w.Friday = h
	case Saturday:
		w.Saturday = h
	case Sunday:
		w.Sunday = h
	}
}

// dayOf maps time.Weekday (Sunday=0) to the monday-first Day enumeration.
func dayOf(wd time.Weekday) Day {
	if wd == time.Sunday {
		return Sunday
	}
	return Day(int(wd) - 1)
}

// DefaultSchedule returns a fresh 9:00 AM – 5:00 PM schedule for every day.
// Each call builds a new value; callers never share a mutable instance.
func DefaultSchedule() WeeklySchedule {
	day := DayHours{
		Closed: false,
		Open:   BusinessTime{Hour: 9, Minute: 0, Period: AM},
		Close:  BusinessTime{Hour: 5, Minute: 0, Period: PM},
	}
	var w WeeklySchedule
	for _, d := range DayOrder {
		w.SetHours(d, day)
	}
	return w
}

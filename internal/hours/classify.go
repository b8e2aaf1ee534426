package hours

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// StoredKind tags the shape of an externally stored hours value.
type StoredKind int

const (
	// KindMissing means no usable value was stored (nil, empty, JSON null,
	// or a malformed object carrying neither a schedule nor text).
	KindMissing StoredKind = iota
	// KindStructured means the value decoded as a full weekly schedule.
	KindStructured
	// KindLegacyText means the value is a free-text description of hours,
	// either a bare string or an object with a "text" field.
	KindLegacyText
)

// StoredHours is the classified form of a raw stored value. Exactly one of
// Schedule or Text is meaningful, selected by Kind.
type StoredHours struct {
	Kind     StoredKind
	Schedule WeeklySchedule
	Text     string
}

// Intermediate decode targets. Pointer fields distinguish "absent" from
// zero values, and a type mismatch fails the whole decode.
type rawBusinessTime struct {
	Hour   *float64 `json:"hour"`
	Minute *float64 `json:"minute"`
	Period *string  `json:"period"`
}

type rawDayHours struct {
	Closed *bool            `json:"closed"`
	Open   *rawBusinessTime `json:"open"`
	Close  *rawBusinessTime `json:"close"`
}

type rawLegacyObject struct {
	Text *string `json:"text"`
}

// Classify inspects a raw stored hours value and reports which of the three
// external shapes it carries. It never fails: anything unrecognizable is
// KindMissing. This is the single place the opaque value is interpreted.
func Classify(raw []byte) StoredHours {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return StoredHours{Kind: KindMissing}
	}

	if schedule, ok := decodeStructured([]byte(trimmed)); ok {
		return StoredHours{Kind: KindStructured, Schedule: schedule}
	}

	// Bare JSON string: `"Mon-Fri 9 AM - 5 PM"`.
	var text string
	if err := json.Unmarshal([]byte(trimmed), &text); err == nil {
		if strings.TrimSpace(text) == "" {
			return StoredHours{Kind: KindMissing}
		}
		return StoredHours{Kind: KindLegacyText, Text: text}
	}

	// Legacy object: `{"text": "..."}`.
	if strings.HasPrefix(trimmed, "{") {
		var obj rawLegacyObject
		if err := json.Unmarshal([]byte(trimmed), &obj); err == nil && obj.Text != nil {
			if strings.TrimSpace(*obj.Text) == "" {
				return StoredHours{Kind: KindMissing}
			}
			return StoredHours{Kind: KindLegacyText, Text: *obj.Text}
		}
		return StoredHours{Kind: KindMissing}
	}

	// Rows written before the JSON era hold plain unquoted text.
	if !strings.HasPrefix(trimmed, "[") {
		return StoredHours{Kind: KindLegacyText, Text: string(raw)}
	}

	return StoredHours{Kind: KindMissing}
}

// IsStructured reports whether the raw value is a valid structured weekly
// schedule. Strict: all seven day keys, boolean closed, in-range integral
// hour/minute, period exactly "AM" or "PM". No coercion, no partial acceptance.
func IsStructured(raw []byte) bool {
	_, ok := decodeStructured(raw)
	return ok
}

// Normalize returns the decoded schedule when the stored value is valid and
// a fresh default schedule otherwise. Nothing past this function ever sees
// malformed data.
func Normalize(raw []byte) WeeklySchedule {
	if schedule, ok := decodeStructured(raw); ok {
		return schedule
	}
	return DefaultSchedule()
}

func decodeStructured(raw []byte) (WeeklySchedule, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return WeeklySchedule{}, false
	}

	var w WeeklySchedule
	for _, d := range DayOrder {
		dayRaw, present := fields[d.Key()]
		if !present {
			return WeeklySchedule{}, false
		}
		day, ok := decodeDay(dayRaw)
		if !ok {
			return WeeklySchedule{}, false
		}
		w.SetHours(d, day)
	}
	return w, true
}

func decodeDay(raw json.RawMessage) (DayHours, bool) {
	var rd rawDayHours
	if err := json.Unmarshal(raw, &rd); err != nil {
		return DayHours{}, false
	}
	if rd.Closed == nil || rd.Open == nil || rd.Close == nil {
		return DayHours{}, false
	}
	open, ok := decodeTime(rd.Open)
	if !ok {
		return DayHours{}, false
	}
	closeAt, ok := decodeTime(rd.Close)
	if !ok {
		return DayHours{}, false
	}
	return DayHours{Closed: *rd.Closed, Open: open, Close: closeAt}, true
}

func decodeTime(rt *rawBusinessTime) (BusinessTime, bool) {
	if rt.Hour == nil || rt.Minute == nil || rt.Period == nil {
		return BusinessTime{}, false
	}
	hour, minute := *rt.Hour, *rt.Minute
	if hour != math.Trunc(hour) || minute != math.Trunc(minute) {
		return BusinessTime{}, false
	}
	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return BusinessTime{}, false
	}
	period := Meridiem(*rt.Period)
	if period != AM && period != PM {
		return BusinessTime{}, false
	}
	return BusinessTime{Hour: int(hour), Minute: int(minute), Period: period}, true
}

// NormalizeHourInput clamps keystroke-level hour text to [1,12]. Non-numeric
// input yields 1, so partial edits never produce an out-of-range value.
func NormalizeHourInput(s string) int {
	return clampDigits(s, 1, 12, 1)
}

// NormalizeMinuteInput clamps keystroke-level minute text to [0,59],
// defaulting to 0.
func NormalizeMinuteInput(s string) int {
	return clampDigits(s, 0, 59, 0)
}

func clampDigits(s string, min, max, def int) int {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return def
	}
	v, err := strconv.Atoi(digits.String())
	if err != nil {
		// Digits only, so the parse can only fail on overflow.
		return max
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

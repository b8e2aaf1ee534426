package hours

import (
	"encoding/json"
	"strings"
	"testing"
)

func scheduleJSON(t *testing.T, w WeeklySchedule) []byte {
	t.Helper()
	b, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("marshal schedule: %v", err)
	}
	return b
}

func TestClassifyStructured(t *testing.T) {
	w := DefaultSchedule()
	w.Sunday.Closed = true

	stored := Classify(scheduleJSON(t, w))
	if stored.Kind != KindStructured {
		t.Fatalf("expected KindStructured, got %v", stored.Kind)
	}
	if stored.Schedule != w {
		t.Errorf("decoded schedule differs: %+v", stored.Schedule)
	}
}

func TestClassifyLegacyShapes(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"bare json string", `"Mon-Fri 9:00 AM - 5:00 PM"`, "Mon-Fri 9:00 AM - 5:00 PM"},
		{"object with text field", `{"text":"Open 24 hours"}`, "Open 24 hours"},
		{"plain unquoted text", `Tue: 11:00 AM - 9:00 PM`, "Tue: 11:00 AM - 9:00 PM"},
	}

	for _, test := range tests {
		stored := Classify([]byte(test.raw))
		if stored.Kind != KindLegacyText {
			t.Errorf("%s: expected KindLegacyText, got %v", test.name, stored.Kind)
			continue
		}
		if stored.Text != test.expected {
			t.Errorf("%s: text = %q, expected %q", test.name, stored.Text, test.expected)
		}
	}
}

func TestClassifyMissing(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "   \n"},
		{"json null", "null"},
		{"empty json string", `""`},
		{"object without text or schedule", `{"foo": 1}`},
		{"object with blank text", `{"text":"  "}`},
	}

	for _, test := range tests {
		if stored := Classify([]byte(test.raw)); stored.Kind != KindMissing {
			t.Errorf("%s: expected KindMissing, got %v", test.name, stored.Kind)
		}
	}
}

func TestNormalizeValidScheduleUnchanged(t *testing.T) {
	w := DefaultSchedule()
	w.Wednesday.Open = BusinessTime{Hour: 7, Minute: 30, Period: AM}

	got := Normalize(scheduleJSON(t, w))
	if got != w {
		t.Errorf("Normalize changed a valid schedule: %+v", got)
	}
}

func TestNormalizeMalformedFallsBackToDefault(t *testing.T) {
	valid := string(scheduleJSON(t, DefaultSchedule()))

	tests := []struct {
		name string
		raw  string
	}{
		{"free text", `"Mon-Fri 9-5"`},
		{"empty", ""},
		{"missing day key", strings.Replace(valid, `"sunday"`, `"someday"`, 1)},
		{"hour out of range", strings.Replace(valid, `"hour":9`, `"hour":13`, 1)},
		{"fractional hour", strings.Replace(valid, `"hour":9`, `"hour":9.5`, 1)},
		{"minute out of range", strings.Replace(valid, `"minute":0`, `"minute":60`, 1)},
		{"bad period", strings.Replace(valid, `"AM"`, `"XM"`, 1)},
		{"closed not boolean", strings.Replace(valid, `"closed":false`, `"closed":"no"`, 1)},
		{"day not an object", strings.Replace(valid, `"monday":{`, `"monday":5,"x":{`, 1)},
	}

	def := DefaultSchedule()
	for _, test := range tests {
		if got := Normalize([]byte(test.raw)); got != def {
			t.Errorf("%s: expected default schedule, got %+v", test.name, got)
		}
		if IsStructured([]byte(test.raw)) {
			t.Errorf("%s: IsStructured should be false", test.name)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := [][]byte{
		scheduleJSON(t, DefaultSchedule()),
		[]byte(`"Tue 9 AM - 5 PM"`),
		[]byte(``),
		[]byte(`{"garbage": true}`),
	}

	for _, raw := range inputs {
		once := Normalize(raw)
		again := Normalize(scheduleJSON(t, once))
		if once != again {
			t.Errorf("Normalize not idempotent for %q", raw)
		}
	}
}

func TestNormalizeHourInput(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"13", 12},
		{"0", 1},
		{"9", 9},
		{"12", 12},
		{"1a2", 12},
		{"abc", 1},
		{"", 1},
		{"999999999999999999999", 12},
	}

	for _, test := range tests {
		if got := NormalizeHourInput(test.input); got != test.expected {
			t.Errorf("NormalizeHourInput(%q) = %d, expected %d", test.input, got, test.expected)
		}
	}
}

func TestNormalizeMinuteInput(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"75", 59},
		{"abc", 0},
		{"", 0},
		{"30", 30},
		{"0", 0},
		{"59", 59},
		{"5x", 5},
	}

	for _, test := range tests {
		if got := NormalizeMinuteInput(test.input); got != test.expected {
			t.Errorf("NormalizeMinuteInput(%q) = %d, expected %d", test.input, got, test.expected)
		}
	}
}

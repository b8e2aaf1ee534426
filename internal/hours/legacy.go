package hours

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timePattern matches one `H[:MM] AM/PM` token.
const timePattern = `(\d{1,2})(?::(\d{2}))?\s*(AM|PM)`

// StatusFromText computes live status from a legacy free-text hours
// description. Best effort: it looks for today's day name (full, then the
// 3-letter abbreviation) followed by an open and a close time on the same
// line, and only the first match is used. Unlike the structured path, a
// close time earlier than the open time is treated as spanning midnight.
func StatusFromText(text string, now time.Time) Status {
	fullName := now.Weekday().String()
	nowMinutes := now.Hour()*60 + now.Minute()

	for _, name := range []string{fullName, fullName[:3]} {
		openMinutes, closeMinutes, ok := findDayRange(text, name)
		if !ok {
			continue
		}
		var open bool
		if closeMinutes < openMinutes {
			open = nowMinutes >= openMinutes || nowMinutes < closeMinutes
		} else {
			open = openMinutes <= nowMinutes && nowMinutes < closeMinutes
		}
		if open {
			return Status{IsOpen: true, StatusText: StatusOpenNow}
		}
		return Status{IsOpen: false, StatusText: StatusClosed}
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "24 hours") || strings.Contains(lower, "open 24") {
		return Status{IsOpen: true, StatusText: StatusOpen24}
	}
	if strings.Contains(lower, "closed") {
		return Status{IsOpen: false, StatusText: StatusClosed}
	}

	// Affirmative "unknown": never guess open from unparseable text.
	return Status{IsOpen: false, StatusText: StatusVary}
}

// findDayRange extracts the first open/close time pair following the given
// day token within one line of the text.
func findDayRange(text, dayName string) (openMinutes, closeMinutes int, ok bool) {
	pattern := fmt.Sprintf(`(?i)\b%s[^\n]*?%s[^\n]*?%s`,
		regexp.QuoteMeta(dayName), timePattern, timePattern)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, 0, false
	}
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	return minutesFrom12h(m[1], m[2], m[3]), minutesFrom12h(m[4], m[5], m[6]), true
}

// minutesFrom12h converts matched time components to minutes since
// midnight: 12 AM is 0:00, 12 PM is 12:00, any other PM hour gains 12.
func minutesFrom12h(hourStr, minuteStr, period string) int {
	hour, _ := strconv.Atoi(hourStr)
	minute := 0
	if minuteStr != "" {
		minute, _ = strconv.Atoi(minuteStr)
	}
	switch strings.ToUpper(period) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	return hour*60 + minute
}

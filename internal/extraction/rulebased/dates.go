package rulebased

import (
	"strconv"
	"strings"
	"time"

	"smart-task-parser/pkg/datemath"
)

// Default clock times when the text names a day but no time.
const (
	tomorrowHour, tomorrowMinute = 9, 0
	todayHour, todayMinute       = 17, 0
	endOfDayHour, endOfDayMinute = 23, 59
)

// resolveDueDate resolves the due date of text relative to now, or nil.
func (e *Extractor) resolveDueDate(text string, now time.Time) *time.Time {
	switch {
	case tomorrowPattern.MatchString(text):
		return e.withClock(text, now.AddDate(0, 0, 1), tomorrowHour, tomorrowMinute)
	case todayPattern.MatchString(text):
		return e.withClock(text, now, todayHour, todayMinute)
	}

	if day, ok := e.explicitDate(text, now); ok {
		return e.withClock(text, day, endOfDayHour, endOfDayMinute)
	}
	if day, ok := e.weekdayDate(text, now); ok {
		return e.withClock(text, day, endOfDayHour, endOfDayMinute)
	}
	return nil
}

// withClock sets the clock time found in text on day, or the given default.
func (e *Extractor) withClock(text string, day time.Time, defHour, defMinute int) *time.Time {
	hour, minute, ok := parseClock(text)
	if !ok {
		hour, minute = defHour, defMinute
	}
	due := e.dates.At(day, hour, minute)
	return &due
}

// parseClock reads the first H[:MM] am|pm expression of text as 24-hour time.
func parseClock(text string) (int, int, bool) {
	m := timePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	if hour > 12 || minute > 59 {
		return 0, 0, false
	}

	isPM := strings.EqualFold(m[3], "pm")
	switch {
	case isPM && hour != 12:
		hour += 12
	case !isPM && hour == 12:
		hour = 0
	}
	return hour, minute, true
}

// explicitDate scans datePatterns in order. A match that names an impossible
// date is skipped.
func (e *Extractor) explicitDate(text string, now time.Time) (time.Time, bool) {
	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		year, month, day := now.Year(), time.Month(0), 0
		switch p.form {
		case formMonthDay:
			month = datemath.Months[strings.ToLower(m[1])]
			day, _ = strconv.Atoi(m[2])
		case formDayMonth:
			day, _ = strconv.Atoi(m[1])
			month = datemath.Months[strings.ToLower(m[2])]
		case formNumeric:
			day, _ = strconv.Atoi(m[1])
			mo, _ := strconv.Atoi(m[2])
			month = time.Month(mo)
			if m[3] != "" {
				year, _ = strconv.Atoi(m[3])
				if year < 100 {
					year += 2000
				}
			}
		}

		date, err := e.dates.Date(year, month, day)
		if err != nil {
			continue
		}
		return date, true
	}
	return time.Time{}, false
}

// weekdayDate resolves "[next|this|on] <weekday>" to its upcoming date.
func (e *Extractor) weekdayDate(text string, now time.Time) (time.Time, bool) {
	m := weekdayPattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	target := datemath.Weekdays[strings.ToLower(m[2])]
	if strings.EqualFold(m[1], "next") {
		return e.dates.NextWeekday(now, target), true
	}
	return e.dates.UpcomingWeekday(now, target), true
}

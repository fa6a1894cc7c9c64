package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser resolves relative dates against a clock in a fixed location.
type Parser struct {
	location *time.Location
	clock    Clock
}

// NewParser creates a new date parser for the given IANA timezone string,
// e.g. "Asia/Ho_Chi_Minh". An empty timezone means the process local zone.
func NewParser(timezone string) (*Parser, error) {
	return NewParserWithClock(timezone, SystemClock)
}

// NewParserWithClock is NewParser with an injected clock.
func NewParserWithClock(timezone string, clock Clock) (*Parser, error) {
	loc := time.Local
	if timezone != "" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
		}
	}
	if clock == nil {
		clock = SystemClock
	}
	return &Parser{location: loc, clock: clock}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Now returns the clock's current time in the parser's timezone.
func (p *Parser) Now() time.Time {
	return p.clock.Now().In(p.location)
}

// Parse converts a relative day expression to the start of that day.
// Supported: today, tomorrow, yesterday, <weekday>, this <weekday>,
// next <weekday>. The baseTime is used as the reference point.
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.Join(strings.Fields(strings.ToLower(relative)), " ")

	switch relative {
	case "today":
		return p.StartOfDay(baseTime), nil
	case "tomorrow":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "next ") {
		return p.parseWeekday(strings.TrimPrefix(relative, "next "), baseTime, true)
	}
	relative = strings.TrimPrefix(relative, "this ")
	relative = strings.TrimPrefix(relative, "on ")
	return p.parseWeekday(relative, baseTime, false)
}

func (p *Parser) parseWeekday(dayName string, baseTime time.Time, next bool) (time.Time, error) {
	target, ok := Weekdays[dayName]
	if !ok {
		return baseTime, fmt.Errorf("unknown weekday: %q", dayName)
	}
	if next {
		return p.NextWeekday(baseTime, target), nil
	}
	return p.UpcomingWeekday(baseTime, target), nil
}

// UpcomingWeekday returns the start of the first day on or after baseTime
// that falls on target.
func (p *Parser) UpcomingWeekday(baseTime time.Time, target time.Weekday) time.Time {
	base := baseTime.In(p.location)
	daysUntil := (int(target) - int(base.Weekday()) + 7) % 7
	return p.StartOfDay(base.AddDate(0, 0, daysUntil))
}

// NextWeekday returns the start of the first day strictly after baseTime
// that falls on target.
func (p *Parser) NextWeekday(baseTime time.Time, target time.Weekday) time.Time {
	base := baseTime.In(p.location)
	daysUntil := int(target) - int(base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return p.StartOfDay(base.AddDate(0, 0, daysUntil))
}

// DayOfMonthOnOrAfter returns the start of the given day of month in the
// current month, or in the following month when that day has already passed.
func (p *Parser) DayOfMonthOnOrAfter(baseTime time.Time, day int) time.Time {
	base := baseTime.In(p.location)
	t := time.Date(base.Year(), base.Month(), day, 0, 0, 0, 0, p.location)
	if base.Day() > day {
		t = time.Date(base.Year(), base.Month()+1, day, 0, 0, 0, 0, p.location)
	}
	return t
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// At returns the given wall-clock time on the day of t.
func (p *Parser) At(t time.Time, hour, minute int) time.Time {
	day := p.StartOfDay(t)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
}

// Date builds a calendar date in the parser's timezone, rejecting values
// that time.Date would silently normalize (e.g. 31 February).
func (p *Parser) Date(year int, month time.Month, day int) (time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, fmt.Errorf("invalid month: %d", month)
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, p.location)
	if day < 1 || t.Day() != day || t.Month() != month {
		return time.Time{}, fmt.Errorf("invalid day %d for %s %d", day, month, year)
	}
	return t, nil
}

// EndOfDay returns 23:59 at the end of the given day.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	return p.At(t, 23, 59)
}

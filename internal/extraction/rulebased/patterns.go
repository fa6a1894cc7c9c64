package rulebased

import (
	"regexp"
	"strings"
)

const (
	monthNames   = `January|February|March|April|May|June|July|August|September|October|November|December`
	weekdayNames = `Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday`
	ordinal      = `(?:st|nd|rd|th)?`
	capitalName  = `[A-Z][a-z]+`
)

// minTaskNameLen is the shortest extracted task name kept before falling
// back to the priority-stripped input.
const minTaskNameLen = 3

var priorityPattern = regexp.MustCompile(`(?i)\bp([1-4])\b`)

// assigneePattern captures a candidate name in group 1.
type assigneePattern struct {
	name string
	re   *regexp.Regexp
}

// assigneePatterns are tried in order; the first accepted candidate wins.
// Names are case-sensitive, connector words are not.
var assigneePatterns = []assigneePattern{
	{
		name: "connector-before",
		re:   regexp.MustCompile(`\b(?i:by|for|to|assign(?:ed)?\s+to)\s+(` + capitalName + `(?:\s+` + capitalName + `)?)`),
	},
	{
		name: "connector-after",
		re:   regexp.MustCompile(`\b(` + capitalName + `(?:\s+` + capitalName + `)?)\s+(?i:by|on|at)\b`),
	},
	{
		name: "relative-day-after",
		re:   regexp.MustCompile(`\b(` + capitalName + `)\s+(?i:tomorrow|today|by)\b`),
	},
}

// capitalizedPattern is the last-resort assignee search.
var capitalizedPattern = regexp.MustCompile(`\b(` + capitalName + `(?:\s+` + capitalName + `)?)\b`)

var (
	monthWords        = strings.Split(monthNames, "|")
	weekdayWords      = strings.Split(weekdayNames, "|")
	relativeDayWords  = []string{"Today", "Tomorrow", "Tonight"}
	taskVerbWords     = []string{"Call", "Send", "Review", "Finish", "Complete", "Update", "Create"}
	excludedNameWords = buildWordSet(monthWords, weekdayWords, relativeDayWords, taskVerbWords)
)

func buildWordSet(groups ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, g := range groups {
		for _, w := range g {
			set[w] = struct{}{}
		}
	}
	return set
}

var (
	tomorrowPattern = regexp.MustCompile(`(?i)\btomorrow\b`)
	todayPattern    = regexp.MustCompile(`(?i)\btoday\b`)
	timePattern     = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	weekdayPattern  = regexp.MustCompile(`(?i)\b(?:(next|this|on)\s+)?(` + weekdayNames + `)\b`)
)

// dateForm identifies how the groups of a date pattern are laid out.
type dateForm int

const (
	formMonthDay dateForm = iota // June 20th
	formDayMonth                 // 20th June
	formNumeric                  // 20/06[/2026], 20-06[-26]
)

type datePattern struct {
	name string
	form dateForm
	re   *regexp.Regexp
}

// datePatterns are tried in order; only the first pattern that matches is
// honored. Digit-led forms match inside words ("v2-3", "at10am").
var datePatterns = []datePattern{
	{
		name: "month-day",
		form: formMonthDay,
		re:   regexp.MustCompile(`(?i)\b(` + monthNames + `)\s+(\d{1,2})` + ordinal + `\b`),
	},
	{
		name: "day-month",
		form: formDayMonth,
		re:   regexp.MustCompile(`(?i)(\d{1,2})` + ordinal + `\s+(` + monthNames + `)\b`),
	},
	{
		name: "numeric-slash",
		form: formNumeric,
		re:   regexp.MustCompile(`(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?\b`),
	},
	{
		name: "numeric-dash",
		form: formNumeric,
		re:   regexp.MustCompile(`(\d{1,2})-(\d{1,2})(?:-(\d{2,4}))?\b`),
	},
}

// taskNameStrips remove residual markers from the working text, in order.
var taskNameStrips = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:by|for|to|tomorrow|today)\b`),
	datePatterns[0].re,
	datePatterns[1].re,
	datePatterns[2].re,
	datePatterns[3].re,
	weekdayPattern,
	timePattern,
}

var (
	whitespacePattern      = regexp.MustCompile(`\s+`)
	danglingTrailerPattern = regexp.MustCompile(`(?i)(?:[\s,;:\-]+(?:at|on))+$|[\s,;:\-]+$`)
)

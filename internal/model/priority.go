package model

import "strings"

// Priority is one of four ordinal urgency levels, P1 being the most urgent.
type Priority string

const (
	PriorityCritical Priority = "P1"
	PriorityHigh     Priority = "P2"
	PriorityMedium   Priority = "P3"
	PriorityLow      Priority = "P4"
)

// DefaultPriority is used whenever no priority is stated.
const DefaultPriority = PriorityMedium

// Priorities lists every level from most to least urgent.
var Priorities = []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow}

// IsValid reports whether p is one of the four defined levels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ParsePriority matches s against the four tags, ignoring case and
// surrounding space.
func ParsePriority(s string) (Priority, bool) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", false
	}
	return p, true
}

// PriorityOrDefault returns the parsed priority or DefaultPriority.
func PriorityOrDefault(s string) Priority {
	if p, ok := ParsePriority(s); ok {
		return p
	}
	return DefaultPriority
}

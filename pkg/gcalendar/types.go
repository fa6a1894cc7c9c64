package gcalendar

import (
	"errors"
	"time"
)

// DefaultCalendarID is used when a request names no calendar.
const DefaultCalendarID = "primary"

// DefaultTokenPath is where scripts/gcal-auth stores the OAuth token.
const DefaultTokenPath = "token.json"

var (
	ErrMissingSummary = errors.New("gcalendar: event summary is required")
	ErrInvalidRange   = errors.New("gcalendar: event must end after it starts")
)

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin". Optional: times carry their offset.
}

func (r CreateEventRequest) validate() error {
	if r.Summary == "" {
		return ErrMissingSummary
	}
	if !r.EndTime.After(r.StartTime) {
		return ErrInvalidRange
	}
	return nil
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

package gcalendar

import "time"

// CreateEventRequest is the input for creating a calendar event for one
// scheduled task.
type CreateEventRequest struct {
	CalendarID  string // defaults to "primary"
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "America/Bogota"
}

// Event is a simplified representation of a created calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}

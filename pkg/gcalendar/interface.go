package gcalendar

import "context"

// ICalendar is the calendar surface the schedule exporter depends on.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
}

var _ ICalendar = &Client{}

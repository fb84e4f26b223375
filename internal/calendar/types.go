package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// EventSummary represents a simplified calendar event for the day plan
type EventSummary struct {
	ID       string
	Summary  string
	Location string
	Start    time.Time
	End      time.Time
	AllDay   bool
	Status   string
}

// toEventSummary converts a Google Calendar event to an EventSummary
func toEventSummary(event *calendar.Event) EventSummary {
	summary := EventSummary{
		ID:       event.Id,
		Summary:  event.Summary,
		Location: event.Location,
		Status:   event.Status,
	}

	// Parse start time; a bare date marks an all-day event
	if event.Start != nil {
		if event.Start.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, event.Start.DateTime); err == nil {
				summary.Start = t
			}
		} else if event.Start.Date != "" {
			if t, err := time.Parse("2006-01-02", event.Start.Date); err == nil {
				summary.Start = t
				summary.AllDay = true
			}
		}
	}

	// Parse end time
	if event.End != nil {
		if event.End.DateTime != "" {
			if t, err := time.Parse(time.RFC3339, event.End.DateTime); err == nil {
				summary.End = t
			}
		} else if event.End.Date != "" {
			if t, err := time.Parse("2006-01-02", event.End.Date); err == nil {
				summary.End = t
			}
		}
	}

	return summary
}

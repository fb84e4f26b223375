package calendar

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// DefaultCalendarID is used when GCAL_ID is not set.
const DefaultCalendarID = "primary"

// DefaultTimezone is used when LOCAL_TZ is not set.
const DefaultTimezone = "Europe/Helsinki"

// CalendarIDFromEnv returns the GCAL_ID environment variable if set,
// else DefaultCalendarID.
func CalendarIDFromEnv() string {
	if id := os.Getenv("GCAL_ID"); id != "" {
		return id
	}
	return DefaultCalendarID
}

// TimezoneFromEnv returns the LOCAL_TZ environment variable if set,
// else DefaultTimezone.
func TimezoneFromEnv() string {
	if tz := os.Getenv("LOCAL_TZ"); tz != "" {
		return tz
	}
	return DefaultTimezone
}

// PlanDay summarizes today's events on the configured calendar into a
// single line. The timezone argument overrides LOCAL_TZ when non-empty.
func (c *Client) PlanDay(ctx context.Context, timezone string) (string, error) {
	if timezone == "" {
		timezone = TimezoneFromEnv()
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("unknown timezone %q: %w", timezone, err)
	}

	start, end := dayWindow(time.Now(), loc)
	events, err := c.ListEvents(ctx, CalendarIDFromEnv(), start, end)
	if err != nil {
		return "", err
	}

	return summarizeEvents(events, loc), nil
}

// dayWindow returns the UTC bounds of the calendar day containing now
// in the given location.
func dayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

// summarizeEvents renders the day plan: an event count, the first start
// time, and up to ten one-line entries joined by pipes.
func summarizeEvents(events []EventSummary, loc *time.Location) string {
	if len(events) == 0 {
		return "No events for today. 🗓️"
	}

	shown := events
	if len(shown) > 10 {
		shown = shown[:10]
	}

	lines := make([]string, 0, len(shown))
	for _, ev := range shown {
		lines = append(lines, formatEvent(ev, loc))
	}

	top := fmt.Sprintf("%d event(s) today", len(events))
	if !events[0].Start.IsZero() {
		top += fmt.Sprintf("; first starts at %s", events[0].Start.In(loc).Format("15:04"))
	}
	return top + ". " + strings.Join(lines, " | ")
}

// formatEvent renders one event line, e.g. "09:00–09:30 — Standup @ HQ"
// or "All day — Offsite (2026-08-26)".
func formatEvent(ev EventSummary, loc *time.Location) string {
	title := ev.Summary
	if title == "" {
		title = "(no title)"
	}

	if ev.AllDay {
		return fmt.Sprintf("All day — %s (%s)", title, ev.Start.In(loc).Format("2006-01-02"))
	}
	if ev.Start.IsZero() || ev.End.IsZero() {
		return title
	}

	span := fmt.Sprintf("%s–%s", ev.Start.In(loc).Format("15:04"), ev.End.In(loc).Format("15:04"))
	suffix := ""
	if ev.Location != "" {
		suffix = " @ " + ev.Location
	}
	return fmt.Sprintf("%s — %s%s", span, title, suffix)
}

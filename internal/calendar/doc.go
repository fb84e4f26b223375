// Package calendar provides read-only Google Calendar access for the
// daily briefing.
//
// The client lists today's events on a configured calendar and condenses
// them into a one-line plan: event count, first start time, and a short
// entry per event in the local timezone (LOCAL_TZ, default
// Europe/Helsinki). The calendar defaults to "primary" and can be
// overridden via GCAL_ID.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := calendar.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plan, err := client.PlanDay(ctx, "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(plan)
package calendar

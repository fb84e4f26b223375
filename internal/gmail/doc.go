// Package gmail provides read-only Gmail access for the daily briefing.
//
// The client lists unread inbox messages for an account and condenses
// their metadata (sender, subject, arrival time) into a one-line digest.
// The search window defaults to the last two days; GMAIL_QUERY overrides
// it and the user's own wording can narrow or widen it.
//
// Authentication:
// This package uses the unified Google OAuth token from the google package.
// Tokens are loaded per account from the file system (~/.cache/daybrief/).
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := gmail.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := client.SummarizeUnread(ctx, "summarize my email today")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(summary)
package gmail

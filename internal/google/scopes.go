package google

// DefaultOAuthScopes are the Google OAuth scopes the assistant requests.
// Everything the assistant does with Google data is read-only: it
// summarizes unread mail and plans the day from the calendar, it never
// mutates either.
var DefaultOAuthScopes = []string{
	// OpenID Connect scopes (required for user info)
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",

	// Gmail scope
	"https://www.googleapis.com/auth/gmail.readonly",

	// Google Calendar scope
	"https://www.googleapis.com/auth/calendar.readonly",
}

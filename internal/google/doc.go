// Package google provides OAuth2 authentication and token management for Google APIs.
//
// Tokens are stored per account in the user cache directory, so one
// daybrief process can serve several Google identities. All requested
// scopes are read-only: the assistant summarizes mail and plans the day,
// it never mutates Google data.
//
// The TokenProvider interface allows different token sources to be plugged in,
// keeping the Gmail and Calendar clients independent of where tokens come from.
package google

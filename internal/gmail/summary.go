package gmail

import (
	"context"
	"fmt"
	"net/mail"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	gmail "google.golang.org/api/gmail/v1"
)

// DefaultQuery selects recent unread inbox mail when no override is set.
const DefaultQuery = "is:unread in:inbox newer_than:2d"

// DefaultMaxResults bounds how many messages one summary inspects.
const DefaultMaxResults = 25

// QueryFromEnv returns the GMAIL_QUERY environment variable if set,
// else DefaultQuery.
func QueryFromEnv() string {
	if q := os.Getenv("GMAIL_QUERY"); q != "" {
		return q
	}
	return DefaultQuery
}

// MaxResultsFromEnv returns the GMAIL_MAX_RESULTS environment variable
// if set to a positive number, else DefaultMaxResults.
func MaxResultsFromEnv() int64 {
	if v := os.Getenv("GMAIL_MAX_RESULTS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return DefaultMaxResults
}

// queryForPrompt picks the search window. Mentioning a day or a week in
// the prompt narrows or widens the window; anything else keeps the
// configured default.
func queryForPrompt(prompt, defaultQuery string) string {
	lower := strings.ToLower(prompt)
	if strings.Contains(lower, "24h") || strings.Contains(lower, "day") {
		return "is:unread in:inbox newer_than:1d"
	}
	if strings.Contains(lower, "week") || strings.Contains(lower, "7 days") {
		return "is:unread in:inbox newer_than:7d"
	}
	return defaultQuery
}

// SummarizeUnread produces a one-line digest of unread inbox mail: the
// count, the three most frequent senders, the most recent arrival time,
// and up to three subjects.
func (c *Client) SummarizeUnread(ctx context.Context, prompt string) (string, error) {
	query := queryForPrompt(prompt, QueryFromEnv())

	listResp, err := c.svc.Messages.List("me").Q(query).MaxResults(MaxResultsFromEnv()).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to list unread messages: %w", err)
	}
	if len(listResp.Messages) == 0 {
		return "No unread emails 🎉", nil
	}

	meta := make([]*gmail.Message, 0, len(listResp.Messages))
	for _, m := range listResp.Messages {
		msg, err := c.svc.Messages.Get("me", m.Id).
			Format("metadata").
			MetadataHeaders("From", "Subject", "Date").
			Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("failed to fetch message %s: %w", m.Id, err)
		}
		meta = append(meta, msg)
	}

	return summarizeMessages(meta), nil
}

// summarizeMessages renders the digest line from message metadata.
func summarizeMessages(messages []*gmail.Message) string {
	if len(messages) == 0 {
		return "No unread emails 🎉"
	}

	var (
		senders  []string
		subjects []string
		times    []time.Time
	)
	for _, m := range messages {
		var headers []*gmail.MessagePartHeader
		if m.Payload != nil {
			headers = m.Payload.Headers
		}
		senders = append(senders, cleanSender(headerValue(headers, "From")))
		if subj := strings.TrimSpace(headerValue(headers, "Subject")); subj != "" {
			subjects = append(subjects, subj)
		}
		if d, err := mail.ParseDate(headerValue(headers, "Date")); err == nil {
			times = append(times, d.UTC())
		}
	}

	latest := "unknown time"
	if len(times) > 0 {
		max := times[0]
		for _, t := range times[1:] {
			if t.After(max) {
				max = t
			}
		}
		latest = max.Format("2006-01-02T15:04") + "Z"
	}

	preview := "no subjects"
	if len(subjects) > 0 {
		if len(subjects) > 3 {
			subjects = subjects[:3]
		}
		preview = strings.Join(subjects, "; ")
	}

	return fmt.Sprintf("%d unread email(s). Top senders: %s. Latest around %s. Subjects: %s",
		len(messages), topSenders(senders, 3), latest, preview)
}

// topSenders returns the n most frequent senders as "name×count" joined
// by commas. Ties keep first-seen order so the output is deterministic.
func topSenders(senders []string, n int) string {
	counts := make(map[string]int)
	var order []string
	for _, s := range senders {
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}

	parts := make([]string, 0, len(order))
	for _, s := range order {
		parts = append(parts, fmt.Sprintf("%s×%d", s, counts[s]))
	}
	return strings.Join(parts, ", ")
}

// headerValue returns the first header with the given name, or "".
func headerValue(headers []*gmail.MessagePartHeader, name string) string {
	for _, h := range headers {
		if h.Name == name {
			return h.Value
		}
	}
	return ""
}

// cleanSender reduces a From header to the display name when one is
// present ("Jane Doe <jane@example.com>" becomes "Jane Doe").
func cleanSender(from string) string {
	if from == "" {
		return "Unknown"
	}
	if strings.Contains(from, "<") && strings.Contains(from, ">") {
		name := strings.TrimSpace(from[:strings.Index(from, "<")])
		return strings.Trim(name, `"`)
	}
	return from
}

package tasks

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	prioShort = regexp.MustCompile(`(?i)\bp\s*([1-3])\b`)
	prioLong  = regexp.MustCompile(`(?i)priority\s*([1-3])`)

	dueDate = regexp.MustCompile(`\b(20\d{2}-\d{2}-\d{2})\b`)

	// Leading trigger verb plus trailing punctuation, stripped before
	// title extraction. "add: buy milk" and "todo buy milk" both work.
	addPrefix = regexp.MustCompile(`(?i)^\s*(add|todo|task|remember|note|create|append)[:\s,-]*`)

	completeRef = regexp.MustCompile(`(?i)\b(?:done|complete|finish|close)\s+(\d+)\b`)
	markDoneRef = regexp.MustCompile(`(?i)\bmark\s+(\d+)\s+done\b`)
	removeRef   = regexp.MustCompile(`(?i)\b(?:remove|delete)\s+(\d+)\b`)
)

// ParsePriority extracts a priority from free text. The explicit forms
// "p2" and "priority 2" win over the keyword fallback (high, medium,
// med, low); 0 means no priority was found.
func ParsePriority(text string) int {
	if m := prioShort.FindStringSubmatch(text); m != nil {
		return int(m[1][0] - '0')
	}
	if m := prioLong.FindStringSubmatch(text); m != nil {
		return int(m[1][0] - '0')
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "high"):
		return 1
	case strings.Contains(lower, "medium"), strings.Contains(lower, "med"):
		return 2
	case strings.Contains(lower, "low"):
		return 3
	}
	return 0
}

// ParseDue extracts a due marker from free text: the literal "tomorrow"
// or "today", or an embedded YYYY-MM-DD date. The marker is a display
// hint, never resolved to an actual date. Empty means no due marker.
func ParseDue(text string) string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "tomorrow") {
		return "tomorrow"
	}
	if strings.Contains(lower, "today") {
		return "today"
	}
	if m := dueDate.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

// ExtractTitles pulls the task titles out of an add instruction.
// Accepted shapes:
//
//	"add buy milk"
//	"add: buy milk; call mom; book dentist"
//	"todo buy milk, call mom"
//
// The text is split on ';' first, then each chunk on ',' if it contains
// one. Pieces shorter than two characters are dropped. An empty result
// means nothing extractable.
func ExtractTitles(text string) []string {
	t := addPrefix.ReplaceAllString(strings.TrimSpace(text), "")

	var parts []string
	for _, chunk := range strings.Split(t, ";") {
		chunk = strings.TrimSpace(strings.Trim(strings.TrimSpace(chunk), ","))
		if chunk == "" {
			continue
		}
		if strings.Contains(chunk, ",") {
			for _, piece := range strings.Split(chunk, ",") {
				if piece = strings.TrimSpace(piece); piece != "" {
					parts = append(parts, piece)
				}
			}
		} else {
			parts = append(parts, chunk)
		}
	}

	titles := parts[:0]
	for _, p := range parts {
		if utf8.RuneCountInString(p) > 1 {
			titles = append(titles, p)
		}
	}
	return titles
}

// completionIndex extracts the 1-based task reference from a completion
// instruction, trying "done N" style verbs first, then "mark N done".
func completionIndex(text string) (int, bool) {
	m := completeRef.FindStringSubmatch(text)
	if m == nil {
		m = markDoneRef.FindStringSubmatch(text)
	}
	if m == nil {
		return 0, false
	}
	idx, err := strconv.Atoi(m[len(m)-1])
	if err != nil {
		return 0, false
	}
	return idx, true
}

// removalIndex extracts the 1-based task reference from a removal
// instruction ("remove N" / "delete N").
func removalIndex(text string) (int, bool) {
	m := removeRef.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	idx, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return idx, true
}

// resolveIndex converts a 1-based user index into a slice index against
// the full stored list of length n. ok is false when out of bounds.
func resolveIndex(userIdx, n int) (int, bool) {
	if userIdx < 1 || userIdx > n {
		return 0, false
	}
	return userIdx - 1, true
}

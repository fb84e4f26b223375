package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/teemow/daybrief/internal/logging"
)

// Command identifies one of the task engine's operations.
type Command string

const (
	CommandList     Command = "list"
	CommandAdd      Command = "add"
	CommandComplete Command = "complete"
	CommandRemove   Command = "remove"
	CommandClear    Command = "clear"
	CommandNext     Command = "next"
)

// usageHint is returned for a blank prompt; no command runs.
const usageHint = "Try: 'add buy milk', 'list', 'done 2', 'remove 3', 'clear', or 'next'."

var (
	routeList     = regexp.MustCompile(`\b(list|show|tasks)\b`)
	routeAdd      = regexp.MustCompile(`\b(add|todo|task|remember|note|create|append)\b`)
	routeComplete = regexp.MustCompile(`\b(done|complete|finish|close)\b|\bmark\s+\d+\s+done\b`)
	routeRemove   = regexp.MustCompile(`\b(remove|delete)\b`)
	routeClear    = regexp.MustCompile(`^\s*clear\s*$`)
	routeNext     = regexp.MustCompile(`\bnext\b`)
)

// routes is evaluated in order and the first match wins. The order is
// load-bearing: "show tasks" must route to list even though "task" is
// also an add trigger word.
var routes = []struct {
	command Command
	match   func(string) bool
}{
	{CommandList, routeList.MatchString},
	{CommandAdd, routeAdd.MatchString},
	{CommandComplete, routeComplete.MatchString},
	{CommandRemove, routeRemove.MatchString},
	{CommandClear, routeClear.MatchString},
	{CommandNext, routeNext.MatchString},
}

// Route classifies a prompt into a task command. Anything that matches
// no rule is treated as an add request.
func Route(prompt string) Command {
	lower := strings.ToLower(prompt)
	for _, r := range routes {
		if r.match(lower) {
			return r.command
		}
	}
	return CommandAdd
}

// Engine interprets free-text task instructions and applies them to the
// persisted list. All handlers are total: problems with the input come
// back as guidance strings, and only a failed save is an error.
type Engine struct {
	store  *Store
	logger *slog.Logger

	// mu serializes load-modify-save cycles so overlapping mutating
	// commands cannot lose each other's updates.
	mu sync.Mutex

	now   func() time.Time
	newID func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator overrides task ID generation. Used in tests.
func WithIDGenerator(gen func() string) Option {
	return func(e *Engine) { e.newID = gen }
}

// WithLogger sets the engine's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// NewEngine creates an engine over the given store.
func NewEngine(store *Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Handle interprets prompt as a task command and applies it. The
// returned string is the user-facing confirmation, listing, or guidance.
// err is non-nil only when persisting the new list state failed; the
// previously saved state is untouched in that case.
func (e *Engine) Handle(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return usageHint, nil
	}

	command := Route(prompt)
	logger := e.logger.With(logging.Command(string(command)))

	var (
		result string
		err    error
	)
	switch command {
	case CommandList:
		result = e.list()
	case CommandAdd:
		result, err = e.add(prompt)
	case CommandComplete:
		result, err = e.complete(prompt)
	case CommandRemove:
		result, err = e.remove(prompt)
	case CommandClear:
		result, err = e.clear()
	case CommandNext:
		result = e.next()
	}
	if err != nil {
		logger.Error("task command failed", logging.Err(err))
		return "", err
	}

	logger.Debug("task command handled")
	return result, nil
}

// list renders open tasks as a numbered list (numbered within the open
// subsequence) and appends a count plus up to five titles of completed
// tasks. Mutation commands address the full stored sequence instead;
// the mismatch is long-standing reference behavior and kept as-is.
func (e *Engine) list() string {
	var open, done []Task
	for _, t := range e.store.Load() {
		if t.Done {
			done = append(done, t)
		} else {
			open = append(open, t)
		}
	}

	text := formatOpen(open)
	if len(done) > 0 {
		titles := make([]string, 0, 5)
		for _, t := range done {
			if len(titles) == 5 {
				break
			}
			title := t.Title
			if title == "" {
				title = "?"
			}
			titles = append(titles, title)
		}
		text += fmt.Sprintf("\n\nCompleted (%d): %s", len(done), strings.Join(titles, ", "))
	}
	return text
}

func formatOpen(list []Task) string {
	if len(list) == 0 {
		return "Your list is empty."
	}

	lines := make([]string, 0, len(list))
	for i, t := range list {
		status := "•"
		if t.Done {
			status = "✓"
		}
		title := t.Title
		if title == "" {
			title = "(untitled)"
		}
		line := fmt.Sprintf("%d. %s %s", i+1, status, title)
		if t.Priority != 0 {
			line += fmt.Sprintf(" [p%d]", t.Priority)
		}
		if t.Due != "" {
			line += fmt.Sprintf(" (due %s)", t.Due)
		}
		lines = append(lines, line)
	}
	return "Tasks:\n" + strings.Join(lines, "\n")
}

// add appends one task per extracted title. Priority and due marker are
// parsed once from the whole instruction and applied to every new task.
func (e *Engine) add(prompt string) (string, error) {
	titles := ExtractTitles(prompt)
	if len(titles) == 0 {
		return "Tell me what to add, e.g. 'add buy milk; call mom'.", nil
	}

	priority := ParsePriority(prompt)
	due := ParseDue(prompt)

	e.mu.Lock()
	defer e.mu.Unlock()

	list := e.store.Load()
	now := Timestamp(e.now())
	for _, title := range titles {
		list = append(list, Task{
			ID:       e.newID(),
			Title:    title,
			Priority: priority,
			Due:      due,
			Created:  now,
			Updated:  now,
		})
	}
	if err := e.store.Save(list); err != nil {
		return "", err
	}

	shown := titles
	suffix := ""
	if len(titles) > 3 {
		shown = titles[:3]
		suffix = "..."
	}
	return fmt.Sprintf("Added %d task(s): %s%s", len(titles), strings.Join(shown, "; "), suffix), nil
}

// complete marks the referenced task done. The reference is resolved
// against the full stored sequence, not the open-only listing.
func (e *Engine) complete(prompt string) (string, error) {
	idx, ok := completionIndex(prompt)
	if !ok {
		return "Specify which task: e.g. 'done 2'.", nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	list := e.store.Load()
	i, ok := resolveIndex(idx, len(list))
	if !ok {
		return fmt.Sprintf("Task #%d not found.", idx), nil
	}

	list[i].Done = true
	list[i].Updated = Timestamp(e.now())
	if err := e.store.Save(list); err != nil {
		return "", err
	}
	return fmt.Sprintf("Marked #%d as done: %s", idx, list[i].Title), nil
}

// remove deletes the referenced task; later tasks shift down one slot.
func (e *Engine) remove(prompt string) (string, error) {
	idx, ok := removalIndex(prompt)
	if !ok {
		return "Specify which task to remove: e.g. 'remove 3'.", nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	list := e.store.Load()
	i, ok := resolveIndex(idx, len(list))
	if !ok {
		return fmt.Sprintf("Task #%d not found.", idx), nil
	}

	title := list[i].Title
	list = append(list[:i], list[i+1:]...)
	if err := e.store.Save(list); err != nil {
		return "", err
	}
	return fmt.Sprintf("Removed #%d: %s", idx, title), nil
}

func (e *Engine) clear() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Save(nil); err != nil {
		return "", err
	}
	return "Cleared all tasks.", nil
}

// next suggests the open task with the lowest priority number, ties
// broken by earliest creation time. Read-only.
func (e *Engine) next() string {
	var open []Task
	for _, t := range e.store.Load() {
		if !t.Done {
			open = append(open, t)
		}
	}
	if len(open) == 0 {
		return "No open tasks."
	}

	best := open[0]
	for _, t := range open[1:] {
		if nextBefore(t, best) {
			best = t
		}
	}

	title := best.Title
	if title == "" {
		title = "(untitled)"
	}
	pr := "p?"
	if best.Priority != 0 {
		pr = fmt.Sprintf("p%d", best.Priority)
	}
	due := ""
	if best.Due != "" {
		due = ", due " + best.Due
	}
	return fmt.Sprintf("Next: %s (%s%s)", title, pr, due)
}

// OpenCount reports how many stored tasks are not done.
func (e *Engine) OpenCount() int {
	count := 0
	for _, t := range e.store.Load() {
		if !t.Done {
			count++
		}
	}
	return count
}

// nextBefore reports whether a should be suggested ahead of b. Unset
// priority sorts behind p3.
func nextBefore(a, b Task) bool {
	pa, pb := a.Priority, b.Priority
	if pa == 0 {
		pa = 9
	}
	if pb == 0 {
		pb = 9
	}
	if pa != pb {
		return pa < pb
	}
	return a.Created < b.Created
}

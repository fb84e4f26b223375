package tasks

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	store := NewStore(filepath.Join(t.TempDir(), "tasks.json"), nil)

	var (
		mu  sync.Mutex
		seq int
	)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		seq++
		return time.Date(2026, 8, 26, 8, 0, 0, 0, time.UTC).Add(time.Duration(seq) * time.Second)
	}
	ids := func() string {
		mu.Lock()
		defer mu.Unlock()
		return fmt.Sprintf("id-%d", seq)
	}

	return NewEngine(store, WithClock(clock), WithIDGenerator(ids))
}

func handle(t *testing.T, e *Engine, prompt string) string {
	t.Helper()
	out, err := e.Handle(context.Background(), prompt)
	require.NoError(t, err)
	return out
}

func TestRoute(t *testing.T) {
	tests := []struct {
		prompt string
		want   Command
	}{
		{"list", CommandList},
		{"show me everything", CommandList},
		{"what tasks do I have", CommandList},
		{"add buy milk", CommandAdd},
		{"TODO call mom", CommandAdd},
		{"remember to water plants", CommandAdd},
		{"done 2", CommandComplete},
		{"complete 1", CommandComplete},
		{"mark 3 done", CommandComplete},
		{"remove 3", CommandRemove},
		{"delete 1", CommandRemove},
		{"clear", CommandClear},
		{"  clear  ", CommandClear},
		{"next", CommandNext},
		{"what's next", CommandNext},
		{"buy milk", CommandAdd},
		// order matters: later trigger words lose to earlier rules
		{"show tasks", CommandList},
		{"list what I need to add", CommandList},
		{"add task: finish 2 reports", CommandAdd},
		{"clear everything", CommandAdd},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.prompt))
		})
	}
}

func TestHandleEmptyPrompt(t *testing.T) {
	e := newTestEngine(t)
	out := handle(t, e, "   ")
	assert.Equal(t, "Try: 'add buy milk', 'list', 'done 2', 'remove 3', 'clear', or 'next'.", out)
}

func TestHandleAddSingle(t *testing.T) {
	e := newTestEngine(t)
	out := handle(t, e, "add buy milk")
	assert.Equal(t, "Added 1 task(s): buy milk", out)

	list := e.store.Load()
	require.Len(t, list, 1)
	assert.Equal(t, "buy milk", list[0].Title)
	assert.False(t, list[0].Done)
	assert.NotEmpty(t, list[0].ID)
	assert.Equal(t, list[0].Created, list[0].Updated)
}

func TestHandleAddMultiple(t *testing.T) {
	e := newTestEngine(t)
	out := handle(t, e, "add buy milk; call mom, book dentist")
	assert.Equal(t, "Added 3 task(s): buy milk; call mom; book dentist", out)
	assert.Len(t, e.store.Load(), 3)
}

func TestHandleAddTruncatesConfirmation(t *testing.T) {
	e := newTestEngine(t)
	out := handle(t, e, "add aa; bb; cc; dd; ee")
	assert.Equal(t, "Added 5 task(s): aa; bb; cc...", out)
	assert.Len(t, e.store.Load(), 5)
}

func TestHandleAddWithFields(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add file taxes p1 tomorrow")

	list := e.store.Load()
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].Priority)
	assert.Equal(t, "tomorrow", list[0].Due)
	// field markers survive in the title text
	assert.Contains(t, list[0].Title, "file taxes")
}

func TestHandleAddFieldsApplyToAllTitles(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add buy milk; call mom p2")

	for _, task := range e.store.Load() {
		assert.Equal(t, 2, task.Priority)
	}
}

func TestHandleAddNoTitles(t *testing.T) {
	e := newTestEngine(t)
	out := handle(t, e, "add")
	assert.Equal(t, "Tell me what to add, e.g. 'add buy milk; call mom'.", out)
	assert.Empty(t, e.store.Load())
}

func TestHandleListEmpty(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, "Your list is empty.", handle(t, e, "list"))
}

func TestHandleListOpenTasks(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add buy milk p2 tomorrow")
	handle(t, e, "add call mom")

	out := handle(t, e, "list")
	assert.Contains(t, out, "Tasks:\n")
	assert.Contains(t, out, "1. •")
	assert.Contains(t, out, "2. • call mom")
	assert.Contains(t, out, "[p2]")
	assert.Contains(t, out, "(due tomorrow)")
	assert.NotContains(t, out, "Completed")
}

func TestHandleListShowsCompletedSummary(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add buy milk; call mom")
	handle(t, e, "done 1")

	out := handle(t, e, "list")
	// open tasks are renumbered from 1 within the open subsequence
	assert.Contains(t, out, "1. • call mom")
	assert.Contains(t, out, "Completed (1):")
	assert.Contains(t, out, "buy milk")
}

func TestHandleListAllCompleted(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add buy milk")
	handle(t, e, "done 1")

	out := handle(t, e, "list")
	assert.Contains(t, out, "Your list is empty.")
	assert.Contains(t, out, "Completed (1): buy milk")
}

func TestHandleCompleteAddressesFullStoredList(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add one; two; three")
	handle(t, e, "done 1")

	// index 2 still refers to "two" in the stored sequence even though
	// the listing now shows it as number 1
	out := handle(t, e, "done 2")
	assert.Equal(t, "Marked #2 as done: two", out)

	list := e.store.Load()
	assert.True(t, list[0].Done)
	assert.True(t, list[1].Done)
	assert.False(t, list[2].Done)
}

func TestHandleCompleteUpdatesTimestamp(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add buy milk")

	before := e.store.Load()[0]
	handle(t, e, "done 1")
	after := e.store.Load()[0]

	assert.Equal(t, before.Created, after.Created)
	assert.NotEqual(t, before.Updated, after.Updated)
}

func TestHandleCompleteAlreadyDone(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add buy milk")
	handle(t, e, "done 1")

	// completing again is a no-op that still confirms
	out := handle(t, e, "done 1")
	assert.Equal(t, "Marked #1 as done: buy milk", out)
}

func TestHandleCompleteNoReference(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, "Specify which task: e.g. 'done 2'.", handle(t, e, "done"))
}

func TestHandleCompleteOutOfRange(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add buy milk")
	assert.Equal(t, "Task #5 not found.", handle(t, e, "done 5"))
	assert.Equal(t, "Task #0 not found.", handle(t, e, "done 0"))
}

func TestHandleRemove(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add one; two; three")

	out := handle(t, e, "remove 2")
	assert.Equal(t, "Removed #2: two", out)

	list := e.store.Load()
	require.Len(t, list, 2)
	assert.Equal(t, "one", list[0].Title)
	assert.Equal(t, "three", list[1].Title)
}

func TestHandleRemoveShiftsIndexes(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add one; two; three")
	handle(t, e, "remove 1")

	// "three" moved from slot 3 to slot 2
	out := handle(t, e, "remove 2")
	assert.Equal(t, "Removed #2: three", out)
}

func TestHandleRemoveNoReference(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, "Specify which task to remove: e.g. 'remove 3'.", handle(t, e, "remove it"))
}

func TestHandleRemoveOutOfRange(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, "Task #1 not found.", handle(t, e, "remove 1"))
}

func TestHandleClear(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add one; two")

	assert.Equal(t, "Cleared all tasks.", handle(t, e, "clear"))
	assert.Empty(t, e.store.Load())

	// clearing an empty list succeeds the same way
	assert.Equal(t, "Cleared all tasks.", handle(t, e, "clear"))
}

func TestHandleNextEmpty(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, "No open tasks.", handle(t, e, "next"))
}

func TestHandleNextPrefersPriority(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add routine thing")
	handle(t, e, "add urgent thing p1")
	handle(t, e, "add later thing p3")

	out := handle(t, e, "next")
	assert.Contains(t, out, "Next: urgent thing")
	assert.Contains(t, out, "(p1")
}

func TestHandleNextUnsetPrioritySortsLast(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add unranked thing")
	handle(t, e, "add ranked thing p3")

	assert.Contains(t, handle(t, e, "next"), "Next: ranked thing")
}

func TestHandleNextTieBreaksByCreation(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add first p2")
	handle(t, e, "add second p2")

	assert.Contains(t, handle(t, e, "next"), "Next: first")
}

func TestHandleNextSkipsCompleted(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add urgent thing p1")
	handle(t, e, "add routine thing")
	handle(t, e, "done 1")

	assert.Contains(t, handle(t, e, "next"), "Next: routine thing")
}

func TestHandleNextFormatsUnsetPriorityAndDue(t *testing.T) {
	e := newTestEngine(t)
	handle(t, e, "add buy milk tomorrow")

	out := handle(t, e, "next")
	assert.Contains(t, out, "(p?")
	assert.Contains(t, out, "due tomorrow)")
}

func TestHandleFallbackToAdd(t *testing.T) {
	e := newTestEngine(t)
	out := handle(t, e, "buy milk")
	assert.Equal(t, "Added 1 task(s): buy milk", out)
}

func TestHandleConcurrentAddsLoseNothing(t *testing.T) {
	e := newTestEngine(t)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := e.Handle(context.Background(), fmt.Sprintf("add task number %d", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Len(t, e.store.Load(), n)
}

func TestHandleSaveFailureSurfacesError(t *testing.T) {
	// point the store at a path whose parent directory does not exist
	store := NewStore(filepath.Join(t.TempDir(), "missing", "tasks.json"), nil)
	e := NewEngine(store)

	_, err := e.Handle(context.Background(), "add buy milk")
	assert.Error(t, err)
}

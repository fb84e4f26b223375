// Package tasks implements the task command engine: it interprets a
// free-text instruction as one of six list commands (list, add, complete,
// remove, clear, next), extracts structured fields from the text, and
// applies the command to a task list persisted as a single JSON file.
//
// The engine serializes every load-modify-save cycle behind a mutex so
// that overlapping commands from concurrent requests cannot lose updates
// against the shared store file.
package tasks

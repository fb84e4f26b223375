// Package tasks_tools provides MCP tools for the local task engine.
//
// The tools expose the free-text command interface (tasks_command) plus
// two read-only shortcuts (tasks_list, tasks_next). Task state lives in
// a single JSON file managed by the engine; no Google account is needed.
package tasks_tools

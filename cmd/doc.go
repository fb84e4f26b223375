// Package cmd implements the command-line interface for daybrief.
//
// This package provides the following commands:
//   - ask: Route a one-shot free-text prompt to email, calendar, weather, or tasks
//   - auth: Authorize read-only Google access for an account
//   - serve: Start the MCP server to provide tools for AI assistants
//   - version: Display version information
//
// The ask command is the default command when no subcommand is specified.
package cmd

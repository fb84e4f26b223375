// Package gmail_tools provides MCP tools for Gmail integration.
//
// The gmail_summarize_unread tool condenses the unread inbox into a
// short digest. Clients are resolved per account from the server
// context and cached after first use.
package gmail_tools

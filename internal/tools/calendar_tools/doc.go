// Package calendar_tools provides MCP tools for Google Calendar.
//
// The calendar_plan_day tool renders today's agenda for a configurable
// timezone. Clients are resolved per account from the server context
// and cached after first use.
package calendar_tools

// Package assistant_tools provides the assistant_ask MCP tool, the
// single entry point that routes a free-text prompt to email, calendar,
// weather, or task handling.
package assistant_tools

package calendar_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/daybrief/internal/calendar"
	"github.com/teemow/daybrief/internal/google"
	"github.com/teemow/daybrief/internal/instrumentation"
	"github.com/teemow/daybrief/internal/server"
	"github.com/teemow/daybrief/internal/tools/common"
)

// getCalendarClient retrieves or creates a Calendar client for the specified account
func getCalendarClient(ctx context.Context, account string, sc *server.ServerContext) (*calendar.Client, error) {
	client := sc.CalendarClientForAccount(account)
	if client == nil {
		if !calendar.HasTokenForAccount(account) {
			return nil, fmt.Errorf("no Google token for account %q: %s",
				account, google.GetAuthenticationErrorMessage(account))
		}

		var err error
		client, err = calendar.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Calendar client for account %s: %w", account, err)
		}
		sc.SetCalendarClientForAccount(account, client)
	}
	return client, nil
}

// RegisterCalendarTools registers all Calendar-related tools with the MCP server
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	planTool := mcp.NewTool("calendar_plan_day",
		mcp.WithDescription("Summarize today's calendar: event count, first start time, and up to ten event lines."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone for the day window (default: LOCAL_TZ env var or Europe/Helsinki)"),
		),
	)

	s.AddTool(planTool, common.InstrumentedToolHandlerWithService(
		"calendar_plan_day", instrumentation.ServiceCalendar, instrumentation.OperationPlan, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(ctx, args)
			timezone, _ := args["timezone"].(string)

			client, err := getCalendarClient(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			plan, err := client.PlanDay(ctx, timezone)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to plan the day: %v", err)), nil
			}
			return mcp.NewToolResultText(plan), nil
		}))

	return nil
}

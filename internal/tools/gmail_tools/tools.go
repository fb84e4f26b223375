package gmail_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/daybrief/internal/gmail"
	"github.com/teemow/daybrief/internal/google"
	"github.com/teemow/daybrief/internal/instrumentation"
	"github.com/teemow/daybrief/internal/server"
	"github.com/teemow/daybrief/internal/tools/common"
)

// getGmailClient retrieves or creates a Gmail client for the specified account
func getGmailClient(ctx context.Context, account string, sc *server.ServerContext) (*gmail.Client, error) {
	client := sc.GmailClientForAccount(account)
	if client == nil {
		if !gmail.HasTokenForAccount(account) {
			return nil, fmt.Errorf("no Google token for account %q: %s",
				account, google.GetAuthenticationErrorMessage(account))
		}

		var err error
		client, err = gmail.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gmail client for account %s: %w", account, err)
		}
		sc.SetGmailClientForAccount(account, client)
	}
	return client, nil
}

// RegisterGmailTools registers all Gmail-related tools with the MCP server
func RegisterGmailTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	summarizeTool := mcp.NewTool("gmail_summarize_unread",
		mcp.WithDescription("Summarize unread inbox email: count, top senders, latest arrival, and a few subjects. The prompt can narrow the window ('last 24 hours', 'this week')."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("prompt",
			mcp.Description("Optional free-text request; time words adjust the Gmail query window"),
		),
	)

	s.AddTool(summarizeTool, common.InstrumentedToolHandlerWithService(
		"gmail_summarize_unread", instrumentation.ServiceGmail, instrumentation.OperationSummarize, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := common.GetAccountFromArgs(ctx, args)
			prompt, _ := args["prompt"].(string)

			client, err := getGmailClient(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			summary, err := client.SummarizeUnread(ctx, prompt)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to summarize unread email: %v", err)), nil
			}
			return mcp.NewToolResultText(summary), nil
		}))

	return nil
}

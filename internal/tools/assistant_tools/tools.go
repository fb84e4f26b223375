package assistant_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/daybrief/internal/agent"
	"github.com/teemow/daybrief/internal/instrumentation"
	"github.com/teemow/daybrief/internal/server"
	"github.com/teemow/daybrief/internal/tools/common"
)

// RegisterAssistantTools registers the top-level assistant tool with the MCP server
func RegisterAssistantTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	askTool := mcp.NewTool("assistant_ask",
		mcp.WithDescription("Ask the daily assistant anything: email summaries, today's schedule, current weather, or task commands. The prompt is routed to the matching capability."),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("The request, e.g. 'summarize my email', 'plan my day', 'weather', or 'add buy milk'"),
		),
	)

	s.AddTool(askTool, common.InstrumentedToolHandler("assistant_ask", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			prompt, _ := args["prompt"].(string)
			if prompt == "" {
				return mcp.NewToolResultError("prompt is required"), nil
			}

			assistant, err := sc.Assistant()
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Assistant unavailable: %v", err)), nil
			}

			answer, err := assistant.Ask(ctx, prompt)

			if metrics := sc.Metrics(); metrics != nil {
				status := instrumentation.StatusSuccess
				if err != nil {
					status = instrumentation.StatusError
				}
				metrics.RecordAgentRequest(ctx, string(agent.RouteIntent(prompt)), status)
			}

			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to answer: %v", err)), nil
			}
			return mcp.NewToolResultText(answer), nil
		}))

	return nil
}

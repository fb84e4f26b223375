package tasks_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/daybrief/internal/instrumentation"
	"github.com/teemow/daybrief/internal/server"
	"github.com/teemow/daybrief/internal/tasks"
	"github.com/teemow/daybrief/internal/tools/common"
)

// RegisterTasksTools registers all task engine tools with the MCP server
func RegisterTasksTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Free-text task command tool
	commandTool := mcp.NewTool("tasks_command",
		mcp.WithDescription("Run a free-text task command: add, list, complete ('done 2'), remove, clear, or next. Unrecognized text is treated as a new task."),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("The instruction, e.g. 'add buy milk; call mom p1 due tomorrow' or 'done 2'"),
		),
	)

	s.AddTool(commandTool, common.InstrumentedToolHandler("tasks_command", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			prompt, _ := args["prompt"].(string)
			if prompt == "" {
				return mcp.NewToolResultError("prompt is required"), nil
			}
			return handleCommand(ctx, sc, prompt)
		}))

	// Listing shortcut
	listTool := mcp.NewTool("tasks_list",
		mcp.WithDescription("List open tasks with their numbers, plus a completed summary"),
	)

	s.AddTool(listTool, common.InstrumentedToolHandler("tasks_list", sc,
		func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCommand(ctx, sc, "list")
		}))

	// Next suggestion shortcut
	nextTool := mcp.NewTool("tasks_next",
		mcp.WithDescription("Suggest the next open task to work on, by priority then age"),
	)

	s.AddTool(nextTool, common.InstrumentedToolHandler("tasks_next", sc,
		func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCommand(ctx, sc, "next")
		}))

	return nil
}

// handleCommand runs one engine command and records task metrics.
func handleCommand(ctx context.Context, sc *server.ServerContext, prompt string) (*mcp.CallToolResult, error) {
	engine := sc.TaskEngine()
	command := string(tasks.Route(prompt))

	result, err := engine.Handle(ctx, prompt)

	if metrics := sc.Metrics(); metrics != nil {
		status := instrumentation.StatusSuccess
		if err != nil {
			status = instrumentation.StatusError
		}
		metrics.RecordTaskCommand(ctx, command, status)
		metrics.RecordOpenTasks(ctx, int64(engine.OpenCount()))
	}

	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to apply task command: %v", err)), nil
	}
	return mcp.NewToolResultText(result), nil
}

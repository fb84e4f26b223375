package weather_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/daybrief/internal/instrumentation"
	"github.com/teemow/daybrief/internal/server"
	"github.com/teemow/daybrief/internal/tools/common"
)

// RegisterWeatherTools registers weather tools with the MCP server
func RegisterWeatherTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	currentTool := mcp.NewTool("weather_current",
		mcp.WithDescription("Report the latest observed temperature and wind speed for a Finnish city (FMI open data)."),
		mcp.WithString("city",
			mcp.Description("City name (default: DEFAULT_CITY env var or Lappeenranta)"),
		),
	)

	s.AddTool(currentTool, common.InstrumentedToolHandlerWithService(
		"weather_current", instrumentation.ServiceWeather, instrumentation.OperationCurrent, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			city, _ := args["city"].(string)

			report, err := sc.WeatherClient().Current(ctx, city)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch weather: %v", err)), nil
			}
			return mcp.NewToolResultText(report), nil
		}))

	return nil
}

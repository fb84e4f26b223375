package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the daybrief application
var rootCmd = &cobra.Command{
	Use:   "daybrief",
	Short: "A small daily assistant for email, calendar, weather, and tasks",
	Long: `daybrief answers one question at a time: it summarizes unread Gmail,
plans your day from Google Calendar, reports current weather (FMI open
data), and keeps a local task list driven by free-text commands.

It can run as:
  - A one-shot CLI assistant (default, see 'ask')
  - An MCP (Model Context Protocol) server for AI assistants`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "daybrief version %s\n" .Version}}`)

	// If no subcommand is provided, run the ask command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "ask")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newAskCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/daybrief/internal/server"
	"github.com/teemow/daybrief/internal/tasks"
)

func newAskCmd() *cobra.Command {
	var (
		debugMode bool
		storePath string
	)

	cmd := &cobra.Command{
		Use:   "ask [prompt...]",
		Short: "Ask the assistant a one-shot question",
		Long: `Ask routes a free-text prompt to the matching capability and prints
the answer:

  daybrief ask summarize my email
  daybrief ask plan my day
  daybrief ask weather
  daybrief ask add buy milk; call mom p1 due tomorrow
  daybrief ask done 2

Anything that doesn't mention email, schedule/plan, or weather goes to
the task engine. Task state is stored in a JSON file (TASKS_PATH env
var, default tasks.json).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")

			logger := newLogger(debugMode)

			store := tasks.NewStore(resolveStorePath(storePath), logger)
			engine := tasks.NewEngine(store, tasks.WithLogger(logger))

			sc, err := server.NewServerContext(cmd.Context(), engine, logger)
			if err != nil {
				return fmt.Errorf("failed to create server context: %w", err)
			}
			defer func() { _ = sc.Shutdown() }()

			assistant, err := sc.Assistant()
			if err != nil {
				return err
			}

			answer, err := assistant.Ask(cmd.Context(), prompt)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&storePath, "store", "", "Path to the task store JSON file. Can also use TASKS_PATH env var. Default: tasks.json")

	return cmd
}

// resolveStorePath prefers the flag, then TASKS_PATH, then the default.
func resolveStorePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return tasks.StorePathFromEnv()
}

// newLogger builds the CLI logger. Logs go to stderr so answers on
// stdout stay clean.
func newLogger(debugMode bool) *slog.Logger {
	level := slog.LevelWarn
	if debugMode {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

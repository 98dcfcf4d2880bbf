package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"legion/internal/app"
	"legion/internal/tui"
)

func init() {
	rootCmd.AddCommand(cmdTUI)
}

var tuiRun = tui.Run

var cmdTUI = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The TUI renders outcomes itself; console output would corrupt the screen.
		slog.SetDefault(slog.New(slog.DiscardHandler))
		ctrl := controllerFactory()
		if n, ok := ctrl.(interface{ SetNotifier(app.Notifier) }); ok {
			n.SetNotifier(app.NopNotifier{})
		}
		if err := tuiRun(ctrl); err != nil {
			return fmt.Errorf("tui exited with error: %w", err)
		}
		return nil
	},
}

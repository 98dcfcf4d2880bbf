package main

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"legion/internal/app"
	"legion/internal/launcher"
)

func init() {
	rootCmd.AddCommand(cmdLaunch)
}

var cmdLaunch = &cobra.Command{
	Use:   "launch <name>",
	Short: "Start every program of a profile",
	Long: `Starts each program of the profile in order without waiting for it.
A program that fails to start does not stop the others; the command exits
non-zero when at least one program failed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		var spin *spinner.Spinner
		if stdoutIsTerminal() {
			spin = spinner.New(spinner.CharSets[21], 120*time.Millisecond, spinner.WithWriter(out))
			spin.Suffix = fmt.Sprintf(" Launching %s...", args[0])
			spin.Start()
		}
		res, err := controllerFactory().Launch(app.LaunchParams{Name: args[0]})
		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			return err
		}

		for _, r := range res.Results {
			if r.Outcome == launcher.Started {
				fmt.Fprintf(out, "Started pid=%d %s\n", r.PID, r.Path)
			}
		}
		if res.Failed > 0 {
			return fmt.Errorf("%d of %d program(s) in profile '%s' failed to launch", res.Failed, len(res.Results), res.Profile)
		}
		return nil
	},
}

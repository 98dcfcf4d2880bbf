package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

var showFull bool

func init() {
	rootCmd.AddCommand(cmdShow)
	cmdShow.Flags().BoolVar(&showFull, "full", false, "Print full paths instead of file names")
}

var cmdShow = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the programs of a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := controllerFactory().Show(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(p.Programs) == 0 {
			fmt.Fprintf(out, "Profile '%s' has no programs.\n", p.Name)
			return nil
		}
		for _, prog := range p.Programs {
			if showFull {
				fmt.Fprintln(out, prog)
				continue
			}
			fmt.Fprintln(out, filepath.Base(prog))
		}
		return nil
	},
}

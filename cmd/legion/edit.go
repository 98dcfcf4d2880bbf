package main

import (
	"github.com/spf13/cobra"

	"legion/internal/app"
)

var editNoPrompt bool

func init() {
	rootCmd.AddCommand(cmdEdit)
	cmdEdit.Flags().BoolVar(&editNoPrompt, "no-prompt", false, "Never open the interactive file picker")
}

var cmdEdit = &cobra.Command{
	Use:   "edit <name> [program...]",
	Short: "Append programs to an existing profile",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, confirmer, err := selectionSource(args[1:], editNoPrompt)
		if err != nil {
			return err
		}
		_, err = controllerFactory().Edit(app.EditParams{
			Name:      args[0],
			Provider:  provider,
			Confirmer: confirmer,
		})
		return err
	},
}

package main

import (
	"github.com/spf13/cobra"

	"legion/internal/app"
)

var createNoPrompt bool

func init() {
	rootCmd.AddCommand(cmdCreate)
	cmdCreate.Flags().BoolVar(&createNoPrompt, "no-prompt", false, "Never open the interactive file picker")
}

var cmdCreate = &cobra.Command{
	Use:   "create <name> [program...]",
	Short: "Create a new profile",
	Long: `Creates a profile named <name> holding the given programs in order.
Without programs and with a terminal attached, a file picker is opened and
programs are added one at a time until you decline to add another.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, confirmer, err := selectionSource(args[1:], createNoPrompt)
		if err != nil {
			return err
		}
		_, err = controllerFactory().Create(app.CreateParams{
			Name:      args[0],
			Provider:  provider,
			Confirmer: confirmer,
		})
		return err
	},
}

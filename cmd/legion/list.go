package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listFormat string

func init() {
	rootCmd.AddCommand(cmdList)
	cmdList.Flags().StringVarP(&listFormat, "format", "f", "table", "Output format: table, json or yaml")
}

type profileSummary struct {
	Name     string `json:"name" yaml:"name"`
	Programs int    `json:"programs" yaml:"programs"`
}

var cmdList = &cobra.Command{
	Use:   "list",
	Short: "List stored profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch listFormat {
		case "table", "json", "yaml":
		default:
			return fmt.Errorf("unknown format %q (allowed: table, json, yaml)", listFormat)
		}

		profiles, err := controllerFactory().List()
		if err != nil {
			return err
		}
		summaries := make([]profileSummary, 0, len(profiles))
		for _, p := range profiles {
			summaries = append(summaries, profileSummary{Name: p.Name, Programs: len(p.Programs)})
		}

		out := cmd.OutOrStdout()
		switch listFormat {
		case "json":
			data, err := json.MarshalIndent(summaries, "", "  ")
			if err != nil {
				return fmt.Errorf("encode json: %w", err)
			}
			fmt.Fprintln(out, string(data))
		case "yaml":
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(summaries); err != nil {
				return fmt.Errorf("encode yaml: %w", err)
			}
			return enc.Close()
		default:
			if len(summaries) == 0 {
				return nil
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("NAME", "PROGRAMS")
			for _, s := range summaries {
				t.Row(s.Name, strconv.Itoa(s.Programs))
			}
			fmt.Fprintln(out, t.Render())
		}
		return nil
	},
}

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/kingrea/workorder/internal/vocab"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the option lists offered by the form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		asJSON, _ := cmd.Flags().GetBool("json")
		return printOptions(cmd.OutOrStdout(), cfg.Vocabulary(), asJSON)
	},
}

func init() {
	optionsCmd.Flags().Bool("json", false, "output JSON")
	rootCmd.AddCommand(optionsCmd)
}

func printOptions(out io.Writer, v vocab.Vocabulary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	for i, list := range v.Lists() {
		if i > 0 {
			fmt.Fprintln(out)
		}
		tw := table.NewWriter()
		tw.SetOutputMirror(out)
		tw.AppendHeader(table.Row{"#", list.Name})
		for idx, option := range list.Options {
			tw.AppendRow(table.Row{idx + 1, option})
		}
		tw.Render()
	}
	return nil
}

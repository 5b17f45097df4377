package main

import (
	"github.com/spf13/cobra"

	"github.com/kingrea/workorder/internal/formfile"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print a starter form file for compose",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return formfile.Encode(cmd.OutOrStdout(), formfile.Template())
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
}

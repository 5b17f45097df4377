package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kingrea/workorder/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .workorder/config.yaml in the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("determine working directory: %w", err)
		}
		if err := config.InitDir(cwd); err != nil {
			return err
		}
		cfg, err := config.NewConfig(cwd)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "config ready at %s\n", cfg.ProjectConfigPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

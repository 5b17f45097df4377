// cmd/workorder/main.go
//
// This is the entry point for the workorder CLI.
// Run `workorder` with no arguments to open the interactive form; the
// subcommands compose summaries from form files and inspect the option lists.

package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kingrea/workorder/internal/clipboard"
	"github.com/kingrea/workorder/internal/config"
	"github.com/kingrea/workorder/internal/logbook"
	"github.com/kingrea/workorder/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "workorder",
	Short: "Build print/mail work orders",
	Long: `workorder collects the attributes of a print/mail job (docket, drop date,
quantity, project details, production components, QC checklist and project
notes) and renders them into a plain-text work order ready to paste.

Without a subcommand the interactive form opens. Use "compose" to render a
form file non-interactively.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runForm(cmd)
	},
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("WORKORDER")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./.workorder/config.yaml)")
	rootCmd.PersistentFlags().String("clipboard", "", "clipboard mode: auto, system, osc52 or none")
	rootCmd.PersistentFlags().Bool("strict", false, "refuse to generate while fields hold unknown options")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("clipboard", rootCmd.PersistentFlags().Lookup("clipboard"))
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	rootCmd.Flags().StringP("file", "f", "", "preload the form from a YAML/JSON form file")
}

// loadConfig reads the project config and applies flag/env overrides.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("determine working directory: %w", err)
	}
	var cfg *config.Config
	if path := strings.TrimSpace(viper.GetString("config")); path != "" {
		cfg, err = config.Load(cwd, path)
	} else {
		cfg, err = config.NewConfig(cwd)
	}
	if err != nil {
		return nil, err
	}
	if mode := strings.TrimSpace(viper.GetString("clipboard")); mode != "" {
		if err := cfg.SetClipboardMode(mode); err != nil {
			return nil, err
		}
	}
	if viper.IsSet("strict") {
		cfg.Project.StrictVocabulary = viper.GetBool("strict")
	}
	return cfg, nil
}

func runForm(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := config.InitDir(cfg.ProjectDir); err != nil {
		return err
	}
	lb, err := logbook.New(cfg.LogPath())
	if err != nil {
		return err
	}
	// OSC52 goes to stderr so it never interleaves with the rendered frame
	sink, err := clipboard.New(cfg.ClipboardMode(), os.Stderr)
	if err != nil {
		return err
	}

	opts := []tui.AppOption{
		tui.WithVocabulary(cfg.Vocabulary()),
		tui.WithClipboard(sink),
		tui.WithLogbook(lb),
		tui.WithStrictVocabulary(cfg.Strict()),
	}
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		state, err := readForm(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		opts = append(opts, tui.WithState(state))
	}

	p := tea.NewProgram(
		tui.NewApp(opts...),
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running form: %w", err)
	}
	return nil
}

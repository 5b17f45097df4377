package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kingrea/workorder/internal/clipboard"
	"github.com/kingrea/workorder/internal/formfile"
	"github.com/kingrea/workorder/internal/vocab"
	"github.com/kingrea/workorder/internal/workorder"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Render a form file into the work order summary",
	Long: `compose reads a YAML or JSON form file (see "workorder template") and
prints the work order summary. Use -f - or omit -f to read from stdin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("file")
		state, err := readForm(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}
		opts := composeOptions{vocab: cfg.Vocabulary(), strict: cfg.Strict()}
		if copyOut, _ := cmd.Flags().GetBool("copy"); copyOut {
			sink, err := clipboard.New(cfg.ClipboardMode(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opts.sink = sink
		}
		return runCompose(state, cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
	},
}

func init() {
	composeCmd.Flags().StringP("file", "f", "-", "form file to read, - for stdin")
	composeCmd.Flags().Bool("copy", false, "also copy the summary to the clipboard")
	rootCmd.AddCommand(composeCmd)
}

type composeOptions struct {
	vocab  vocab.Vocabulary
	strict bool
	sink   clipboard.Sink
}

// runCompose prints the summary for state. Unknown options are warnings on
// stderr unless strict is set, in which case nothing is printed.
func runCompose(state workorder.FormState, out, errOut io.Writer, opts composeOptions) error {
	if issues := opts.vocab.Check(state); len(issues) > 0 {
		lines := make([]string, len(issues))
		for i, issue := range issues {
			lines[i] = issue.String()
		}
		if opts.strict {
			return fmt.Errorf("unknown options:\n  %s", strings.Join(lines, "\n  "))
		}
		for _, line := range lines {
			fmt.Fprintln(errOut, "warning:", line)
		}
	}
	text, err := workorder.Compose(state)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, text); err != nil {
		return err
	}
	if opts.sink != nil {
		if err := opts.sink.Copy(text); err != nil {
			return err
		}
		fmt.Fprintln(errOut, "Copied!")
	}
	return nil
}

func readForm(stdin io.Reader, path string) (workorder.FormState, error) {
	if path == "" || path == "-" {
		return formfile.Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return workorder.FormState{}, fmt.Errorf("open form file: %w", err)
	}
	defer f.Close()
	state, err := formfile.Decode(f)
	if err != nil {
		return workorder.FormState{}, fmt.Errorf("%s: %w", path, err)
	}
	return state, nil
}

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/suikit/internal/config"
	"github.com/alexisbeaulieu97/suikit/internal/dropdown"
	"github.com/alexisbeaulieu97/suikit/internal/tui/picker"
)

var errSelectionCancelled = errors.New("selection cancelled")

var (
	pickProgramRunner = runPickProgram
	isTerminal        = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }
)

type pickOptions struct {
	configPath string
	jsonOutput bool
	rows       int
}

func newPickCmd(root *rootFlags) *cobra.Command {
	opts := &pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a value with an interactive dropdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to dropdown definition")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().IntVar(&opts.rows, "rows", 8, "Menu entries visible at once")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

func runPick(cmd *cobra.Command, root *rootFlags, opts *pickOptions) error {
	// The picker draws on stderr so that stdout can be piped.
	if !isTerminal(os.Stdin) || !isTerminal(os.Stderr) {
		return newCommandError("pick", "checking the terminal",
			errors.New("stdin and stderr must be terminals"),
			"Run pick from an interactive shell, or use 'suikit options' for scripted listings.")
	}

	cfg, err := loadConfig("pick", opts.configPath)
	if err != nil {
		return err
	}

	// Log lines would tear the full-screen view, so they are held until it closes.
	var logs bytes.Buffer
	log, err := root.newLogger(&logs, "picker")
	if err != nil {
		return newCommandError("pick", "creating the logger", err, "Check the --log-format and --verbose flags.")
	}
	defer io.Copy(cmd.ErrOrStderr(), &logs) //nolint:errcheck

	model := picker.New(cfg.Props(), picker.Options{
		Title:       cfg.Name,
		Description: cfg.Description,
		Rows:        opts.rows,
		Logger:      log.With("dropdown", cfg.Name),
	})

	final, err := pickProgramRunner(model)
	if err != nil {
		return newCommandError("pick", "running the picker", err, "Check that the terminal supports full-screen programs.")
	}

	res := final.Result()
	log.Info("selection finished", "cancelled", res.Cancelled, "additions", len(res.Additions))
	if res.Cancelled {
		return newCommandError("pick", "waiting for a selection", errSelectionCancelled,
			"Press enter on an option, or ctrl+s to confirm the current selection.")
	}

	return renderPickResult(cmd.OutOrStdout(), cfg, res, opts.jsonOutput)
}

func runPickProgram(m picker.Model) (picker.Model, error) {
	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stderr),
	)
	final, err := program.Run()
	if err != nil {
		return m, err
	}
	pm, ok := final.(picker.Model)
	if !ok {
		return m, fmt.Errorf("unexpected model type %T", final)
	}
	return pm, nil
}

type pickJSONPayload struct {
	Name      string           `json:"name"`
	Multiple  bool             `json:"multiple"`
	Value     dropdown.Value   `json:"value"`
	Values    []dropdown.Value `json:"values,omitempty"`
	Additions []dropdown.Value `json:"additions,omitempty"`
}

func renderPickResult(w io.Writer, cfg *config.Config, res picker.Result, jsonOutput bool) error {
	if jsonOutput {
		payload := pickJSONPayload{
			Name:      cfg.Name,
			Multiple:  res.Multiple,
			Value:     res.Value,
			Values:    res.Values,
			Additions: res.Additions,
		}
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	if !res.Multiple {
		if res.Value != nil {
			fmt.Fprintln(w, dropdown.ValueString(res.Value))
		}
		return nil
	}
	for _, v := range res.Values {
		fmt.Fprintln(w, dropdown.ValueString(v))
	}
	return nil
}

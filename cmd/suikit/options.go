package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/suikit/internal/dropdown"
)

type optionsOptions struct {
	configPath string
	query      string
	jsonOutput bool
}

func newOptionsCmd(root *rootFlags) *cobra.Command {
	opts := &optionsOptions{}

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the menu a dropdown definition derives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptions(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to dropdown definition")
	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Search query to filter with")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.MarkFlagRequired("config") //nolint:errcheck

	return cmd
}

type optionEntry struct {
	Value       dropdown.Value `json:"value"`
	Text        string         `json:"text"`
	Description string         `json:"description,omitempty"`
	Class       string         `json:"class"`
	Disabled    bool           `json:"disabled,omitempty"`
	Addition    bool           `json:"addition,omitempty"`
}

func runOptions(cmd *cobra.Command, root *rootFlags, opts *optionsOptions) error {
	log, err := root.newLogger(cmd.ErrOrStderr(), "options")
	if err != nil {
		return newCommandError("list options", "creating the logger", err, "Check the --log-format and --verbose flags.")
	}

	cfg, err := loadConfig("list options", opts.configPath)
	if err != nil {
		return err
	}

	props := cfg.Props()
	props.DefaultOpen = true
	props.DefaultSearchQuery = opts.query
	if opts.query != "" && !props.SearchEnabled() {
		log.Warn("search query ignored", "dropdown", cfg.Name, "reason", "search is disabled")
	}

	ctrl := dropdown.New(props, dropdown.Ownership{}, dropdown.Ports{}, dropdown.Handlers{}, log.With("dropdown", cfg.Name))
	defer ctrl.Dispatch(dropdown.Unmount{})

	menu := ctrl.MenuOptions()
	entries := make([]optionEntry, 0, len(menu))
	for i, opt := range menu {
		entries = append(entries, optionEntry{
			Value:       opt.Value,
			Text:        opt.Text,
			Description: opt.Description,
			Class:       ctrl.ItemClassName(i, opt),
			Disabled:    opt.Disabled,
			Addition:    opt.Additional,
		})
	}
	log.Debug("derived menu", "dropdown", cfg.Name, "query", opts.query, "entries", len(entries))

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(entries)
	}

	if len(entries) == 0 {
		if props.SearchEnabled() {
			fmt.Fprintln(cmd.OutOrStdout(), ctrl.Props().NoResultsMessage)
		}
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "VALUE\tTEXT\tCLASS")
	for _, entry := range entries {
		text := entry.Text
		if entry.Addition {
			text = ctrl.Props().AdditionLabel + text
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\n", dropdown.ValueString(entry.Value), text, entry.Class)
	}
	return writer.Flush()
}

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/suikit/internal/logger"
)

const (
	logFormatConsole = "console"
	logFormatJSON    = "json"
)

type rootFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "suikit",
		Short:         "suikit renders Semantic UI dropdowns in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.validate()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logFormatConsole, "Log format: console or json")

	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newOptionsCmd(flags))
	cmd.AddCommand(newClassesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) validate() error {
	switch f.logFormat {
	case logFormatConsole, logFormatJSON:
		return nil
	}
	return newCommandError("start", "reading --log-format",
		fmt.Errorf("unknown log format %q", f.logFormat),
		"Use --log-format console or --log-format json.")
}

// newLogger builds the command logger. Commands pass stderr, since stdout
// carries their output.
func (f *rootFlags) newLogger(w io.Writer, component string) (*logger.Logger, error) {
	level := "info"
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: f.logFormat != logFormatJSON,
		Writer:        w,
		Component:     component,
	})
}

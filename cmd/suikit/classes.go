package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/suikit/pkg/classnames"
)

type classesOptions struct {
	list bool
}

func newClassesCmd() *cobra.Command {
	opts := &classesOptions{}

	cmd := &cobra.Command{
		Use:   "classes <directive>...",
		Short: "Compose a Semantic class string from directives",
		Long: `Compose a Semantic class string from directives.

Each argument is a literal class or a "<use>:<key>=<value>" directive:

  suikit classes ui key:active value-key:attached=top 'width:4=wide column'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses(cmd, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.list, "list", false, "Print one class fragment per line")

	return cmd
}

func runClasses(cmd *cobra.Command, opts *classesOptions, args []string) error {
	parsed, err := classnames.ParseAll(args)
	if err != nil {
		return newCommandError("compose classes", "parsing directives", err,
			"Directives look like key:active or value-key:attached=top.")
	}

	if opts.list {
		for _, fragment := range classnames.Names(parsed...) {
			fmt.Fprintln(cmd.OutOrStdout(), fragment)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), classnames.Name(parsed...))
	return nil
}

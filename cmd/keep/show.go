package main

import (
	"fmt"

	"github.com/jacksmith/keep/internal/cli"
	"github.com/spf13/cobra"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <record>",
		Short: "Show the fields of a record",
		Long: `Load a record and print its fields.

If the file does not exist yet it is created with default values first.

Examples:
  keep show profile
  keep show pr --key alt`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.open(args[0])
			if err != nil {
				return err
			}
			if err := r.store.Load(); err != nil {
				return err
			}
			path, err := r.path()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n\n", r.kind, cli.Gray(fmt.Sprintf("(%s, %s)", r.format, path)))
			cli.RenderFields(out, r.fields())
			return nil
		},
	}
}

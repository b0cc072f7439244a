package main

import (
	"errors"
	"fmt"

	"github.com/jacksmith/keep/internal/cli"
	"github.com/spf13/cobra"
)

func newEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <record>",
		Short: "Edit a record in $EDITOR",
		Long: `Open a record as YAML in $EDITOR and save the result.

The edited document must decode into the record; unknown fields are rejected.
Nothing is written if the document is left unchanged.`,
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

			out := cmd.OutOrStdout()
			if err := r.edit(); err != nil {
				if errors.Is(err, cli.ErrUnchanged) {
					fmt.Fprintln(out, "no changes")
					return nil
				}
				return err
			}
			if err := r.store.Save(); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s\n", cli.Green("saved"), r.kind)
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/jacksmith/keep/internal/cli"
	"github.com/spf13/cobra"
)

func newResetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset <record>",
		Short: "Replace a record with default values",
		Long: `Delete a record's file and create it again with default values.

This also recovers a record whose file is corrupt.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.open(args[0])
			if err != nil {
				return err
			}
			if err := r.remove(); err != nil {
				return err
			}
			if err := r.store.Load(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cli.Green("reset"), r.kind)
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/jacksmith/keep/internal/cli"
	"github.com/spf13/cobra"
)

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <record> <field> <value>",
		Short: "Set one field of a record",
		Long: `Load a record, change one field and save it.

Field names are case-insensitive and may be abbreviated to any unique prefix.
A file that fails to load is left untouched.

Examples:
  keep set profile level 5
  keep set prefs vol 0.5
  keep set prefs difficulty hard`,
		Args: cobra.ExactArgs(3),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return recordKinds, cobra.ShellCompDirectiveNoFileComp
			}
			if len(args) == 1 {
				if r, err := a.open(args[0]); err == nil {
					return r.fieldNames(), cobra.ShellCompDirectiveNoFileComp
				}
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.open(args[0])
			if err != nil {
				return err
			}
			if err := r.store.Load(); err != nil {
				return err
			}

			field, err := cli.MatchName("field", args[1], r.fieldNames())
			if err != nil {
				return err
			}
			if err := r.setField(field, args[2]); err != nil {
				return err
			}
			if err := r.store.Save(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s.%s = %s\n", cli.Green("saved"), r.kind, field, args[2])
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path <record>",
		Short: "Print the file path of a record",
		Long: `Print the file path a record is stored at.

The path is <dir>/<key>. Without --key the record name is used as the key.
With --strict, an empty --key is an error.

Examples:
  keep path profile
  keep path prefs --key settings.bin`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.open(args[0])
			if err != nil {
				return err
			}
			path, err := r.path()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

package main

import (
	"errors"
	"fmt"

	"github.com/jacksmith/keep/internal/cli"
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init [record...]",
		Short: "Create default files for records",
		Long: `Load records, creating a file with default values for each record
that does not have one yet. Existing files are left as they are.

With no arguments every record is initialized. --key may only be used
with a single record. Every record is attempted even if one fails; all
failures are reported.`,
		ValidArgsFunction: completeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := a.openAll(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var errs []error
			for _, r := range recs {
				path, _ := r.path()
				existed := r.store.Exists()
				if err := r.store.Load(); err != nil {
					fmt.Fprintf(out, "%s %s\n", cli.Red("failed "), path)
					errs = append(errs, fmt.Errorf("%s: %w", r.kind, err))
					continue
				}
				if existed {
					fmt.Fprintf(out, "%s %s\n", cli.Gray("exists "), path)
				} else {
					fmt.Fprintf(out, "%s %s\n", cli.Green("created"), path)
				}
			}
			return errors.Join(errs...)
		},
	}
}

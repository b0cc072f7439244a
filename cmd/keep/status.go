package main

import (
	"errors"
	"fmt"

	"github.com/jacksmith/keep/internal/cli"
	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status [record...]",
		Short: "Show whether records exist and load cleanly",
		Long: `Show one line per record: its name, state, format and path.

States:
  ok       the file exists and decodes
  missing  no file exists yet (status never creates one)
  error    the file exists but cannot be read or decoded

With no arguments every record is shown.`,
		ValidArgsFunction: completeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := a.openAll(args)
			if err != nil {
				return err
			}

			table := cli.NewTable()
			var errs []error
			for _, r := range recs {
				path, err := r.path()
				if err != nil {
					table.AddRow(r.kind, cli.Red("error"), r.format.String(), err.Error())
					errs = append(errs, err)
					continue
				}

				state := cli.Yellow("missing")
				if r.store.Exists() {
					state = cli.Green("ok")
					if err := r.store.Load(); err != nil {
						state = cli.Red("error")
						errs = append(errs, fmt.Errorf("%s: %w", r.kind, err))
					}
				}
				table.AddRow(r.kind, state, r.format.String(), path)
			}
			table.Render(cmd.OutOrStdout())

			return errors.Join(errs...)
		},
	}
}

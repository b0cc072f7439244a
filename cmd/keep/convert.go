package main

import (
	"fmt"

	"github.com/jacksmith/keep/internal/cli"
	"github.com/jacksmith/keep/internal/codec"
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <record> --to text|binary",
		Short: "Rewrite a record in another format",
		Long: `Load a record in the current format and write it in another one.

The file is read with the format selected by --binary or .keepconfig.yaml
and rewritten in place in the target format. Later commands must select
the new format to read it.

Examples:
  keep convert profile --to binary
  keep --binary convert profile --to text`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := codec.ParseFormat(to)
			if err != nil {
				return &cli.ValidationError{Field: "format", Message: err.Error()}
			}

			r, err := a.open(args[0])
			if err != nil {
				return err
			}
			if target == r.format {
				return &cli.ValidationError{Field: "format", Message: fmt.Sprintf("%s is already stored as %s", r.kind, target)}
			}
			if err := r.store.Load(); err != nil {
				return err
			}
			if err := r.convert(target); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s -> %s\n", cli.Green("converted"), r.kind, r.format, target)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "target format: text or binary")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

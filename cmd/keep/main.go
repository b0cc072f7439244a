// Package main is the entry point for the keep CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/keep/internal/cli"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// appName names the per-user data directory.
const appName = "keep"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "keep",
		Short: "keep - local persistence for single-record data files",
		Long: `keep manages small local data files that each hold one record.

A record is loaded from its file, or created with default values when the
file does not exist yet. Records can be inspected, changed and written back
as indented YAML (the default) or as compact binary CBOR.

Records: profile, prefs.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
		// Show help when no subcommand is provided
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("keep version {{.Version}}\n")

	f := rootCmd.PersistentFlags()
	f.StringVar(&a.opts.dir, "dir", "", "data directory (default: user config dir/keep)")
	f.StringVar(&a.opts.key, "key", "", "storage key (file name) for the record; defaults to the record name")
	f.BoolVar(&a.opts.binary, "binary", false, "read and write binary (CBOR) files")
	f.BoolVar(&a.opts.strict, "strict", false, "reject an empty --key instead of falling back to the record name")
	f.BoolVar(&a.opts.lock, "lock", false, "hold an advisory lock file during reads and writes")
	f.BoolVar(&a.opts.noValidate, "no-validate", false, "skip record validation")
	f.BoolVarP(&a.opts.verbose, "verbose", "v", false, "log store activity at debug level")

	rootCmd.AddCommand(
		newPathCmd(a),
		newInitCmd(a),
		newStatusCmd(a),
		newShowCmd(a),
		newSetCmd(a),
		newEditCmd(a),
		newResetCmd(a),
		newConvertCmd(a),
	)
	return rootCmd
}

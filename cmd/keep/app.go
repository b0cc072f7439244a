package main

import (
	"github.com/jacksmith/keep/internal/logging"
	"github.com/jacksmith/keep/internal/storage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options holds the global flags.
type options struct {
	dir        string
	key        string
	keySet     bool
	binary     bool
	strict     bool
	lock       bool
	noValidate bool
	verbose    bool
}

// app carries state shared by all commands for one invocation.
type app struct {
	opts     options
	dir      string
	settings *storage.Settings
	logger   *zap.Logger
}

// setup resolves the data directory, loads .keepconfig.yaml, applies flag
// overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	a.opts.keySet = cmd.Flags().Changed("key")

	a.dir = a.opts.dir
	if a.dir == "" {
		dir, err := storage.DefaultDir(appName)
		if err != nil {
			return err
		}
		a.dir = dir
	}

	settings, err := storage.LoadSettings(a.dir)
	if err != nil {
		return err
	}
	if a.opts.binary {
		settings.BinaryFormat = true
	}
	if a.opts.strict {
		settings.StrictKeys = true
	}
	if a.opts.lock {
		settings.Lock = true
	}
	if a.opts.noValidate {
		settings.Validate = false
	}
	if a.opts.verbose {
		settings.Logging = true
		settings.LogLevel = "debug"
	}
	a.settings = settings

	if !settings.Logging {
		a.logger = zap.NewNop()
		return nil
	}
	logger, err := logging.New(settings.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

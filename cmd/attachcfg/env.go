package main

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dshills/attachcfg/internal/config"
	"github.com/dshills/attachcfg/internal/logging"
	"github.com/dshills/attachcfg/internal/platform"
)

// runEnv is the per-invocation state shared by every command.
type runEnv struct {
	cfg      *config.Config
	log      *slog.Logger
	platform platform.Info
	runID    string
}

// flagOverrides maps flags onto the setting paths they override.
var flagOverrides = map[string]string{
	"log-level": "logging.level",
	"os":        "platform.os",
	"output":    "output.format",
}

func loadEnv(cmd *cobra.Command) (*runEnv, error) {
	settings, _ := cmd.Flags().GetString("settings")
	if settings == "" {
		settings = config.DefaultSettingsFile()
	}

	opts := []config.Option{config.WithSettingsFile(settings)}
	for flag, path := range flagOverrides {
		f := cmd.Flags().Lookup(flag)
		if f != nil && f.Changed {
			opts = append(opts, config.WithOverride(path, f.Value.String()))
		}
	}

	cfg := config.New(opts...)
	if err := cfg.Load(cmd.Context()); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lc := cfg.Logging()
	level, err := logging.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}

	p, err := platform.Parse(cfg.Platform().OS)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := logging.New(cmd.ErrOrStderr(),
		logging.WithLevel(level),
		logging.WithJSON(lc.Format == config.LogFormatJSON),
		logging.WithSource(lc.Source),
		logging.WithAttrs(slog.String("run", runID)),
	)
	log.Debug("settings loaded", "file", settings, "os", p.String(), "command", cmd.Name())

	return &runEnv{cfg: cfg, log: log, platform: p, runID: runID}, nil
}

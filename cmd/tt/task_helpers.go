package main

import (
	"os"
	"time"

	"github.com/amonks/tt/internal/config"
	"github.com/amonks/tt/internal/logging"
	"github.com/amonks/tt/internal/paths"
	"github.com/amonks/tt/internal/taskenv"
	"github.com/amonks/tt/task"
	"github.com/charmbracelet/log"
)

// session bundles what every task command needs.
type session struct {
	store  *task.Store
	config *config.Config
	logger *log.Logger
}

type openOptions struct {
	// skipCleanup leaves deletable tasks in place even when auto-cleanup is on.
	skipCleanup bool

	// readOnly never writes the task file. It only takes effect when
	// auto-cleanup is off, since the sweep has to save what it removes.
	readOnly bool
}

// openTaskStore loads configuration, opens the task file and runs the
// automatic cleanup sweep.
func openTaskStore(opts openOptions) (*session, error) {
	workDir, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(workDir)
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if rootLogLevel != "" {
		level = rootLogLevel
	}
	logger := logging.NewFromConfig(os.Stderr, level, cfg.Log.Format)

	storePath, err := resolveStorePath(cfg)
	if err != nil {
		return nil, err
	}

	now, err := taskenv.Now()
	if err != nil {
		return nil, err
	}
	clock := func() time.Time { return now }

	sweep := cfg.Store.AutoCleanup && !opts.skipCleanup
	store, err := task.Open(storePath, task.OpenOptions{
		Now:      clock,
		Logger:   logger,
		ReadOnly: opts.readOnly && !sweep,
	})
	if err != nil {
		return nil, err
	}

	if sweep {
		if _, err := store.Cleanup(); err != nil {
			return nil, err
		}
	}

	return &session{store: store, config: cfg, logger: logger}, nil
}

// resolveStorePath picks the task file from --store, TT_STORE, the config
// file, or the default state directory, in that order.
func resolveStorePath(cfg *config.Config) (string, error) {
	override := rootStorePath
	if override == "" {
		override = taskenv.StorePath()
	}
	if override == "" {
		override = cfg.Store.Path
	}
	return paths.ResolveWithDefault(override, paths.DefaultStorePath)
}

func (s *session) timeFormat() string {
	if s.config.Display.TimeFormat == "" {
		return config.DefaultTimeFormat
	}
	return s.config.Display.TimeFormat
}

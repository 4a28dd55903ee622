package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/picseed/internal/apiclient"
	"github.com/dmitrijs2005/picseed/internal/cache"
	"github.com/dmitrijs2005/picseed/internal/config"
	"github.com/dmitrijs2005/picseed/internal/logging"
	"github.com/dmitrijs2005/picseed/internal/repositories/users"
	"github.com/dmitrijs2005/picseed/internal/seeder"
	"github.com/dmitrijs2005/picseed/internal/shellx"
	"github.com/dmitrijs2005/picseed/internal/ui"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// newRunner is a test seam for the docker-backed datastore and cache.
var newRunner = func() shellx.Runner { return shellx.ExecRunner{} }

// App carries what one command invocation needs: resolved config, logger,
// console reporter, and whatever connections it opened.
type App struct {
	cfg      *config.Config
	logger   logging.Logger
	reporter *ui.ConsoleReporter
	closers  []func() error
}

// newApp resolves configuration (defaults, JSON, env, flags) and builds the
// logger and reporter for cmd.
func newApp(cmd *cobra.Command, opts *globalOptions) (*App, error) {
	cfg, err := config.Load(opts.configPath, opts.envFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.API.BaseURL = opts.apiURL
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if err := applyCommandFlags(cmd, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Backend:    cfg.Log.Backend,
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:      cfg,
		logger:   logger.With("run_id", uuid.NewString(), "command", cmd.Name()),
		reporter: ui.NewConsoleReporter(cmd.OutOrStdout(), opts.noColor || color.NoColor),
	}
	if s, ok := logger.(interface{ Sync() error }); ok {
		a.closers = append(a.closers, s.Sync)
	}
	return a, nil
}

// applyCommandFlags copies command-local overrides into cfg.
func applyCommandFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Lookup("delay") != nil && flags.Changed("delay") {
		d, err := flags.GetDuration("delay")
		if err != nil {
			return err
		}
		cfg.API.Delay = d
	}
	if flags.Lookup("timeout") != nil && flags.Changed("timeout") {
		d, err := flags.GetDuration("timeout")
		if err != nil {
			return err
		}
		cfg.API.Timeout = d
	}
	return nil
}

// Close releases connections in reverse order of acquisition.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// usersRepository builds the deletion backend selected by datastore.mode.
func (a *App) usersRepository(ctx context.Context) (users.Repository, error) {
	ds := a.cfg.Datastore
	switch ds.Mode {
	case config.ModePostgres:
		db, err := users.OpenPostgres(ctx, ds.DSN)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		return users.NewPostgresRepository(db), nil
	case config.ModeDocker:
		return users.NewDockerRepository(newRunner(), ds.Container, ds.User, ds.Database), nil
	default:
		return nil, fmt.Errorf("unknown datastore mode %q", ds.Mode)
	}
}

// cacheFlusher builds the flush backend selected by cache.mode.
func (a *App) cacheFlusher() (cache.Flusher, error) {
	c := a.cfg.Cache
	switch c.Mode {
	case config.ModeRedis:
		rc := cache.NewRedisCache(c.Addr, c.Password, c.DB)
		a.closers = append(a.closers, rc.Close)
		return rc, nil
	case config.ModeDocker:
		return cache.NewDockerCache(newRunner(), c.Container), nil
	default:
		return nil, fmt.Errorf("unknown cache mode %q", c.Mode)
	}
}

// service wires a seeder.Service. The cache is only built when withCache is
// set and the datastore only when withDatastore is set.
func (a *App) service(ctx context.Context, withCache, withDatastore bool) (*seeder.Service, error) {
	api := apiclient.New(a.cfg.API.BaseURL, a.cfg.API.Timeout)

	var (
		repo    users.Repository
		flusher cache.Flusher
		err     error
	)
	if withCache {
		if flusher, err = a.cacheFlusher(); err != nil {
			return nil, err
		}
	}
	if withDatastore {
		if repo, err = a.usersRepository(ctx); err != nil {
			// An unreachable datastore fails each deletion in turn rather
			// than the whole command.
			a.logger.Error(ctx, "datastore unavailable", "mode", a.cfg.Datastore.Mode, "err", err)
			repo = users.Unavailable(err)
		}
	}

	a.logger.Debug(ctx, "service ready", "api", api.BaseURL(), "delay", a.cfg.API.Delay.String())
	return seeder.NewService(api, repo, flusher, a.reporter, a.logger, a.cfg.API.Delay), nil
}

package cli

import (
	"github.com/dmitrijs2005/picseed/internal/seeder"
	"github.com/spf13/cobra"
)

func addPacingFlags(c *cobra.Command) {
	c.Flags().Duration("delay", seeder.DefaultDelay, "pause between API requests")
	c.Flags().Duration("timeout", 0, "per-request API timeout (default from config)")
}

// runSeeder is the body shared by provision, login and reset.
func runSeeder(cmd *cobra.Command, opts *globalOptions, stages seeder.Options, run func(a *App, svc *seeder.Service)) error {
	a, err := newApp(cmd, opts)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	ctx := cmd.Context()
	svc, err := a.service(ctx, stages.Reset || stages.FlushCache, stages.Reset)
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "run started", "api", a.cfg.API.BaseURL, "users", len(a.cfg.Users))
	run(a, svc)
	a.logger.Info(ctx, "run finished")
	return nil
}

func newProvisionCmd(opts *globalOptions) *cobra.Command {
	var reset, flushCache, skipLogin bool

	c := &cobra.Command{
		Use:   "provision",
		Short: "Create the seed accounts through the API and check they can log in",
		Long: `Creates every seed account with POST /users. An account that already exists
counts as provisioned, so the command can be rerun safely. With --reset the
rate-limit cache is flushed and the accounts' rows are deleted first, so every
account is created fresh. --flush-cache clears only the rate limits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stages := seeder.Options{Reset: reset, FlushCache: flushCache, VerifyLogins: !skipLogin}
			return runSeeder(cmd, opts, stages, func(a *App, svc *seeder.Service) {
				svc.Run(cmd.Context(), a.cfg.Users, stages)
			})
		},
	}

	c.Flags().BoolVar(&reset, "reset", false, "flush the cache and delete the seed rows before provisioning")
	c.Flags().BoolVar(&flushCache, "flush-cache", false, "flush the rate-limit cache before provisioning (implied by --reset)")
	c.Flags().BoolVar(&skipLogin, "skip-login", false, "do not check logins after provisioning")
	addPacingFlags(c)
	return c
}

func newLoginCmd(opts *globalOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "login",
		Short: "Check that every seed account can log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeeder(cmd, opts, seeder.Options{}, func(a *App, svc *seeder.Service) {
				sum := svc.VerifyLogins(cmd.Context(), a.cfg.Users)
				a.reporter.Summary("Login check complete", sum)
			})
		},
	}
	addPacingFlags(c)
	return c
}

func newResetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Flush the rate-limit cache and delete the seed accounts' rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeeder(cmd, opts, seeder.Options{Reset: true}, func(a *App, svc *seeder.Service) {
				sum := svc.Reset(cmd.Context(), a.cfg.Users)
				a.reporter.Summary("Reset complete", sum)
			})
		},
	}
}

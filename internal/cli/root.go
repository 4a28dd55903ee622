package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	envFile    string
	apiURL     string
	logLevel   string
	noColor    bool
}

func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "picseed",
		Short:         "Seed demo accounts into a PicShare deployment and inspect password hashes",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, CommitSHA, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "path to JSON config file")
	pf.StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load (ignored when missing)")
	pf.StringVarP(&opts.apiURL, "api-url", "a", "", "PicShare API base URL")
	pf.StringVar(&opts.logLevel, "log-level", "", "diagnostic log level: debug, info, warn, error")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	root.AddCommand(newProvisionCmd(opts))
	root.AddCommand(newLoginCmd(opts))
	root.AddCommand(newResetCmd(opts))
	root.AddCommand(newHashCmd(opts))

	return root
}

// Execute runs the command tree and exits non-zero on a setup error.
func Execute(ctx context.Context) {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/dmitrijs2005/picseed/internal/common"
	"github.com/dmitrijs2005/picseed/internal/cryptox"
	"github.com/dmitrijs2005/picseed/internal/ui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newHashCmd(opts *globalOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "hash",
		Short: "Generate, verify and search argon2id password hashes",
	}
	c.AddCommand(newHashGenerateCmd(opts))
	c.AddCommand(newHashVerifyCmd(opts))
	c.AddCommand(newHashSearchCmd(opts))
	return c
}

// reporterFor builds a console reporter without loading any config; the
// hash commands are offline.
func reporterFor(cmd *cobra.Command, opts *globalOptions) *ui.ConsoleReporter {
	return ui.NewConsoleReporter(cmd.OutOrStdout(), opts.noColor || color.NoColor)
}

// passwordArg returns the --password value, or prompts for one.
func passwordArg(cmd *cobra.Command, password string) ([]byte, error) {
	if cmd.Flags().Changed("password") {
		return []byte(password), nil
	}
	return promptPassword(cmd)
}

func newHashGenerateCmd(opts *globalOptions) *cobra.Command {
	var (
		password string
		salt     string
		p        = cryptox.DefaultParams()
	)

	c := &cobra.Command{
		Use:   "generate",
		Short: "Print the encoded argon2id hash of a password",
		Long: `Hashes a password with argon2id and prints the self-describing encoded
form, followed by the result of verifying the password against it. With
--salt the given string is used verbatim as the salt and the output is
reproducible; otherwise a random salt of --salt-len bytes is drawn.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passwordArg(cmd, password)
			if err != nil {
				return err
			}
			defer common.WipeByteArray(pw)

			var encoded string
			if salt != "" {
				encoded, err = cryptox.HashWithSalt(string(pw), []byte(salt), p)
			} else {
				encoded, err = cryptox.Hash(string(pw), p)
			}
			if err != nil {
				return err
			}

			ok, err := cryptox.Verify(encoded, string(pw))
			if err != nil {
				return err
			}

			r := reporterFor(cmd, opts)
			r.Line(encoded)
			r.Line(fmt.Sprintf("Verification: %t", ok))
			return nil
		},
	}

	f := c.Flags()
	f.StringVar(&password, "password", "", "password to hash (prompted for when omitted)")
	f.StringVar(&salt, "salt", "", "fixed salt, used verbatim (random when omitted)")
	f.Uint32VarP(&p.Time, "time", "t", p.Time, "time cost (iterations)")
	f.Uint32VarP(&p.Memory, "memory", "m", p.Memory, "memory cost in KiB")
	f.Uint8VarP(&p.Threads, "parallelism", "p", p.Threads, "degree of parallelism")
	f.Uint32Var(&p.KeyLen, "key-len", p.KeyLen, "digest length in bytes")
	f.Uint32Var(&p.SaltLen, "salt-len", p.SaltLen, "random salt length in bytes")
	return c
}

func newHashVerifyCmd(opts *globalOptions) *cobra.Command {
	var encoded, password string

	c := &cobra.Command{
		Use:   "verify",
		Short: "Check a password against an encoded argon2id hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passwordArg(cmd, password)
			if err != nil {
				return err
			}
			defer common.WipeByteArray(pw)

			// A hash that cannot be decoded is a non-match, not a command error.
			ok, err := cryptox.Verify(encoded, string(pw))
			r := reporterFor(cmd, opts)
			switch {
			case err != nil:
				r.Failure(fmt.Sprintf("'%s' - Error", pw), err.Error())
			case ok:
				r.Success("Password matches the hash")
			default:
				r.Failure("Hash mismatch", "")
			}
			return nil
		},
	}

	c.Flags().StringVar(&encoded, "hash", cryptox.DefaultTargetHash, "encoded argon2id hash")
	c.Flags().StringVar(&password, "password", "", "candidate password (prompted for when omitted)")
	return c
}

func newHashSearchCmd(opts *globalOptions) *cobra.Command {
	var encoded, wordlist string

	c := &cobra.Command{
		Use:   "search",
		Short: "Try a list of candidate passwords against an encoded hash",
		Long: `Verifies candidates one at a time, in order, and stops at the first match.
Candidates come from --wordlist (one per line, blank lines skipped) or a
built-in list of common passwords.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates := slices.Values(cryptox.DefaultDictionary())
			if wordlist != "" {
				f, err := os.Open(wordlist)
				if err != nil {
					return err
				}
				defer f.Close()
				candidates = cryptox.Lines(f)
			}

			r := reporterFor(cmd, opts)
			r.Section("Testing passwords")

			tried := 0
			match, found := cryptox.Search(encoded, candidates, func(at cryptox.Attempt) {
				tried++
				switch {
				case at.Matched:
					r.Success(fmt.Sprintf("PASSWORD FOUND: '%s'", at.Candidate))
				case at.Err != nil:
					r.Failure(fmt.Sprintf("'%s' - Error", at.Candidate), at.Err.Error())
				default:
					r.Info(fmt.Sprintf("'%s' - Hash mismatch", at.Candidate))
				}
			})

			if found {
				r.Line(fmt.Sprintf("\nThe password is: %s (after %d attempts)", match, tried))
			} else {
				r.Warn(fmt.Sprintf("None of the %d candidates matched", tried))
			}
			return nil
		},
	}

	c.Flags().StringVar(&encoded, "hash", cryptox.DefaultTargetHash, "encoded argon2id hash")
	c.Flags().StringVarP(&wordlist, "wordlist", "w", "", "file with one candidate per line")
	return c
}

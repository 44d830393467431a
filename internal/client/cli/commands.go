package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

func (c *Cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "socialnet",
		Short:         "Socialnet command-line client",
		Long:          `A command-line client for the Socialnet API: registration, login, session management and token refresh.`,
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(c.io)
	root.SetErr(c.io)
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&c.opts.server, "server", defaultServer, "Server URL")
	flags.StringVar(&c.opts.dbPath, "db", defaultDBPath, "Path to local database")
	flags.DurationVar(&c.opts.timeout, "timeout", defaultTimeoutFlag, "HTTP request timeout")
	flags.BoolVarP(&c.opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&c.opts.passwords.FromFile, "password-file", "", "Path to file containing password")
	flags.StringVar(&c.opts.passwords.FromArgs, "password", "", "Password (not recommended, use "+PasswordEnv+" or --password-file)")

	root.AddCommand(
		c.registerCommand(),
		c.loginCommand(),
		c.logoutCommand(),
		c.statusCommand(),
		c.meCommand(),
		c.logoutAllCommand(),
		c.burstCommand(),
	)

	return root
}

// run открывает хранилище и выполняет fn в контексте команды
func (c *Cli) run(fn func(ctx context.Context, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := c.open(ctx); err != nil {
			return err
		}
		return fn(ctx, args)
	}
}

func (c *Cli) registerCommand() *cobra.Command {
	var email, username, realName string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new user",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, _ []string) error {
			return c.runRegister(ctx, email, username, realName)
		}),
	}
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&username, "username", "", "Display name (letters, digits, dots and underscores)")
	cmd.Flags().StringVar(&realName, "real-name", "", "Real name")
	return cmd
}

func (c *Cli) loginCommand() *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the session",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, _ []string) error {
			return c.runLogin(ctx, email)
		}),
	}
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	return cmd
}

func (c *Cli) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and delete the local session",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, _ []string) error {
			return c.runLogout(ctx)
		}),
	}
}

func (c *Cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, _ []string) error {
			return c.runStatus(ctx)
		}),
	}
}

func (c *Cli) meCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the current user as seen by the server",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, _ []string) error {
			return c.runMe(ctx)
		}),
	}
}

func (c *Cli) logoutAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout-all",
		Short: "Log out on all devices",
		Args:  cobra.NoArgs,
		RunE: c.run(func(ctx context.Context, _ []string) error {
			return c.runLogoutAll(ctx)
		}),
	}
}

func (c *Cli) burstCommand() *cobra.Command {
	var parallel int

	cmd := &cobra.Command{
		Use:   "burst N",
		Short: "Send N concurrent 'me' requests",
		Long: `Send N concurrent authenticated requests. If the access token has expired,
all requests wait for a single token refresh and are then replayed.`,
		Args: cobra.ExactArgs(1),
		RunE: c.run(func(ctx context.Context, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return errInvalidCount(args[0])
			}
			return c.runBurst(ctx, n, parallel)
		}),
	}
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 0, "Maximum requests in flight (0 - all at once)")
	return cmd
}

// Package cli implements posctl, the back-office command line for the store database.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"pos/internal/app"
	"pos/internal/config"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	EnvFile string

	open func(ctx context.Context, opts *RootOptions, stderr io.Writer) (*app.App, error)
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for posctl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(openApp)
}

func newRootCommand(open func(context.Context, *RootOptions, io.Writer) (*app.App, error)) *cobra.Command {
	opts := &RootOptions{open: open}

	cmd := &cobra.Command{
		Use:   "posctl",
		Short: "Back-office tools for the point of sale",
		Long:  "posctl reads and maintains the point of sale database: reports, exports, backups and stock adjustments.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", "configs/.env", "environment file to load")

	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewBackupCommand(opts))
	cmd.AddCommand(NewRestoreCommand(opts))
	cmd.AddCommand(NewStockCommand(opts))
	cmd.AddCommand(NewRolesCommand(opts))

	return cmd
}

// openApp builds the application from the environment, logging to stderr.
func openApp(ctx context.Context, opts *RootOptions, stderr io.Writer) (*app.App, error) {
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load configuration", err)
	}
	level := slog.LevelWarn
	if opts.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open store", err)
	}
	return a, nil
}

// withApp opens the store for the duration of fn.
func withApp(cmd *cobra.Command, opts *RootOptions, fn func(a *app.App, out *OutputFormatter) error) error {
	a, err := opts.open(cmd.Context(), opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a, &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	})
}

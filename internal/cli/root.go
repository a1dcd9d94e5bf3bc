// Package cli wires the obratools pipelines to a cobra command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/obratools/internal/apperr"
	"github.com/JonMunkholm/obratools/internal/config"
	"github.com/JonMunkholm/obratools/internal/logging"
)

var Version = "0.1.0"

// app holds state shared by the commands of one invocation.
type app struct {
	cfg *config.Config
	out io.Writer

	root      string
	logLevel  string
	logFormat string
}

// newRootCmd builds the command tree. Report lines go to out.
func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	cmd := &cobra.Command{
		Use:           "obratools",
		Version:       Version,
		Short:         "Maintenance tools for the obras dashboard",
		Long:          "obratools rewrites Tailwind class names in UI sources and generates SQL from the obras workbook",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVar(&a.root, "root", "", "project root (overrides WORKSPACE_ROOT)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json (overrides LOG_FORMAT)")

	cmd.AddCommand(newFixDuplicatesCmd(a))
	cmd.AddCommand(newUpdateThemeCmd(a))
	cmd.AddCommand(newImportObrasCmd(a))
	return cmd
}

// setup loads configuration, applies persistent flag overrides and
// configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Workspace.Root = a.root
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String())

	a.cfg = cfg
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Debug("loaded .env file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error: "+describe(err))
		stop()
		os.Exit(1)
	}
}

// describe renders err for the console.
func describe(err error) string {
	ue := apperr.NewUserError(err)
	if ue == nil {
		return ""
	}
	return ue.Describe()
}

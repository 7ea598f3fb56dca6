package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"cyberdeck/internal/bootstrap"
	launcherdto "cyberdeck/internal/modules/launcher/dto"
	statusdto "cyberdeck/internal/modules/status/dto"
	"cyberdeck/internal/platform/config"
	"cyberdeck/internal/platform/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "cyberdeck",
		Short:         "Terminal home screen with a status strip and an app command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/cyberdeck/config.yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug|info|warn|error")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newStatusCmd(opts))
	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newAppsCmd(opts))
	return root
}

// loadApp builds the application. The TUI owns the terminal, so unless a
// log file is configured it runs with a no-op logger.
func loadApp(ctx context.Context, opts *rootOptions, tui bool) (*bootstrap.App, *logging.Logger, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	logger := logging.NewNop()
	if !tui || cfg.Log.File != "" {
		logger, err = logging.New(cfg.LoggingConfig())
		if err != nil {
			return nil, nil, fmt.Errorf("init logger: %w", err)
		}
	}
	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}
	return app, logger, nil
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the home screen",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, logger, err := loadApp(cmd.Context(), opts, true)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return bootstrap.RunTUI(cmd.Context(), app)
		},
	}
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var asJSON, watch bool

	status := &cobra.Command{
		Use:   "status",
		Short: "Print the status strip",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app, logger, err := loadApp(ctx, opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			w := cmd.OutOrStdout()

			if watch {
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()
				ticker := app.NewStatusTicker(func(out statusdto.StatusOutput) {
					if asJSON {
						if snap, err := app.StatusCLI.Snapshot(ctx); err == nil {
							_ = json.NewEncoder(w).Encode(snap)
						}
						return
					}
					printLines(w, out)
					_, _ = fmt.Fprintln(w)
				})
				if err := ticker.Run(ctx); err != nil && ctx.Err() == nil {
					return err
				}
				return nil
			}

			if asJSON {
				snap, err := app.StatusCLI.Snapshot(ctx)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(snap)
			}
			out, err := app.StatusCLI.Tick(ctx)
			if err != nil {
				return err
			}
			printLines(w, out)
			return nil
		},
	}
	status.Flags().BoolVar(&asJSON, "json", false, "print a JSON snapshot instead of rendered lines (one object per line with --watch)")
	status.Flags().BoolVar(&watch, "watch", false, "re-sample every second until interrupted")
	return status
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <line...>",
		Short: "Submit one command line to the launcher",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, logger, err := loadApp(cmd.Context(), opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			out, err := app.LauncherCLI.Run(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			printFeedback(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newAppsCmd(opts *rootOptions) *cobra.Command {
	var pinned bool

	apps := &cobra.Command{
		Use:   "apps",
		Short: "List known applications as name<TAB>id",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, logger, err := loadApp(cmd.Context(), opts, false)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			reg, err := app.LauncherCLI.Apps(cmd.Context())
			if err != nil {
				return err
			}
			entries := reg.All
			if pinned {
				entries = reg.Pinned
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no applications")
				return nil
			}
			for _, entry := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", entry.Name, entry.ID)
			}
			return nil
		},
	}
	apps.Flags().BoolVar(&pinned, "pinned", false, "show only the resolved pinned applications")
	return apps
}

func printLines(w io.Writer, out statusdto.StatusOutput) {
	for _, line := range out.Lines() {
		_, _ = fmt.Fprintln(w, line)
	}
}

func printFeedback(w io.Writer, out launcherdto.SubmitOutput) {
	if !out.Dispatched || out.Message == "" {
		return
	}
	_, _ = fmt.Fprintln(w, out.Message)
}

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-clinic-sync/internal/adapter"
	"github.com/MKhiriev/go-clinic-sync/internal/config"
	"github.com/MKhiriev/go-clinic-sync/internal/tui"
	"github.com/MKhiriev/go-clinic-sync/models"
)

type (
	daemonFactory func(cfg config.CtlConfig) (adapter.SyncDaemon, error)
	confirmFunc   func(ctx context.Context, in io.Reader, out io.Writer, prompt string) (bool, error)
)

type App struct {
	cfg   config.CtlConfig
	build models.AppBuildInfo

	newDaemon daemonFactory
	confirm   confirmFunc
	daemon    adapter.SyncDaemon

	in  io.Reader
	out io.Writer
}

var _ Client = (*App)(nil)

func NewApp(cfg config.CtlConfig, build models.AppBuildInfo) *App {
	return &App{
		cfg:   cfg,
		build: build,
		newDaemon: func(cfg config.CtlConfig) (adapter.SyncDaemon, error) {
			return adapter.NewSyncDaemon(cfg.DaemonURL, cfg.Timeout, cfg.Token)
		},
		confirm: tui.Confirm,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// Run executes one syncctl invocation.
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "syncctl",
		Short:         "Inspect and operate the clinic sync daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			daemon, err := a.newDaemon(a.cfg)
			if err != nil {
				return err
			}
			a.daemon = daemon
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.DaemonURL, "daemon-url", a.cfg.DaemonURL, "base URL of the syncd API")
	flags.StringVar(&a.cfg.Token, "token", a.cfg.Token, "bearer token the actions are attributed to")
	flags.DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "timeout of one request to syncd")
	flags.BoolVarP(&a.cfg.AssumeYes, "yes", "y", a.cfg.AssumeYes, "do not ask for confirmation")

	root.AddCommand(
		a.statusCommand(),
		a.pendingCommand(),
		a.drainCommand(),
		a.discardCommand(),
		a.versionCommand(),
	)
	return root
}

// confirmed asks the operator unless --yes was given.
func (a *App) confirmed(cmd *cobra.Command, prompt string) (bool, error) {
	if a.cfg.AssumeYes {
		return true, nil
	}
	ok, err := a.confirm(cmd.Context(), a.in, cmd.OutOrStdout(), prompt)
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return ok, nil
}

func printOut(cmd *cobra.Command, s string) {
	fmt.Fprint(cmd.OutOrStdout(), s)
}

func wrapDaemonError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", errDaemonRequest, err)
}

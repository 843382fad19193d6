package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-clinic-sync/internal/tui"
	"github.com/MKhiriev/go-clinic-sync/models"
)

func (a *App) statusCommand() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the connection mode, pending changes and the last drain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				summary models.StatusSummary
				err     error
			)
			if refresh {
				summary, err = a.daemon.Refresh(cmd.Context())
			} else {
				summary, err = a.daemon.Status(cmd.Context())
			}
			if err != nil {
				return wrapDaemonError(err)
			}

			printOut(cmd, tui.RenderStatus(summary))
			return nil
		},
	}
	cmd.Flags().BoolVar(&refresh, "refresh", false, "probe both backends before answering")
	return cmd
}

func (a *App) pendingCommand() *cobra.Command {
	var (
		limit   int
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "pending",
		Short: "List ledger entries waiting for replay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if summary {
				status, err := a.daemon.PendingSummary(cmd.Context())
				if err != nil {
					return wrapDaemonError(err)
				}
				printOut(cmd, tui.RenderPendingSummary(status))
				return nil
			}

			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}
			details, err := a.daemon.Pending(cmd.Context(), limit)
			if err != nil {
				return wrapDaemonError(err)
			}
			printOut(cmd, tui.RenderPending(details))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum number of entries, 0 for all")
	cmd.Flags().BoolVar(&summary, "summary", false, "show counts per table only")
	return cmd
}

func (a *App) drainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "drain",
		Short: "Replay pending changes to the cloud now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ok, err := a.confirmed(cmd, "Replay every pending change to the cloud now?")
			if err != nil {
				return err
			}
			if !ok {
				return errAborted
			}

			result, err := a.daemon.Drain(cmd.Context())
			if err != nil {
				return wrapDaemonError(err)
			}
			printOut(cmd, tui.RenderSyncResult(result))
			return nil
		},
	}
}

func (a *App) discardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "discard <entry-id>",
		Short: "Drop a pending change without replaying it",
		Long: `Drop a pending change without replaying it.

The local record keeps its current state; the cloud will not see this write
unless the record is changed again.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entryID := args[0]

			ok, err := a.confirmed(cmd, fmt.Sprintf("Discard pending change %s? It will never reach the cloud.", entryID))
			if err != nil {
				return err
			}
			if !ok {
				return errAborted
			}

			if err = a.daemon.Discard(cmd.Context(), entryID); err != nil {
				return wrapDaemonError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "discarded %s\n", entryID)
			return nil
		},
	}
}

func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show syncctl and syncd build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var daemon *models.AppBuildInfo
			if info, err := a.daemon.Version(cmd.Context()); err == nil {
				daemon = &info
			}
			printOut(cmd, tui.RenderBuildInfo(a.build, daemon))
			return nil
		},
	}
}

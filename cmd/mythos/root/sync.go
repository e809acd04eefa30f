package root

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaiyzerCal/mythos-nexus/internal/ui"
)

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Mirror state to and from the remote endpoint",
		Long:  "Push or pull the whole-state document against the configured remote mirror. Without MYTHOS_REMOTE_URL every call is skipped; local state stays authoritative.",
	}
	cmd.AddCommand(newSyncPushCmd(), newSyncPullCmd())
	return cmd
}

func newSyncPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Upload the local snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client, err := openRemote()
			if err != nil {
				return err
			}
			if !client.Configured() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconWarn, ui.Muted.Render("No remote configured (set MYTHOS_REMOTE_URL); nothing pushed."))
				return nil
			}

			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			payload, err := json.Marshal(store.Snapshot())
			if err != nil {
				return err
			}
			if err := client.SaveSnapshot(ctx, payload); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconDone, ui.Good.Render("Snapshot pushed."))
			return nil
		},
	}
}

func newSyncPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Fetch the mirrored snapshot and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client, err := openRemote()
			if err != nil {
				return err
			}

			res, err := client.LoadSnapshot(ctx)
			if err != nil {
				return err
			}
			if res.Skipped {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconWarn, ui.Muted.Render("No remote configured (set MYTHOS_REMOTE_URL); nothing pulled."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(res.Body))
			return nil
		},
	}
}

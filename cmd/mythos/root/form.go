package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaiyzerCal/mythos-nexus/internal/ui"
)

func newFormCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Manage transformation forms",
	}
	cmd.AddCommand(newFormListCmd(), newFormSetCmd())
	return cmd
}

func newFormListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available forms",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := store.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconForm, "Forms"))
			for _, f := range snap.Transformations {
				marker := "  "
				if f.ID == snap.Character.ActiveFormID {
					marker = ui.Gold.Render("▸ ")
				}
				fmt.Fprintf(out, "%s%s %s %s\n", marker, ui.Key.Render(f.Name), ui.Muted.Render("("+f.RangeText+")"), ui.Muted.Render(f.ID))
			}
			return nil
		},
	}
}

func newFormSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id>",
		Short: "Activate a form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !store.SetCurrentForm(args[0]) {
				return errors.New("unknown form")
			}
			bpm := store.Snapshot().Character.CurrentBPM
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.IconForm, ui.Good.Render("Form active."), ui.Muted.Render(fmt.Sprintf("bpm %d", bpm)))
			return nil
		},
	}
}

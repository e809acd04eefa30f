package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaiyzerCal/mythos-nexus/internal/engine"
	"github.com/KaiyzerCal/mythos-nexus/internal/ui"
)

func newVaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Journal entries and reflections",
	}
	cmd.AddCommand(newVaultAddCmd(), newVaultListCmd(), newVaultRmCmd())
	return cmd
}

func newVaultAddCmd() *cobra.Command {
	var body, category, mood string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a vault entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			e, err := store.AddVaultEntry(engine.VaultInput{
				Title:    args[0],
				Body:     body,
				Category: category,
				Mood:     mood,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.IconVault, ui.Good.Render("Recorded:"), e.Title)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+e.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&body, "body", "", "Entry body")
	cmd.Flags().StringVar(&category, "category", "journal", "Category")
	cmd.Flags().StringVar(&mood, "mood", "", "Mood tag")
	return cmd
}

func newVaultListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List vault entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconVault, "Vault"))
			for _, e := range store.Snapshot().Vault {
				line := fmt.Sprintf("- %s %s", ui.Key.Render(e.Title), ui.Muted.Render(e.CreatedAt.Format("2006-01-02")))
				if e.Mood != "" {
					line += " " + ui.Muted.Render("["+e.Mood+"]")
				}
				fmt.Fprintln(out, line)
				fmt.Fprintln(out, ui.Muted.Render("  "+e.ID))
			}
			return nil
		},
	}
}

func newVaultRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a vault entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			store.DeleteVaultEntry(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Entry removed."))
			return nil
		},
	}
}

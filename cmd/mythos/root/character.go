package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KaiyzerCal/mythos-nexus/internal/engine"
	"github.com/KaiyzerCal/mythos-nexus/internal/ui"
)

func newCharacterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "character",
		Aliases: []string{"char"},
		Short:   "Edit the character sheet directly",
	}
	cmd.AddCommand(newCharRenameCmd(), newCharGaugeCmd(), newCharCurrencyCmd(), newCharEnergyCmd(), newCharRitualCmd())
	return cmd
}

func newCharRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <name>",
		Short: "Rename the character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			store.SetCharacterName(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Renamed."))
			return nil
		},
	}
}

func newCharGaugeCmd() *cobra.Command {
	var fatigue, sync, integrity int

	cmd := &cobra.Command{
		Use:   "gauge",
		Short: "Set the fatigue/sync/integrity gauges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			patch := engine.GaugePatch{}
			if cmd.Flags().Changed("fatigue") {
				patch.Fatigue = &fatigue
			}
			if cmd.Flags().Changed("sync") {
				patch.SyncRate = &sync
			}
			if cmd.Flags().Changed("integrity") {
				patch.Integrity = &integrity
			}
			store.UpdateGauges(patch)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Gauges updated."))
			return nil
		},
	}

	cmd.Flags().IntVar(&fatigue, "fatigue", 0, "Fatigue gauge")
	cmd.Flags().IntVar(&sync, "sync", 0, "Sync rate gauge")
	cmd.Flags().IntVar(&integrity, "integrity", 0, "Integrity gauge")
	return cmd
}

func newCharCurrencyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "currency <name> <delta>",
		Short: "Credit or debit a currency",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid delta: %q", args[1])
			}

			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			store.AdjustCurrency(args[0], delta)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconCoin, ui.Good.Render("Balance adjusted."))
			return nil
		},
	}
}

func newCharEnergyCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "energy <name> <current>",
		Short: "Set an energy system's gauge",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid current value: %q", args[1])
			}

			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			store.UpdateEnergySystem(args[0], current, status)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconBolt, ui.Good.Render("Energy updated."))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Status label (stable|charging|strained|…)")
	return cmd
}

func newCharRitualCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ritual <id>",
		Short: "Toggle a ritual on or off",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			store.ToggleRitual(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Ritual toggled."))
			return nil
		},
	}
}

package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KaiyzerCal/mythos-nexus/internal/engine"
	"github.com/KaiyzerCal/mythos-nexus/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quest",
		Short: "Manage quests",
	}
	cmd.AddCommand(newQuestAddCmd(), newQuestListCmd(), newQuestDoneCmd(), newQuestProgressCmd(), newQuestRmCmd())
	return cmd
}

func newQuestAddCmd() *cobra.Command {
	var desc, qtype string
	var xp, codex, target int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.QuestInput{
				Title:       args[0],
				Description: desc,
				Type:        qtype,
				XPReward:    xp,
			}
			if codex > 0 {
				in.Rewards.Currencies = map[string]int{engine.CurrencyCodexPoints: codex}
			}
			if target > 0 {
				in.Progress = &engine.QuestProgress{Target: target}
			}

			q, err := store.CreateQuest(in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.IconQuest, ui.Good.Render("Quest added:"), q.Title)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+q.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&qtype, "type", "side", "Quest type (main|side|milestone)")
	cmd.Flags().IntVar(&xp, "xp", 50, "Experience reward")
	cmd.Flags().IntVar(&codex, "codex", 0, "Codex Points reward")
	cmd.Flags().IntVar(&target, "target", 0, "Progress target (enables progress tracking)")
	return cmd
}

func newQuestListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Quests"))
			for _, q := range store.Snapshot().Quests {
				if !all && q.Status == engine.QuestCompleted {
					continue
				}
				line := fmt.Sprintf("- [%s] %s %s", ui.StatusText(string(q.Status)), q.Title, ui.Muted.Render(q.ID))
				if q.Progress != nil {
					line += ui.Muted.Render(fmt.Sprintf(" (%d/%d)", q.Progress.Current, q.Progress.Target))
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed quests")
	return cmd
}

func newQuestDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res := store.CompleteQuest(args[0])
			if res == nil {
				return errors.New("quest not found or already completed")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconDone, ui.Good.Render("Quest completed."))
			if res.Rewards.XPScheduled > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("+%d XP incoming", res.Rewards.XPScheduled)))
			}
			for name, amount := range res.Rewards.Currencies {
				fmt.Fprintf(cmd.OutOrStdout(), "%s +%d %s\n", ui.IconCoin, amount, name)
			}
			return nil
		},
	}
}

func newQuestProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <current>",
		Short: "Update quest progress",
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

			store.UpdateQuestProgress(args[0], current, nil)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Progress updated."))
			return nil
		},
	}
}

func newQuestRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			store.DeleteQuest(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Quest removed."))
			return nil
		},
	}
}

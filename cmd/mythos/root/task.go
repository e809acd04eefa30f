package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaiyzerCal/mythos-nexus/internal/engine"
	"github.com/KaiyzerCal/mythos-nexus/internal/ui"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"habit"},
		Short:   "Manage tasks and habits",
	}
	cmd.AddCommand(newTaskAddCmd(), newTaskListCmd(), newTaskDoneCmd(), newTaskArchiveCmd(), newTaskRmCmd())
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var desc, recurrence, skillID, subSkillID string
	var habit bool
	var xp, skillXP int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task or habit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := engine.Recurrence(recurrence)
			if !rec.IsValid() {
				return fmt.Errorf("invalid recurrence %q (once|daily|weekly|monthly)", recurrence)
			}

			kind := engine.TaskKindTask
			if habit || rec != engine.RecurrenceOnce {
				kind = engine.TaskKindHabit
			}

			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := store.CreateTask(engine.TaskInput{
				Title:         args[0],
				Description:   desc,
				Type:          kind,
				Recurrence:    rec,
				XPReward:      xp,
				SkillID:       skillID,
				SubSkillID:    subSkillID,
				SkillXPReward: skillXP,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.KindIcon(t.Type, t.Recurrence), ui.Good.Render("Added:"), t.Title)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+t.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().StringVar(&recurrence, "every", "once", "Recurrence (once|daily|weekly|monthly)")
	cmd.Flags().BoolVar(&habit, "habit", false, "Treat as a habit even when one-shot")
	cmd.Flags().IntVar(&xp, "xp", 10, "Experience per completion")
	cmd.Flags().StringVar(&skillID, "skill", "", "Skill trained by this task")
	cmd.Flags().StringVar(&subSkillID, "sub", "", "Sub-skill trained by this task")
	cmd.Flags().IntVar(&skillXP, "skill-xp", 0, "Skill proficiency per completion")
	return cmd
}

func newTaskListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks and habits",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconLoop, "Tasks"))
			for _, t := range store.Snapshot().Tasks {
				if !all && t.Status != engine.TaskActive {
					continue
				}
				line := fmt.Sprintf("- %s [%s] %s %s", ui.KindIcon(t.Type, t.Recurrence), ui.StatusText(string(t.Status)), t.Title, ui.Muted.Render(t.ID))
				if t.Streak > 1 {
					line += " " + ui.Gold.Render(fmt.Sprintf("streak %d", t.Streak))
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed and archived tasks")
	return cmd
}

func newTaskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Record a completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res := store.CompleteTask(args[0])
			if res == nil {
				return errors.New("task not found or not active")
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", ui.IconDone, ui.Good.Render("Done."))
			if res.Streak > 1 {
				fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("🔥 Streak: %d", res.Streak)))
			}
			if res.XPScheduled > 0 {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("+%d XP incoming", res.XPScheduled)))
			}
			if res.SkillXP > 0 {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("+%d skill proficiency", res.SkillXP)))
			}
			return nil
		},
	}
}

func newTaskArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive or unarchive a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			store.ToggleTaskArchived(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconArchive, ui.Muted.Render("Toggled."))
			return nil
		},
	}
}

func newTaskRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			store.DeleteTask(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Task removed."))
			return nil
		},
	}
}

package root

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KaiyzerCal/mythos-nexus/internal/engine"
	"github.com/KaiyzerCal/mythos-nexus/internal/ui"
)

func newSkillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: "Inspect and unlock skills",
	}
	cmd.AddCommand(newSkillListCmd(), newSkillUnlockCmd(), newSkillAddCmd())
	return cmd
}

func newSkillListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the skill tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := store.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSkill, "Skills"))

			skills := append([]engine.Skill(nil), snap.Skills...)
			sort.SliceStable(skills, func(i, j int) bool { return skills[i].Tier < skills[j].Tier })

			for _, sk := range skills {
				lock := ui.Muted.Render(fmt.Sprintf("🔒 %d %s", sk.Cost, engine.CurrencyCodexPoints))
				if sk.Unlocked {
					lock = ui.Good.Render("unlocked")
				}
				fmt.Fprintf(out, "- T%d %s %s %s\n", sk.Tier, ui.Key.Render(sk.Name), lock, ui.Muted.Render(sk.ID))
				if xp := snap.Proficiency[engine.ProficiencyKey(sk.ID, "")]; xp > 0 {
					fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("    proficiency %d", xp)))
				}
				for _, sub := range snap.SubSkills[sk.ID] {
					line := fmt.Sprintf("    · %s %s", sub.Name, ui.Muted.Render(sub.ID))
					if xp := snap.Proficiency[engine.ProficiencyKey(sk.ID, sub.ID)]; xp > 0 {
						line += ui.Muted.Render(fmt.Sprintf(" (%d)", xp))
					}
					fmt.Fprintln(out, line)
				}
			}
			return nil
		},
	}
}

func newSkillUnlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock <id>",
		Short: "Spend Codex Points to unlock a skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if !store.UnlockSkill(args[0]) {
				return errors.New("cannot unlock: unknown skill, already unlocked, or not enough Codex Points")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconSkill, ui.Good.Render("Skill unlocked."))
			return nil
		},
	}
}

func newSkillAddCmd() *cobra.Command {
	var desc, category, energy string
	var tier, cost int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom skill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			sk, err := store.AddSkill(engine.SkillInput{
				Name:        args[0],
				Description: desc,
				Tier:        tier,
				Category:    category,
				EnergyType:  energy,
				Cost:        cost,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.IconSkill, ui.Good.Render("Skill added:"), sk.Name)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+sk.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "Description")
	cmd.Flags().IntVar(&tier, "tier", 1, "Tier (1-7)")
	cmd.Flags().StringVar(&category, "category", "", "Category")
	cmd.Flags().StringVar(&energy, "energy", "", "Energy type")
	cmd.Flags().IntVar(&cost, "cost", 0, "Unlock cost in Codex Points")
	return cmd
}

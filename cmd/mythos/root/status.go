package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaiyzerCal/mythos-nexus/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the character sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := store.Snapshot()
			c := snap.Character
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, c.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d (%s)", c.Level, ui.RankText(c.Rank))))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d / %d", c.XP, c.XPToNextLevel)))
			fmt.Fprintln(out, ui.LabelValue("Gauges", fmt.Sprintf("fatigue %d · sync %d · integrity %d · bpm %d", c.Fatigue, c.SyncRate, c.Integrity, c.CurrentBPM)))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Attributes"))
			a := c.Attributes
			fmt.Fprintf(out, "- 💪 STR %d  🏃 AGI %d  ❤️ VIT %d\n", a.Strength, a.Agility, a.Vitality)
			fmt.Fprintf(out, "- 🧠 INT %d  👁 PER %d  🔥 WIL %d  🎭 CHA %d\n", a.Intelligence, a.Perception, a.Willpower, a.Charisma)
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconCoin+" Currencies"))
			for _, cur := range snap.Currencies {
				fmt.Fprintf(out, "- %s %d\n", ui.Key.Render(cur.Name+":"), cur.Amount)
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconBolt+" Energy"))
			for _, e := range snap.EnergySystems {
				fmt.Fprintf(out, "- %s %d/%d %s\n", ui.Key.Render(e.Name+":"), e.Current, e.Max, ui.Muted.Render("("+e.Status+")"))
			}

			if c.ActiveFormID != "" {
				for _, f := range snap.Transformations {
					if f.ID == c.ActiveFormID {
						fmt.Fprintln(out, "")
						fmt.Fprintln(out, ui.LabelValue(ui.IconForm+" Form", fmt.Sprintf("%s %s", f.Name, ui.Muted.Render("("+f.RangeText+")"))))
					}
				}
			}

			return nil
		},
	}
	return cmd
}

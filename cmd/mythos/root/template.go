package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaiyzerCal/mythos-nexus/internal/ui"
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Built-in quest and habit templates",
	}
	cmd.AddCommand(newTemplateListCmd(), newTemplateAcceptCmd())
	return cmd
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List unlocked templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Templates"))
			tpls := store.AvailableTemplates()
			if len(tpls) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing available right now. Level up or finish what is in play."))
				return nil
			}
			for _, tpl := range tpls {
				fmt.Fprintf(out, "- %s %s %s\n", ui.Key.Render(tpl.Code), tpl.Title, ui.Muted.Render(fmt.Sprintf("(%s, +%d XP)", tpl.Kind, tpl.XPReward)))
			}
			return nil
		},
	}
}

func newTemplateAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <code>",
		Short: "Instantiate a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := store.AcceptTemplate(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconDone, ui.Good.Render("Accepted."))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("id: "+id))
			return nil
		},
	}
}

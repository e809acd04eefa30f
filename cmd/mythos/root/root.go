package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaiyzerCal/mythos-nexus/internal/ui"
)

const Version = "2.0.0"

var rootCmd = &cobra.Command{
	Use:           "mythos",
	Short:         "Mythos Nexus — local-first RPG character sheet for real life",
	Long:          "Mythos Nexus turns habits, tasks and milestones into an RPG character sheet that levels up, unlocks skills and earns rewards.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newCharacterCmd(),
		newQuestCmd(),
		newTaskCmd(),
		newSkillCmd(),
		newFormCmd(),
		newVaultCmd(),
		newTemplateCmd(),
		newSyncCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

package root

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaiyzerCal/mythos-nexus/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(store, os.Stdout)
		},
	}
}

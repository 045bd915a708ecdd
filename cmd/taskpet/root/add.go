package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskpet/internal/game"
	"taskpet/internal/ui"
)

func newAddCmd() *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			g, db, err := openGame(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			t, err := g.AddTask(cmd.Context(), args[0], game.ParsePriority(priority))
			if err != nil {
				return err
			}
			fmt.Printf("%s added %q (%s, +%d xp)\n", ui.Good.Render(ui.IconTask), t.Text, t.Priority, t.XP)
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low|medium|high)")
	return cmd
}

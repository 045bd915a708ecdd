package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taskpet/internal/game"
	"taskpet/internal/ui"
)

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <n|id>",
		Short: "Complete a task (by list position or id)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, db, err := openGame(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			id := resolveTaskID(g, args[0])
			if id == "" {
				fmt.Println(ui.Muted.Render("No such task (already done?)"))
				return nil
			}

			res, err := g.CompleteTask(cmd.Context(), id)
			if err != nil {
				if errors.Is(err, game.ErrPetSleeping) {
					// The rejection notice already went through the sinks.
					return nil
				}
				return err
			}
			if res == nil {
				fmt.Println(ui.Muted.Render("No such task (already done?)"))
				return nil
			}

			fmt.Printf("%s %q done · +%d xp · streak %d\n",
				ui.Good.Render(ui.IconDone), res.Task.Text, res.Award.Amount, res.Streak)
			return nil
		},
	}
}

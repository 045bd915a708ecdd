package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskpet/internal/ui"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List open tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, db, err := openGame(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			tasks := g.Tasks()
			if len(tasks) == 0 {
				fmt.Println(ui.Muted.Render("No open tasks. Add one with: taskpet add \"...\""))
				return nil
			}
			for i, t := range tasks {
				fmt.Printf("%2d. [%s] %s %s\n", i+1, t.Priority, t.Text,
					ui.Muted.Render(fmt.Sprintf("+%d xp", t.XP)))
			}
			return nil
		},
	}
}

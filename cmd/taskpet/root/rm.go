package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskpet/internal/ui"
)

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <n|id>",
		Short: "Delete a task without reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, db, err := openGame(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			id := resolveTaskID(g, args[0])
			removed := false
			if id != "" {
				removed, err = g.DeleteTask(cmd.Context(), id)
				if err != nil {
					return err
				}
			}
			if removed {
				fmt.Println(ui.Good.Render(ui.IconTrash + " removed"))
			} else {
				fmt.Println(ui.Muted.Render("Nothing to remove"))
			}
			return nil
		},
	}
}

package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskpet/internal/ui"
)

func newFeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Feed your pet",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, db, err := openGame(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			if err := g.Feed(cmd.Context()); err != nil {
				return err
			}
			fmt.Printf("%s hunger %.0f · energy %.0f\n",
				ui.Good.Render("🍖"), g.State().PetHunger, g.State().PetEnergy)
			return nil
		},
	}
}

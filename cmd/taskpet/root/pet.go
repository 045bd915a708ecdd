package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskpet/internal/ui"
)

func newPetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pet",
		Short: "Pet your pet",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, db, err := openGame(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			ok, err := g.Pet(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println(ui.Muted.Render("Your pet needs a moment between pets."))
				return nil
			}
			fmt.Printf("%s happiness %.0f · energy %.0f\n",
				ui.Good.Render(ui.IconHeart), g.State().PetHappiness, g.State().PetEnergy)
			return nil
		},
	}
}

package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskpet/internal/ui"
)

func newSoundCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "sound <on|off>",
		Short:     "Toggle sound effects",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			g, db, err := openGame(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			enabled := args[0] == "on"
			if err := g.SetSound(cmd.Context(), enabled); err != nil {
				return err
			}
			if enabled {
				fmt.Println(ui.Good.Render("🔊 sound on"))
			} else {
				fmt.Println(ui.Muted.Render("🔇 sound off"))
			}
			return nil
		},
	}
}

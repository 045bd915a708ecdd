package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskpet/internal/game"
	"taskpet/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show pet and progression status",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, db, err := openGame(cmd.Context())
			if err != nil {
				return err
			}
			defer db.Close()

			s := g.State()
			stage := game.StageByNumber(s.PetStage)

			fmt.Println(ui.Title.Render(fmt.Sprintf("%s %s — Level %d", stage.Icon, stage.Name, s.Level)))
			if s.PetHibernating {
				fmt.Println(ui.Warn.Render(ui.IconSleep + " Hibernating — complete no tasks until it wakes"))
			} else {
				fmt.Println(stage.Icon + " " + game.MoodText(s))
			}

			bar := func(label string, v float64, inverted bool) {
				fmt.Printf("%-10s %s %3.0f%%\n", label, ui.BarStyle(v, inverted).Render(ui.StatBar(v)), v)
			}
			bar("Happiness", s.PetHappiness, false)
			bar("Energy", s.PetEnergy, false)
			bar("Hunger", s.PetHunger, true)

			fmt.Printf("XP         %d/%d (total %d)\n", s.XP, game.XPRequiredForLevel(s.Level), s.TotalXP)
			fmt.Printf("Streak     %d · Completed %d · Open %d\n", s.Streak, s.TotalCompleted, len(g.Tasks()))

			fmt.Println(ui.H2.Render("Badges"))
			for _, a := range game.AchievementTable {
				if s.HasAchievement(a.ID) {
					fmt.Printf("  %s %s — %s\n", a.Icon, a.Name, a.Description)
				} else {
					fmt.Println(ui.Muted.Render("  🔒 " + a.Name + " — " + a.Description))
				}
			}
			return nil
		},
	}
}

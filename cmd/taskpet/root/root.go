package root

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"taskpet/internal/audio"
	"taskpet/internal/game"
	"taskpet/internal/ui"
)

const Version = "0.1.0"

var dbPath string

var rootCmd = &cobra.Command{
	Use:           "taskpet",
	Short:         "taskpet — a to-do list with a pet that lives off your productivity",
	Long:          "taskpet is a local-first terminal task tracker. Completing tasks feeds and energizes your pet; neglect it and it hibernates until you coax it awake.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database path (default ~/.taskpet.db)")

	rootCmd.AddCommand(
		newAddCmd(),
		newListCmd(),
		newDoneCmd(),
		newRmCmd(),
		newPetCmd(),
		newFeedCmd(),
		newStatusCmd(),
		newSoundCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconWarn+" "+err.Error()))
		os.Exit(1)
	}
}

func runTUI(cmd *cobra.Command) error {
	// The minute tick logs breadcrumbs; keep them off the alt screen.
	log.SetOutput(io.Discard)

	ctx := cmd.Context()
	db, err := openDB(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	manager := audio.NewManager()
	if err := manager.Initialize(); err != nil {
		// No audio device is fine; the game stays silent.
		manager = nil
	}
	var sinks ui.TUISinks
	if manager != nil {
		sinks.Audio = manager
		defer manager.Cleanup()
	}

	g := game.New(newStore(db), &sinks)
	if err := g.Load(ctx); err != nil {
		return err
	}

	p := tea.NewProgram(ui.NewModel(g, &sinks), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

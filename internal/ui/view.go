package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskpet/internal/game"
)

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Your pet naps while you're away. Bye!\n"
	}

	s := m.Game.State()
	stage := game.StageByNumber(s.PetStage)

	var b strings.Builder
	b.WriteString(Title.Render(stage.Icon+" "+stage.Name+" — Level "+fmt.Sprint(s.Level)) + "\n\n")
	b.WriteString(m.renderPet(s, stage))
	b.WriteString("\n")
	b.WriteString(m.renderStats(s))
	b.WriteString("\n")
	b.WriteString(m.renderTasks())
	b.WriteString("\n")

	if m.Burst.Kind != "" {
		b.WriteString(RenderBurstFrame(m.Burst) + "\n")
	}
	if m.Message.Title != "" && game.TimeNow().Before(m.MessageExpires) {
		line := m.Message.Icon + " " + m.Message.Title
		if m.Message.Body != "" {
			line += " — " + m.Message.Body
		}
		b.WriteString(Gold.Render(line) + "\n")
	}

	if m.Adding {
		b.WriteString(m.renderInput())
	} else {
		b.WriteString(Muted.Render("a add · enter done · d delete · p pet · f feed · m sound · q quit"))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderPet(s *game.GameState, stage game.EvolutionStage) string {
	var mood string
	if s.PetHibernating {
		mood = IconSleep + " Hibernating... pet it gently to help it wake up."
	} else {
		mood = stage.Icon + " " + game.MoodText(s)
	}
	return Panel.Render(mood) + "\n"
}

func (m Model) renderStats(s *game.GameState) string {
	var b strings.Builder
	row := func(label string, value float64, inverted bool) {
		bar := BarStyle(value, inverted).Render(StatBar(value))
		b.WriteString(fmt.Sprintf("%-10s %s %3.0f%%\n", label, bar, value))
	}
	row("Happiness", s.PetHappiness, false)
	row("Energy", s.PetEnergy, false)
	row("Hunger", s.PetHunger, true)

	required := game.XPRequiredForLevel(s.Level)
	b.WriteString(fmt.Sprintf("%-10s %s %d/%d\n", "XP",
		H2.Render(StatBar(float64(s.XP)/float64(required)*100)), s.XP, required))

	streak := Muted.Render("no streak yet")
	if s.Streak > 0 {
		streak = Warn.Render(fmt.Sprintf("🔥 %d-day streak", s.Streak))
	}
	b.WriteString(streak + Muted.Render(fmt.Sprintf("  ·  %d tasks done  ·  %d/%d badges",
		s.TotalCompleted, len(s.Achievements), len(game.AchievementTable))) + "\n")
	return b.String()
}

func (m Model) renderTasks() string {
	tasks := m.Game.Tasks()
	if len(tasks) == 0 {
		return Muted.Render("No tasks. Press 'a' to add one.") + "\n"
	}

	var b strings.Builder
	for i, t := range tasks {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.Cursor {
			cursor = "> "
			style = SelectedRow
		}
		b.WriteString(style.Render(cursor+priorityBadge(t.Priority)+" "+t.Text) +
			Muted.Render(fmt.Sprintf("  +%d xp", t.XP)) + "\n")
	}
	return b.String()
}

func (m Model) renderInput() string {
	return H2.Render("New task: ") + m.Input + "▌" +
		Muted.Render("  ["+string(m.Priority)+"]  tab priority · enter save · esc cancel")
}

func priorityBadge(p game.Priority) string {
	switch p {
	case game.PriorityHigh:
		return Bad.Render("!!")
	case game.PriorityLow:
		return Muted.Render(" ·")
	default:
		return Warn.Render(" !")
	}
}

package ui

import (
	"context"
	"errors"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskpet/internal/game"
)

// Model is the interactive TUI. The single bubbletea loop serializes the
// minute decay tick and user actions, so each handler runs its whole
// pipeline before the next message is processed.
type Model struct {
	Game  *game.Game
	Sinks *TUISinks

	Cursor   int
	Adding   bool
	Input    string
	Priority game.Priority
	Quitting bool

	Message        Notification
	MessageExpires time.Time

	Burst      Burst
	burstQueue []Burst

	ctx context.Context
}

type tickMsg time.Time

type burstTickMsg struct {
	started time.Time
}

// NewModel wraps an already-loaded game.
func NewModel(g *game.Game, sinks *TUISinks) Model {
	return Model{
		Game:     g,
		Sinks:    sinks,
		Priority: game.PriorityMedium,
		ctx:      context.Background(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tick()
}

// The decay engine debounces sub-minute calls, so a fixed 60s period is
// exactly one tick per wakeup.
func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func burstTick(start time.Time) tea.Cmd {
	return tea.Tick(BurstFrameDuration, func(t time.Time) tea.Msg {
		return burstTickMsg{started: start}
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Adding {
			return m.updateAdding(msg)
		}
		return m.updateBrowsing(msg)

	case tickMsg:
		if err := m.Game.Tick(m.ctx); err != nil {
			log.Printf("tick: %v", err)
		}
		cmd := m.collectSinks()
		return m, tea.Batch(tick(), cmd)

	case burstTickMsg:
		// Drop ticks belonging to an older burst.
		if m.Burst.Kind == "" || !m.Burst.StartTime.Equal(msg.started) {
			return m, nil
		}
		m.Burst.Frame++
		if IsBurstComplete(m.Burst) {
			m.Burst = Burst{}
			return m, m.startNextBurst()
		}
		return m, burstTick(m.Burst.StartTime)
	}

	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.Quitting = true
		return m, tea.Quit
	case "a":
		m.Adding = true
		m.Input = ""
		m.Priority = game.PriorityMedium
		return m, nil
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Game.Tasks())-1 {
			m.Cursor++
		}
	case "enter", " ":
		return m.completeSelected()
	case "d", "x":
		return m.deleteSelected()
	case "p":
		if _, err := m.Game.Pet(m.ctx); err != nil {
			log.Printf("pet: %v", err)
		}
		return m, m.collectSinks()
	case "f":
		if err := m.Game.Feed(m.ctx); err != nil {
			log.Printf("feed: %v", err)
		}
		m.setMessage(Notification{Title: "Yum!", Icon: "🍖"})
		return m, m.collectSinks()
	case "m":
		enabled := !m.Game.State().SoundEnabled
		if err := m.Game.SetSound(m.ctx, enabled); err != nil {
			log.Printf("sound: %v", err)
		}
		if enabled {
			m.setMessage(Notification{Title: "Sound on", Icon: "🔊"})
		} else {
			m.setMessage(Notification{Title: "Sound off", Icon: "🔇"})
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.Adding = false
		return m, nil
	case tea.KeyEnter:
		m.Adding = false
		if _, err := m.Game.AddTask(m.ctx, m.Input, m.Priority); err != nil {
			if errors.Is(err, game.ErrEmptyTaskText) {
				m.setMessage(Notification{Title: "Task text can't be empty", Icon: IconWarn})
			} else {
				log.Printf("add task: %v", err)
			}
		}
		return m, nil
	case tea.KeyTab:
		m.Priority = nextPriority(m.Priority)
		return m, nil
	case tea.KeyBackspace:
		if len(m.Input) > 0 {
			runes := []rune(m.Input)
			m.Input = string(runes[:len(runes)-1])
		}
		return m, nil
	case tea.KeySpace:
		m.Input += " "
		return m, nil
	case tea.KeyRunes:
		m.Input += string(msg.Runes)
		return m, nil
	}
	return m, nil
}

func (m Model) completeSelected() (tea.Model, tea.Cmd) {
	tasks := m.Game.Tasks()
	if len(tasks) == 0 || m.Cursor >= len(tasks) {
		return m, nil
	}
	if _, err := m.Game.CompleteTask(m.ctx, tasks[m.Cursor].ID); err != nil && !errors.Is(err, game.ErrPetSleeping) {
		log.Printf("complete task: %v", err)
	}
	if m.Cursor >= len(m.Game.Tasks()) && m.Cursor > 0 {
		m.Cursor--
	}
	return m, m.collectSinks()
}

func (m Model) deleteSelected() (tea.Model, tea.Cmd) {
	tasks := m.Game.Tasks()
	if len(tasks) == 0 || m.Cursor >= len(tasks) {
		return m, nil
	}
	if _, err := m.Game.DeleteTask(m.ctx, tasks[m.Cursor].ID); err != nil {
		log.Printf("delete task: %v", err)
	}
	if m.Cursor >= len(m.Game.Tasks()) && m.Cursor > 0 {
		m.Cursor--
	}
	return m, nil
}

// collectSinks moves buffered notifications and bursts from the sinks
// into the model, starting the burst animation when one is queued.
func (m *Model) collectSinks() tea.Cmd {
	for _, n := range m.Sinks.DrainNotifications() {
		m.setMessage(n)
	}
	m.burstQueue = append(m.burstQueue, m.Sinks.DrainBursts()...)
	if m.Burst.Kind == "" {
		return m.startNextBurst()
	}
	return nil
}

func (m *Model) startNextBurst() tea.Cmd {
	if len(m.burstQueue) == 0 {
		return nil
	}
	m.Burst = m.burstQueue[0]
	m.burstQueue = m.burstQueue[1:]
	return burstTick(m.Burst.StartTime)
}

func (m *Model) setMessage(n Notification) {
	m.Message = n
	m.MessageExpires = game.TimeNow().Add(5 * time.Second)
}

func nextPriority(p game.Priority) game.Priority {
	switch p {
	case game.PriorityLow:
		return game.PriorityMedium
	case game.PriorityMedium:
		return game.PriorityHigh
	default:
		return game.PriorityLow
	}
}

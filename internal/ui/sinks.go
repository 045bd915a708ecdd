package ui

import (
	"fmt"
	"io"
	"time"

	"taskpet/internal/audio"
	"taskpet/internal/game"
)

// Notification is one pending celebration/notice for the TUI to display.
type Notification struct {
	Title string
	Body  string
	Icon  string
}

// TUISinks buffers sink calls made during a game transition so the model
// can pick them up when the handler returns. The bubbletea loop runs one
// message at a time, so no locking is needed.
type TUISinks struct {
	Audio *audio.Manager

	pendingNotes  []Notification
	pendingBursts []Burst
}

func (s *TUISinks) Render(*game.GameState, []game.Task) {
	// The model reads game state directly on every View.
}

func (s *TUISinks) Notify(title, body, icon string) {
	s.pendingNotes = append(s.pendingNotes, Notification{Title: title, Body: body, Icon: icon})
}

func (s *TUISinks) PlaySound(kind game.SoundKind) {
	if s.Audio != nil {
		s.Audio.Play(kind)
	}
}

func (s *TUISinks) SpawnParticles(kind game.ParticleKind, count int) {
	s.pendingBursts = append(s.pendingBursts, Burst{Kind: kind, Count: count, StartTime: game.TimeNow()})
}

// DrainNotifications returns and clears the buffered notifications.
func (s *TUISinks) DrainNotifications() []Notification {
	n := s.pendingNotes
	s.pendingNotes = nil
	return n
}

// DrainBursts returns and clears the buffered particle bursts.
func (s *TUISinks) DrainBursts() []Burst {
	b := s.pendingBursts
	s.pendingBursts = nil
	return b
}

// ConsoleSinks prints celebrations as styled lines for one-shot CLI
// commands. Sound and particles have nowhere to go in a process that
// exits immediately, so they are dropped.
type ConsoleSinks struct {
	Out io.Writer
}

func (c ConsoleSinks) Render(*game.GameState, []game.Task) {}

func (c ConsoleSinks) Notify(title, body, icon string) {
	fmt.Fprintln(c.Out, Gold.Render(icon+" "+title)+" "+body)
}

func (c ConsoleSinks) PlaySound(game.SoundKind) {}

func (c ConsoleSinks) SpawnParticles(kind game.ParticleKind, count int) {
	b := Burst{Kind: kind, Count: count, Frame: 1, StartTime: time.Now()}
	if row := RenderBurstFrame(b); row != "" {
		fmt.Fprintln(c.Out, row)
	}
}

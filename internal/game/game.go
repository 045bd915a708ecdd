package game

import (
	"context"
	"fmt"
	"log"
)

// Store persists the two whole-record JSON documents. The bool result of
// the loads reports whether a record existed; absence means fresh start.
type Store interface {
	LoadGame(ctx context.Context) (*GameState, bool, error)
	SaveGame(ctx context.Context, s *GameState) error
	LoadTasks(ctx context.Context) ([]Task, bool, error)
	SaveTasks(ctx context.Context, tasks []Task) error
}

// Game owns the mutable state for the process lifetime. Every entry point
// runs its full pipeline (mutation, hibernation check, persistence,
// display) to completion before returning, so a decay tick and a user
// action can never interleave partially.
type Game struct {
	state *GameState
	tasks []Task
	store Store
	sinks Sinks
}

func New(store Store, sinks Sinks) *Game {
	if sinks == nil {
		sinks = NopSinks{}
	}
	return &Game{store: store, sinks: sinks}
}

func (g *Game) State() *GameState { return g.state }
func (g *Game) Tasks() []Task     { return g.tasks }

// Load reads both records (or starts fresh), then applies a catch-up
// decay tick for the time the app was closed.
func (g *Game) Load(ctx context.Context) error {
	s, ok, err := g.store.LoadGame(ctx)
	if err != nil {
		return fmt.Errorf("load game: %w", err)
	}
	if !ok {
		log.Printf("no saved game, starting fresh")
		s = NewGameState()
	}
	g.state = s

	tasks, ok, err := g.store.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	if !ok {
		tasks = []Task{}
	}
	g.tasks = tasks

	now := TimeNow()
	if ApplyDecay(g.state, now) {
		g.emitHibernation(UpdateHibernation(g.state, now))
		if err := g.store.SaveGame(ctx, g.state); err != nil {
			return fmt.Errorf("save game: %w", err)
		}
	}
	g.sinks.Render(g.state, g.tasks)
	return nil
}

// Tick is the periodic decay handler, driven by the caller's 60-second
// timer.
func (g *Game) Tick(ctx context.Context) error {
	now := TimeNow()
	if !ApplyDecay(g.state, now) {
		return nil
	}
	g.emitHibernation(UpdateHibernation(g.state, now))
	return g.finish(ctx)
}

// AddTask validates, appends and persists a new task. No pet effects.
func (g *Game) AddTask(ctx context.Context, text string, priority Priority) (Task, error) {
	t, err := NewTask(text, priority)
	if err != nil {
		return Task{}, err
	}
	g.tasks = append(g.tasks, t)
	if err := g.store.SaveTasks(ctx, g.tasks); err != nil {
		return Task{}, fmt.Errorf("save tasks: %w", err)
	}
	g.sinks.Render(g.state, g.tasks)
	return t, nil
}

// CompleteResult describes everything one completion triggered.
type CompleteResult struct {
	Task     Task
	Award    AwardResult
	Streak   int
	Unlocked []Achievement
}

// CompleteTask runs the full completion pipeline. While the pet is
// hibernating, completion is rejected without any state change.
func (g *Game) CompleteTask(ctx context.Context, id string) (*CompleteResult, error) {
	if g.state.PetHibernating {
		g.sinks.Notify("Shhh...", "Your pet is hibernating. Pet it gently to help it wake up.", "💤")
		g.playSound(SoundHibernate)
		return nil, ErrPetSleeping
	}

	idx := g.taskIndex(id)
	if idx < 0 || g.tasks[idx].Completed {
		// Benign no-op: the task is already gone.
		return nil, nil
	}

	now := TimeNow()
	task := g.tasks[idx]
	g.tasks[idx].Completed = true
	g.state.TotalCompleted++

	res := &CompleteResult{Task: task}
	res.Award = AwardXP(g.state, task.XP)
	UpdateStreak(g.state, now)
	res.Streak = g.state.Streak
	res.Unlocked = append(res.Award.Unlocked, CheckAchievements(g.state)...)

	// Completing a task also cares for the pet.
	FeedPet(g.state, now)
	BoostPetEnergy(g.state)
	g.emitHibernation(UpdateHibernation(g.state, now))

	// Completed tasks are removed, not archived. The web original kept
	// them around briefly for a strike-through animation; here removal
	// is immediate.
	g.tasks = append(g.tasks[:idx], g.tasks[idx+1:]...)

	g.playSound(SoundXP)
	if res.Award.LeveledUp {
		g.playSound(SoundLevelUp)
		if res.Award.MegaLevel {
			g.sinks.Notify("MEGA LEVEL UP!", fmt.Sprintf("Level %d reached. Incredible!", res.Award.NewLevel), "🎆")
			g.sinks.SpawnParticles(ParticlesConfetti, 150)
		} else {
			g.sinks.Notify("Level Up!", fmt.Sprintf("You reached level %d.", res.Award.NewLevel), "🎉")
			g.sinks.SpawnParticles(ParticlesConfetti, 50)
		}
	}
	if res.Award.Evolved {
		g.playSound(SoundEvolution)
		g.sinks.Notify("Evolution!", fmt.Sprintf("Your pet evolved into %s %s!", res.Award.NewStage.Name, res.Award.NewStage.Icon), res.Award.NewStage.Icon)
		g.sinks.SpawnParticles(ParticlesConfetti, 100)
	}
	g.announceUnlocks(res.Unlocked)

	if err := g.store.SaveTasks(ctx, g.tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}
	if err := g.finish(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteTask removes a task without reward. Always allowed, even while
// hibernating; unknown ids are idempotent no-ops.
func (g *Game) DeleteTask(ctx context.Context, id string) (bool, error) {
	idx := g.taskIndex(id)
	if idx < 0 {
		return false, nil
	}
	g.tasks = append(g.tasks[:idx], g.tasks[idx+1:]...)
	if err := g.store.SaveTasks(ctx, g.tasks); err != nil {
		return false, fmt.Errorf("save tasks: %w", err)
	}
	g.sinks.Render(g.state, g.tasks)
	return true, nil
}

// Pet applies one petting interaction; reports false while the cooldown
// is still running.
func (g *Game) Pet(ctx context.Context) (bool, error) {
	now := TimeNow()
	if !PetPet(g.state, now) {
		return false, nil
	}
	g.playSound(SoundPet)
	g.sinks.SpawnParticles(ParticlesHearts, 12)
	g.emitHibernation(UpdateHibernation(g.state, now))
	return true, g.finish(ctx)
}

// Feed applies one feeding as a direct user action.
func (g *Game) Feed(ctx context.Context) error {
	now := TimeNow()
	FeedPet(g.state, now)
	g.playSound(SoundPet)
	g.emitHibernation(UpdateHibernation(g.state, now))
	return g.finish(ctx)
}

// SetSound flips the sound toggle and persists it.
func (g *Game) SetSound(ctx context.Context, enabled bool) error {
	g.state.SoundEnabled = enabled
	return g.finish(ctx)
}

func (g *Game) taskIndex(id string) int {
	for i, t := range g.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (g *Game) playSound(kind SoundKind) {
	if !g.state.SoundEnabled {
		return
	}
	g.sinks.PlaySound(kind)
}

func (g *Game) emitHibernation(tr HibernationTransition) {
	switch tr {
	case TransitionFellAsleep:
		log.Printf("pet fell asleep (energy depleted)")
		g.sinks.Notify("Zzz...", "Your pet ran out of energy and fell asleep. Complete no tasks until it wakes!", "💤")
		g.playSound(SoundHibernate)
	case TransitionWokeUp:
		log.Printf("pet woke up")
		g.sinks.Notify("Good Morning!", "Your pet woke up refreshed and ready to help!", "☀️")
		g.sinks.SpawnParticles(ParticlesHearts, 30)
		g.playSound(SoundHibernate)
	}
}

func (g *Game) announceUnlocks(unlocked []Achievement) {
	for _, a := range unlocked {
		g.playSound(SoundAchievement)
		g.sinks.Notify("Achievement Unlocked!", a.Name+" — "+a.Description, a.Icon)
		g.sinks.SpawnParticles(ParticlesConfetti, 80)
	}
}

// finish is the common tail of every mutating handler: persist the game
// record, then push the new state to the display.
func (g *Game) finish(ctx context.Context) error {
	if err := g.store.SaveGame(ctx, g.state); err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	g.sinks.Render(g.state, g.tasks)
	return nil
}

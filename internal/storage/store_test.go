package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"taskpet/internal/game"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "taskpet.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestLoadGameAbsent(t *testing.T) {
	s := newTestStore(t)
	state, ok, err := s.LoadGame(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ok || state != nil {
		t.Errorf("fresh store should report no record, got ok=%v state=%+v", ok, state)
	}
}

func TestGameRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	state := game.NewGameState()
	state.Level = 7
	state.XP = 42
	state.Streak = 3
	state.Achievements = []string{"first_task", "streak_3"}
	state.PetHibernating = true
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	state.HibernationStartTime = &start

	if err := s.SaveGame(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, ok, err := s.LoadGame(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if loaded.Level != 7 || loaded.XP != 42 || loaded.Streak != 3 {
		t.Errorf("progression fields lost: %+v", loaded)
	}
	if len(loaded.Achievements) != 2 {
		t.Errorf("achievements = %v", loaded.Achievements)
	}
	if !loaded.PetHibernating || loaded.HibernationStartTime == nil || !loaded.HibernationStartTime.Equal(start) {
		t.Errorf("hibernation fields lost: %+v", loaded)
	}
}

func TestSaveGameOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	state := game.NewGameState()
	if err := s.SaveGame(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}
	state.Level = 9
	if err := s.SaveGame(ctx, state); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, _, err := s.LoadGame(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Level != 9 {
		t.Errorf("level = %d, want 9 (whole-record overwrite)", loaded.Level)
	}
}

func TestTasksRoundTripPreservesOrder(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	tasks := []game.Task{
		{ID: "3", Text: "third added first", Priority: game.PriorityHigh, XP: 50},
		{ID: "1", Text: "then this", Priority: game.PriorityLow, XP: 10},
		{ID: "2", Text: "and this", Priority: game.PriorityMedium, XP: 25},
	}
	if err := s.SaveTasks(ctx, tasks); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, ok, err := s.LoadTasks(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if len(loaded) != 3 {
		t.Fatalf("len = %d, want 3", len(loaded))
	}
	for i, want := range []string{"3", "1", "2"} {
		if loaded[i].ID != want {
			t.Errorf("order lost at %d: got %q, want %q", i, loaded[i].ID, want)
		}
	}
}

func TestSaveTasksNilBecomesEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.SaveTasks(ctx, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, ok, err := s.LoadTasks(ctx)
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if loaded == nil || len(loaded) != 0 {
		t.Errorf("loaded = %v, want empty list", loaded)
	}
}

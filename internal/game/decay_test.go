package game

import (
	"testing"
	"time"
)

func baseState(t0 time.Time) *GameState {
	return &GameState{
		Level:         1,
		SoundEnabled:  true,
		PetHappiness:  50,
		PetEnergy:     50,
		PetHunger:     20,
		PetStage:      1,
		PetLastFed:    t0,
		PetLastPet:    t0,
		PetLastUpdate: t0,
	}
}

func TestApplyDecayDebounce(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := baseState(t0)

	if ApplyDecay(s, t0.Add(30*time.Second)) {
		t.Fatal("expected no tick under a minute of elapsed time")
	}
	if s.PetHunger != 20 || s.PetEnergy != 50 || s.PetHappiness != 50 {
		t.Errorf("stats changed on debounced call: %+v", s)
	}
	if !s.PetLastUpdate.Equal(t0) {
		t.Error("petLastUpdate must not move on a debounced call")
	}
}

func TestApplyDecayAwakeRates(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := baseState(t0)
	now := t0.Add(time.Hour)

	if !ApplyDecay(s, now) {
		t.Fatal("expected a tick after one hour")
	}
	if s.PetHunger != 40 {
		t.Errorf("hunger = %v, want 40", s.PetHunger)
	}
	if s.PetEnergy != 40 {
		t.Errorf("energy = %v, want 40", s.PetEnergy)
	}
	if s.PetHappiness != 42 {
		t.Errorf("happiness = %v, want 42 (no hunger penalty at 40)", s.PetHappiness)
	}
	if !s.PetLastUpdate.Equal(now) {
		t.Error("petLastUpdate must advance when a tick applies")
	}
}

func TestApplyDecayHungerPenalty(t *testing.T) {
	t.Run("stacks above 70", func(t *testing.T) {
		t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		s := baseState(t0)
		s.PetHunger = 60 // 80 after the tick's gain

		ApplyDecay(s, t0.Add(time.Hour))
		if s.PetHappiness != 50-8-5 {
			t.Errorf("happiness = %v, want 37 with stacking penalty", s.PetHappiness)
		}
	})

	t.Run("exactly 70 is not hungry", func(t *testing.T) {
		t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		s := baseState(t0)
		s.PetHunger = 50 // lands exactly on 70

		ApplyDecay(s, t0.Add(time.Hour))
		if s.PetHappiness != 42 {
			t.Errorf("happiness = %v, want 42 (threshold is strict)", s.PetHappiness)
		}
	})
}

func TestApplyDecayHibernatingRates(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := baseState(t0)
	s.PetHibernating = true
	s.PetHunger = 90 // the awake-only penalty must not apply while asleep

	ApplyDecay(s, t0.Add(time.Hour))
	if s.PetHunger != 100 {
		t.Errorf("hunger = %v, want clamped 100", s.PetHunger)
	}
	if s.PetEnergy != 45 {
		t.Errorf("energy = %v, want 45", s.PetEnergy)
	}
	if s.PetHappiness != 35 {
		t.Errorf("happiness = %v, want 35", s.PetHappiness)
	}
}

func TestApplyDecayLongGapClamps(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := baseState(t0)

	// App unopened for a week: decay is proportional, then saturates.
	ApplyDecay(s, t0.Add(7*24*time.Hour))
	if s.PetHunger != 100 {
		t.Errorf("hunger = %v, want 100", s.PetHunger)
	}
	if s.PetEnergy != 0 {
		t.Errorf("energy = %v, want 0", s.PetEnergy)
	}
	if s.PetHappiness != 0 {
		t.Errorf("happiness = %v, want 0", s.PetHappiness)
	}
}

func TestApplyDecayIdempotent(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := baseState(t0)
	now := t0.Add(2 * time.Hour)

	if !ApplyDecay(s, now) {
		t.Fatal("first call should apply")
	}
	hunger, energy, happiness := s.PetHunger, s.PetEnergy, s.PetHappiness
	if ApplyDecay(s, now) {
		t.Fatal("second call with the same now must be a no-op")
	}
	if s.PetHunger != hunger || s.PetEnergy != energy || s.PetHappiness != happiness {
		t.Errorf("stats changed on repeated call: %+v", s)
	}
}

package game

import (
	"testing"
	"time"
)

func containsMood(pool []string, text string) bool {
	for _, m := range pool {
		if m == text {
			return true
		}
	}
	return false
}

func TestMoodTextPriority(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	origRand := RandFloat64
	RandFloat64 = func() float64 { return 0 }
	defer func() { RandFloat64 = origRand }()

	t.Run("hunger wins over everything", func(t *testing.T) {
		s := baseState(t0)
		s.PetHunger = 90
		s.PetEnergy = 10 // would otherwise be sleepy
		if got := MoodText(s); !containsMood(hungryMoods, got) {
			t.Errorf("mood = %q, want a hungry mood", got)
		}
	})

	t.Run("sleepy before happy", func(t *testing.T) {
		s := baseState(t0)
		s.PetHunger = 10
		s.PetEnergy = 25
		s.PetHappiness = 100
		if got := MoodText(s); got != sleepyMood {
			t.Errorf("mood = %q, want %q", got, sleepyMood)
		}
	})

	t.Run("high average is happy", func(t *testing.T) {
		s := baseState(t0)
		s.PetHunger = 10
		s.PetEnergy = 75
		s.PetHappiness = 75
		if got := MoodText(s); !containsMood(happyMoods, got) {
			t.Errorf("mood = %q, want a happy mood", got)
		}
	})

	t.Run("low average is sad", func(t *testing.T) {
		s := baseState(t0)
		s.PetHunger = 10
		s.PetEnergy = 30
		s.PetHappiness = 25
		if got := MoodText(s); !containsMood(sadMoods, got) {
			t.Errorf("mood = %q, want a sad mood", got)
		}
	})

	t.Run("energetic branch", func(t *testing.T) {
		s := baseState(t0)
		s.PetHunger = 10
		s.PetEnergy = 85
		s.PetHappiness = 50 // average 67.5: neither happy nor sad
		if got := MoodText(s); !containsMood(energeticMoods, got) {
			t.Errorf("mood = %q, want an energetic mood", got)
		}
	})

	t.Run("fallback is the stage mood", func(t *testing.T) {
		s := baseState(t0)
		s.PetHunger = 50
		s.PetEnergy = 50
		s.PetHappiness = 50
		want := StageByNumber(s.PetStage).MoodText
		if got := MoodText(s); got != want {
			t.Errorf("mood = %q, want stage default %q", got, want)
		}
	})
}

func TestPickMoodStaysInPool(t *testing.T) {
	origRand := RandFloat64
	defer func() { RandFloat64 = origRand }()

	// RandFloat64 returning exactly 1.0 must not index out of range.
	RandFloat64 = func() float64 { return 1.0 }
	if got := pickMood(happyMoods); !containsMood(happyMoods, got) {
		t.Errorf("pickMood escaped its pool: %q", got)
	}
}

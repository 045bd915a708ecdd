package game

import (
	"testing"
	"time"
)

func TestUpdateStreak(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 9, 0, 0, 0, time.UTC)
	}

	t.Run("first completion starts at one", func(t *testing.T) {
		s := baseState(day(1))
		UpdateStreak(s, day(1))
		if s.Streak != 1 {
			t.Errorf("streak = %d, want 1", s.Streak)
		}
		if s.LastCompleted != "2024-03-01" {
			t.Errorf("lastCompleted = %q, want 2024-03-01", s.LastCompleted)
		}
	})

	t.Run("consecutive days extend, gaps reset", func(t *testing.T) {
		s := baseState(day(1))
		UpdateStreak(s, day(1)) // day D
		UpdateStreak(s, day(2)) // day D+1
		if s.Streak != 2 {
			t.Fatalf("streak after D+1 = %d, want 2", s.Streak)
		}
		UpdateStreak(s, day(4)) // day D+3, skipping D+2
		if s.Streak != 1 {
			t.Errorf("streak after gap = %d, want 1", s.Streak)
		}
	})

	t.Run("same day leaves streak unchanged", func(t *testing.T) {
		s := baseState(day(1))
		UpdateStreak(s, day(1))
		UpdateStreak(s, day(1).Add(6*time.Hour))
		if s.Streak != 1 {
			t.Errorf("streak = %d, want 1 after same-day repeat", s.Streak)
		}
	})

	t.Run("streak survives month boundaries", func(t *testing.T) {
		s := baseState(day(1))
		UpdateStreak(s, time.Date(2024, 3, 31, 9, 0, 0, 0, time.UTC))
		UpdateStreak(s, time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
		if s.Streak != 2 {
			t.Errorf("streak across month boundary = %d, want 2", s.Streak)
		}
	})
}

package game

import "time"

// UpdateStreak advances the daily completion streak. Same-day repeats
// leave it unchanged, a completion on the day after the last one extends
// it, and any gap of two or more days resets it to 1.
func UpdateStreak(s *GameState, now time.Time) {
	today := now.Format(DayFormat)
	yesterday := now.AddDate(0, 0, -1).Format(DayFormat)

	switch s.LastCompleted {
	case "":
		s.Streak = 1
	case yesterday:
		s.Streak++
	case today:
		// already counted today
	default:
		s.Streak = 1
	}
	s.LastCompleted = today
}

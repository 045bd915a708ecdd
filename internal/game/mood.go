package game

// Mood text pools. Selection within a pool is random and display-only;
// it is never persisted and never feeds back into game state.
var (
	hungryMoods = []string{
		"tummy is rumbling...",
		"dreaming of snacks",
		"so hungry it could eat a whole checklist",
	}
	happyMoods = []string{
		"bouncing with joy!",
		"purring contentedly",
		"couldn't be happier",
	}
	sadMoods = []string{
		"staring blankly at the wall...",
		"sighing quietly",
		"could use some attention",
	}
	energeticMoods = []string{
		"zooming around the screen!",
		"ready for anything!",
		"bursting with energy",
	}
)

const sleepyMood = "getting sleepy..."

// MoodText picks the display mood for a non-hibernating pet. Branches are
// mutually exclusive and evaluated in a fixed priority order; the final
// fallback is the evolution stage's default text.
func MoodText(s *GameState) string {
	switch {
	case s.PetHunger > 80:
		return pickMood(hungryMoods)
	case s.PetEnergy < 30:
		return sleepyMood
	case (s.PetHappiness+s.PetEnergy)/2 > 70:
		return pickMood(happyMoods)
	case (s.PetHappiness+s.PetEnergy)/2 < 30:
		return pickMood(sadMoods)
	case s.PetEnergy > 80:
		return pickMood(energeticMoods)
	default:
		return StageByNumber(s.PetStage).MoodText
	}
}

func pickMood(pool []string) string {
	i := int(RandFloat64() * float64(len(pool)))
	if i >= len(pool) {
		i = len(pool) - 1
	}
	return pool[i]
}

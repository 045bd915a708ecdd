package game

// EvolutionStage is one tier of pet appearance unlocked by player level.
type EvolutionStage struct {
	Stage    int
	Name     string
	Icon     string
	MoodText string
	MinLevel int
}

// EvolutionStages is ordered by strictly increasing MinLevel. The first
// entry covers level 1, so every level maps to a stage.
var EvolutionStages = []EvolutionStage{
	{Stage: 1, Name: "Egg", Icon: "🥚", MoodText: "...quietly incubating...", MinLevel: 1},
	{Stage: 2, Name: "Hatchling", Icon: "🐣", MoodText: "peep peep!", MinLevel: 3},
	{Stage: 3, Name: "Chick", Icon: "🐤", MoodText: "hopping around happily", MinLevel: 5},
	{Stage: 4, Name: "Songbird", Icon: "🐦", MoodText: "singing a little tune", MinLevel: 8},
	{Stage: 5, Name: "Owl", Icon: "🦉", MoodText: "watching you work, wisely", MinLevel: 12},
	{Stage: 6, Name: "Phoenix", Icon: "🔥", MoodText: "radiating productivity", MinLevel: 18},
	{Stage: 7, Name: "Dragon", Icon: "🐉", MoodText: "soaring above the to-do list", MinLevel: 25},
}

// SelectEvolution returns the stage with the greatest MinLevel not
// exceeding level. The first entry is the fallback.
func SelectEvolution(level int) EvolutionStage {
	selected := EvolutionStages[0]
	for _, e := range EvolutionStages {
		if e.MinLevel <= level {
			selected = e
		}
	}
	return selected
}

// CheckEvolution advances petStage after a level change. The stage never
// moves backwards. Returns the new stage and whether an evolution fired.
func CheckEvolution(s *GameState) (EvolutionStage, bool) {
	e := SelectEvolution(s.Level)
	if e.Stage > s.PetStage {
		s.PetStage = e.Stage
		return e, true
	}
	return e, false
}

// StageByNumber looks up a stage record for display. Unknown numbers fall
// back to the first stage.
func StageByNumber(stage int) EvolutionStage {
	for _, e := range EvolutionStages {
		if e.Stage == stage {
			return e
		}
	}
	return EvolutionStages[0]
}

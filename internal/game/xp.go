package game

// XPRequiredForLevel returns the XP needed to clear the given level.
// Linear growth: 100 at level 1, +50 per level after.
func XPRequiredForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return 100 + (level-1)*50
}

// AwardResult describes what an XP award triggered.
type AwardResult struct {
	Amount    int
	LeveledUp bool
	NewLevel  int
	MegaLevel bool // every 5th level gets a bigger celebration
	Evolved   bool
	NewStage  EvolutionStage
	Unlocked  []Achievement
}

// AwardXP adds XP and performs at most one level-up per call. An award
// that overflows two thresholds at once leaves the surplus in xp for the
// next award to cash in rather than cascading.
func AwardXP(s *GameState, amount int) AwardResult {
	res := AwardResult{Amount: amount}
	s.XP += amount
	s.TotalXP += amount

	required := XPRequiredForLevel(s.Level)
	if s.XP >= required {
		s.XP -= required
		s.Level++
		s.PetHappiness = clampStat(s.PetHappiness + LevelUpHappinessGain)
		s.PetEnergy = clampStat(s.PetEnergy + LevelUpEnergyGain)

		res.LeveledUp = true
		res.NewLevel = s.Level
		res.MegaLevel = s.Level%MegaLevelInterval == 0
		res.NewStage, res.Evolved = CheckEvolution(s)
		res.Unlocked = CheckAchievements(s)
	}
	return res
}

package game

import "time"

// PetPet applies one petting interaction. A 10-second wall-clock cooldown
// guards against mashing; within the cooldown nothing changes. While
// hibernating the effect is reduced but restores a little energy, which
// is the intended recovery path out of hibernation.
func PetPet(s *GameState, now time.Time) bool {
	if now.Sub(s.PetLastPet) < PetCooldown {
		return false
	}
	s.PetLastPet = now

	if s.PetHibernating {
		s.PetEnergy = clampStat(s.PetEnergy + SleepyPetEnergyGain)
		s.PetHappiness = clampStat(s.PetHappiness + SleepyPetHappyGain)
	} else {
		s.PetHappiness = clampStat(s.PetHappiness + PetHappinessGain)
	}
	return true
}

// FeedPet applies a feeding: hunger drops, with small energy and
// happiness bumps.
func FeedPet(s *GameState, now time.Time) {
	s.PetHunger = clampStat(s.PetHunger - FeedHungerDrop)
	s.PetEnergy = clampStat(s.PetEnergy + FeedEnergyGain)
	s.PetHappiness = clampStat(s.PetHappiness + FeedHappinessGain)
	s.PetLastFed = now
}

// BoostPetEnergy applies the task-completion energy reward.
func BoostPetEnergy(s *GameState) {
	s.PetEnergy = clampStat(s.PetEnergy + BoostEnergyGain)
	s.PetHappiness = clampStat(s.PetHappiness + BoostHappinessGain)
}

package game

import "time"

// ApplyDecay converts wall-clock time elapsed since the last decay tick
// into stat deltas. Calls less than a minute apart are no-ops, which also
// makes a repeated call with the same now idempotent. Returns whether a
// tick was applied; the caller must run the hibernation check afterwards.
func ApplyDecay(s *GameState, now time.Time) bool {
	elapsed := now.Sub(s.PetLastUpdate)
	if elapsed < DecayDebounce {
		return false
	}

	h := elapsed.Minutes() / 60

	// Hunger builds regardless of sleep state.
	s.PetHunger = clampStat(s.PetHunger + HungerGainRate*h)

	if s.PetHibernating {
		s.PetEnergy = clampStat(s.PetEnergy - SleepEnergyDecayRate*h)
		s.PetHappiness = clampStat(s.PetHappiness - SleepHappinessDecay*h)
	} else {
		s.PetEnergy = clampStat(s.PetEnergy - EnergyDecayRate*h)
		s.PetHappiness = clampStat(s.PetHappiness - HappinessDecayRate*h)
		if s.PetHunger > HungryPenaltyLevel {
			s.PetHappiness = clampStat(s.PetHappiness - HungryPenaltyRate*h)
		}
	}

	s.PetLastUpdate = now
	return true
}

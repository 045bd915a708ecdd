package game

import "time"

// HibernationTransition is the outcome of one hibernation check.
type HibernationTransition int

const (
	TransitionNone HibernationTransition = iota
	TransitionFellAsleep
	TransitionWokeUp
)

// UpdateHibernation runs the hysteresis-gated sleep/wake transition check.
// Entry and exit thresholds deliberately differ (0 vs 20) so energy
// hovering near a single threshold cannot oscillate the state. It must be
// called after every mutation that can change energy; it is not a polling
// loop. The caller emits notifications for the returned transition.
func UpdateHibernation(s *GameState, now time.Time) HibernationTransition {
	if !s.PetHibernating && s.PetEnergy <= HibernateEnergyFloor {
		s.PetHibernating = true
		start := now
		s.HibernationStartTime = &start
		s.PetHappiness = clampStat(s.PetHappiness - HibernateSadness)
		return TransitionFellAsleep
	}

	if s.PetHibernating && s.PetEnergy >= WakeEnergyLevel {
		s.PetHibernating = false
		s.HibernationStartTime = nil
		s.PetHappiness = clampStat(s.PetHappiness + WakeHappinessBonus)
		return TransitionWokeUp
	}

	return TransitionNone
}

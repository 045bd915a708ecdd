package game

import (
	"math/rand"
	"time"
)

// Testable time and random functions
var (
	TimeNow     = func() time.Time { return time.Now().UTC() }
	RandFloat64 = rand.Float64
)

// Stat bounds and mutation effects
const (
	MaxStat = 100.0
	MinStat = 0.0

	// Decay rates (per hour of elapsed wall-clock time)
	HungerGainRate        = 20.0
	EnergyDecayRate       = 10.0
	HappinessDecayRate    = 8.0
	HungryPenaltyRate     = 5.0 // extra happiness loss while hunger > HungryPenaltyLevel
	SleepEnergyDecayRate  = 5.0
	SleepHappinessDecay   = 15.0
	HungryPenaltyLevel    = 70.0
	DecayDebounce         = time.Minute

	// Hibernation hysteresis thresholds
	HibernateEnergyFloor = 0.0
	WakeEnergyLevel      = 20.0
	HibernateSadness     = 30.0
	WakeHappinessBonus   = 20.0

	// Interaction effects
	PetCooldown          = 10 * time.Second
	PetHappinessGain     = 10.0
	SleepyPetEnergyGain  = 5.0
	SleepyPetHappyGain   = 5.0
	FeedHungerDrop       = 20.0
	FeedEnergyGain       = 10.0
	FeedHappinessGain    = 5.0
	BoostEnergyGain      = 15.0
	BoostHappinessGain   = 10.0

	// Level-up grants
	LevelUpHappinessGain = 20.0
	LevelUpEnergyGain    = 15.0
	MegaLevelInterval    = 5

	// Achievement unlock reward
	AchievementHappyGain = 15.0
)

// DayFormat is how lastCompletedDate is persisted (calendar day, no time).
const DayFormat = "2006-01-02"

// GameState is the whole persisted game record. It is owned by a single
// Game controller for the process lifetime and saved wholesale after
// every mutation.
type GameState struct {
	Level          int     `json:"level"`
	XP             int     `json:"xp"`
	TotalXP        int     `json:"totalXP"`
	Streak         int     `json:"streak"`
	LastCompleted  string  `json:"lastCompletedDate,omitempty"`
	TotalCompleted int     `json:"totalCompleted"`
	Achievements   []string `json:"achievements"`
	SoundEnabled   bool    `json:"soundEnabled"`

	PetHappiness float64 `json:"petHappiness"`
	PetEnergy    float64 `json:"petEnergy"`
	PetHunger    float64 `json:"petHunger"`
	PetStage     int     `json:"petStage"`

	PetLastFed    time.Time `json:"petLastFed"`
	PetLastPet    time.Time `json:"petLastPet"`
	PetLastUpdate time.Time `json:"petLastUpdate"`

	PetHibernating       bool       `json:"petHibernating"`
	HibernationStartTime *time.Time `json:"hibernationStartTime,omitempty"`
}

// NewGameState returns the documented fresh-start defaults.
func NewGameState() *GameState {
	now := TimeNow()
	return &GameState{
		Level:         1,
		Streak:        0,
		Achievements:  []string{},
		SoundEnabled:  true,
		PetHappiness:  80,
		PetEnergy:     100,
		PetHunger:     20,
		PetStage:      SelectEvolution(1).Stage,
		PetLastFed:    now,
		PetLastPet:    now,
		PetLastUpdate: now,
	}
}

// HasAchievement reports whether the achievement id has been unlocked.
func (s *GameState) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

func clampStat(v float64) float64 {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

package game

// AchievementKind selects which counter an achievement's requirement is
// checked against.
type AchievementKind string

const (
	KindCount  AchievementKind = "count"
	KindStreak AchievementKind = "streak"
	KindLevel  AchievementKind = "level"
)

// Achievement is one fixed badge definition.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Requirement int
	Kind        AchievementKind
}

// AchievementTable is the fixed set of unlockable badges.
var AchievementTable = []Achievement{
	{ID: "first_task", Name: "First Steps", Description: "Complete your first task", Icon: "🌱", Requirement: 1, Kind: KindCount},
	{ID: "ten_tasks", Name: "Getting Things Done", Description: "Complete 10 tasks", Icon: "📋", Requirement: 10, Kind: KindCount},
	{ID: "fifty_tasks", Name: "Task Machine", Description: "Complete 50 tasks", Icon: "🏅", Requirement: 50, Kind: KindCount},
	{ID: "hundred_tasks", Name: "Centurion", Description: "Complete 100 tasks", Icon: "🏆", Requirement: 100, Kind: KindCount},
	{ID: "streak_3", Name: "Warming Up", Description: "3-day completion streak", Icon: "🔥", Requirement: 3, Kind: KindStreak},
	{ID: "streak_7", Name: "On Fire", Description: "7-day completion streak", Icon: "☄️", Requirement: 7, Kind: KindStreak},
	{ID: "streak_30", Name: "Unstoppable", Description: "30-day completion streak", Icon: "🌋", Requirement: 30, Kind: KindStreak},
	{ID: "level_5", Name: "Apprentice", Description: "Reach level 5", Icon: "⭐", Requirement: 5, Kind: KindLevel},
	{ID: "level_10", Name: "Adept", Description: "Reach level 10", Icon: "🌟", Requirement: 10, Kind: KindLevel},
	{ID: "level_20", Name: "Master", Description: "Reach level 20", Icon: "💫", Requirement: 20, Kind: KindLevel},
}

func (a Achievement) satisfied(s *GameState) bool {
	switch a.Kind {
	case KindStreak:
		return s.Streak >= a.Requirement
	case KindLevel:
		return s.Level >= a.Requirement
	default:
		return s.TotalCompleted >= a.Requirement
	}
}

// CheckAchievements unlocks every not-yet-unlocked achievement whose
// predicate is satisfied. Unlocking is monotonic: once in the set, an id
// never re-fires, so the unlocked set is a fixed point under repeated
// checks. Each unlock grants a happiness bump; the caller announces the
// returned achievements.
func CheckAchievements(s *GameState) []Achievement {
	var unlocked []Achievement
	for _, a := range AchievementTable {
		if s.HasAchievement(a.ID) {
			continue
		}
		if a.satisfied(s) {
			s.Achievements = append(s.Achievements, a.ID)
			s.PetHappiness = clampStat(s.PetHappiness + AchievementHappyGain)
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}

// AchievementByID looks up a table entry; ok is false for unknown ids.
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range AchievementTable {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

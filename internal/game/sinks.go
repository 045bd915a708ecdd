package game

// SoundKind names the synthesized effects the UI layer can play.
type SoundKind string

const (
	SoundXP          SoundKind = "xp"
	SoundLevelUp     SoundKind = "levelup"
	SoundAchievement SoundKind = "achievement"
	SoundPet         SoundKind = "pet"
	SoundEvolution   SoundKind = "evolution"
	SoundHibernate   SoundKind = "hibernate"
)

// ParticleKind names the cosmetic particle bursts.
type ParticleKind string

const (
	ParticlesHearts   ParticleKind = "hearts"
	ParticlesConfetti ParticleKind = "confetti"
)

// Sinks is the side-effecting surface the engine pushes into after a
// state transition completes: display, celebrations, audio, particles.
// All methods are fire-and-forget; implementations must not mutate state.
type Sinks interface {
	Render(state *GameState, tasks []Task)
	Notify(title, body, icon string)
	PlaySound(kind SoundKind)
	SpawnParticles(kind ParticleKind, count int)
}

// NopSinks discards everything. Useful for tests and headless runs.
type NopSinks struct{}

func (NopSinks) Render(*GameState, []Task)          {}
func (NopSinks) Notify(string, string, string)      {}
func (NopSinks) PlaySound(SoundKind)                {}
func (NopSinks) SpawnParticles(ParticleKind, int)   {}

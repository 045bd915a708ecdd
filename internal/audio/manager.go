package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"taskpet/internal/game"
)

const sampleRate = beep.SampleRate(48000)

// Manager synthesizes and plays the game's sound effects. All effects are
// short generated tones; nothing is loaded from disk. Initialization is
// best-effort: when no audio device is available the manager stays silent
// and every Play call is a no-op.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize sets up the speaker. Safe to call more than once.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences and detaches all streamers.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	m.mixer.Clear()
	m.initialized = false
}

// Play queues the effect for the given kind. Fire-and-forget.
func (m *Manager) Play(kind game.SoundKind) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	for _, note := range effectNotes(kind) {
		m.mixer.Add(beep.Take(sampleRate.N(note.dur), NewChirpGenerator(sampleRate, note.from, note.to)))
	}
}

type note struct {
	from, to float64
	dur      time.Duration
}

// effectNotes maps each sound kind to a short tone sequence. Rising
// sweeps for rewards, a falling sweep for hibernation.
func effectNotes(kind game.SoundKind) []note {
	switch kind {
	case game.SoundXP:
		return []note{{from: 520, to: 780, dur: 120 * time.Millisecond}}
	case game.SoundLevelUp:
		return []note{
			{from: 440, to: 660, dur: 150 * time.Millisecond},
			{from: 660, to: 990, dur: 200 * time.Millisecond},
		}
	case game.SoundAchievement:
		return []note{
			{from: 600, to: 600, dur: 100 * time.Millisecond},
			{from: 800, to: 1200, dur: 250 * time.Millisecond},
		}
	case game.SoundPet:
		return []note{{from: 880, to: 1040, dur: 90 * time.Millisecond}}
	case game.SoundEvolution:
		return []note{
			{from: 330, to: 660, dur: 250 * time.Millisecond},
			{from: 660, to: 1320, dur: 350 * time.Millisecond},
		}
	case game.SoundHibernate:
		return []note{{from: 400, to: 150, dur: 400 * time.Millisecond}}
	default:
		return nil
	}
}

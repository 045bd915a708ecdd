package audio

import (
	"math"
	"testing"

	"taskpet/internal/game"
)

func TestChirpGeneratorStream(t *testing.T) {
	g := NewChirpGenerator(sampleRate, 440, 880)
	buf := make([][2]float64, 1024)

	n, ok := g.Stream(buf)
	if !ok || n != len(buf) {
		t.Fatalf("Stream = %d, %v, want full buffer", n, ok)
	}
	if g.Err() != nil {
		t.Fatalf("Err = %v", g.Err())
	}

	peak := 0.0
	for _, s := range buf {
		if s[0] != s[1] {
			t.Fatal("channels must carry the same mono signal")
		}
		if a := math.Abs(s[0]); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		t.Error("generator produced silence")
	}
	if peak > 0.25 {
		t.Errorf("peak %v exceeds the effect amplitude ceiling", peak)
	}
}

func TestChirpGeneratorEnvelopeDecays(t *testing.T) {
	g := NewChirpGenerator(sampleRate, 440, 440)
	early := make([][2]float64, int(sampleRate)/10)
	late := make([][2]float64, int(sampleRate)/10)
	g.Stream(early)
	for i := 0; i < 10; i++ {
		g.Stream(late)
	}

	rms := func(buf [][2]float64) float64 {
		sum := 0.0
		for _, s := range buf {
			sum += s[0] * s[0]
		}
		return math.Sqrt(sum / float64(len(buf)))
	}
	if rms(late) >= rms(early) {
		t.Error("release envelope should decay over time")
	}
}

func TestEffectNotesCoverAllKinds(t *testing.T) {
	kinds := []game.SoundKind{
		game.SoundXP, game.SoundLevelUp, game.SoundAchievement,
		game.SoundPet, game.SoundEvolution, game.SoundHibernate,
	}
	for _, k := range kinds {
		if len(effectNotes(k)) == 0 {
			t.Errorf("no effect defined for %q", k)
		}
	}
	if effectNotes(game.SoundKind("bogus")) != nil {
		t.Error("unknown kinds must map to no notes")
	}
}

func TestPlayBeforeInitializeIsNoop(t *testing.T) {
	m := NewManager()
	// Must not panic or touch the speaker.
	m.Play(game.SoundLevelUp)
	m.Cleanup()
}

package ui

import (
	"strings"
	"time"

	"taskpet/internal/game"
)

// Burst is one cosmetic particle animation, rendered as a short sequence
// of emoji rows. Purely display-side; nothing here touches game state.
type Burst struct {
	Kind      game.ParticleKind
	Count     int
	Frame     int
	StartTime time.Time
}

// BurstFrameDuration is how long each frame displays.
const BurstFrameDuration = 200 * time.Millisecond

// burstGlyphs maps particle kinds to the glyphs scattered per frame.
var burstGlyphs = map[game.ParticleKind][]string{
	game.ParticlesHearts:   {"💖", "💕", "❤️", "💗"},
	game.ParticlesConfetti: {"🎊", "🎉", "✨", "🎈"},
}

// BurstTotalFrames scales animation length with the requested count, so
// a mega celebration visibly lasts longer than a petting sparkle.
func BurstTotalFrames(count int) int {
	frames := 3 + count/50
	if frames > 8 {
		frames = 8
	}
	return frames
}

// RenderBurstFrame draws one frame: a row of glyphs that widens as the
// burst progresses.
func RenderBurstFrame(b Burst) string {
	glyphs := burstGlyphs[b.Kind]
	if len(glyphs) == 0 {
		return ""
	}
	width := 2 + b.Frame*2
	var row strings.Builder
	for i := 0; i < width; i++ {
		row.WriteString(glyphs[(b.Frame+i)%len(glyphs)])
		row.WriteString(" ")
	}
	return strings.TrimRight(row.String(), " ")
}

// IsBurstComplete reports whether the burst has played out.
func IsBurstComplete(b Burst) bool {
	return b.Frame >= BurstTotalFrames(b.Count)
}

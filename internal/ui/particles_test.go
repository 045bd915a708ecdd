package ui

import (
	"strings"
	"testing"

	"taskpet/internal/game"
)

func TestBurstTotalFramesScalesWithCount(t *testing.T) {
	if BurstTotalFrames(12) >= BurstTotalFrames(150) {
		t.Error("bigger bursts should last longer")
	}
	if BurstTotalFrames(10_000) > 8 {
		t.Error("frame count must be capped")
	}
}

func TestRenderBurstFrame(t *testing.T) {
	b := Burst{Kind: game.ParticlesHearts, Count: 12, Frame: 1}
	row := RenderBurstFrame(b)
	if row == "" {
		t.Fatal("hearts burst rendered empty")
	}
	if !strings.Contains(row, " ") {
		t.Error("glyphs should be space-separated")
	}

	if RenderBurstFrame(Burst{Kind: game.ParticleKind("smoke")}) != "" {
		t.Error("unknown particle kinds render nothing")
	}
}

func TestBurstCompletion(t *testing.T) {
	b := Burst{Kind: game.ParticlesConfetti, Count: 50}
	for !IsBurstComplete(b) {
		b.Frame++
		if b.Frame > 100 {
			t.Fatal("burst never completes")
		}
	}
}

package config

import (
	"math"
	"testing"
)

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{500, 1.0}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%d) = %f, expected %f", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 1000},
	})

	if got := d.Level(9999, 500); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level() = %f, expected 0.5 (score ignored)", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(1000, 1000); got != 0.3 {
		t.Errorf("Level() = %f, expected initial level 0.3", got)
	}
}

func TestDifficultySpawnChanceCapped(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "none"},
		Scaling:      ScalingConfig{SpawnMultiplier: 4, SpeedMultiplier: 1},
	})

	if got := d.SpawnChance(0.5, 0, 0); got != 1.0 {
		t.Errorf("SpawnChance() = %f, expected cap 1.0", got)
	}
	if got := d.SpawnChance(0.02, 0, 0); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("SpawnChance() = %f, expected 0.1", got)
	}
	if got := d.Speed(2, 0, 0); got != 4 {
		t.Errorf("Speed() = %f, expected 4", got)
	}
}

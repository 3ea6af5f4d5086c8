package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrUnknownMode is returned when no defaults exist for a mode.
var ErrUnknownMode = errors.New("unknown mode")

// Load loads the arena configuration for a mode.
// Search order: customPath -> ~/.space-explorer/configs/<mode>.yaml ->
// ./configs/<mode>.yaml -> embedded default -> hardcoded default.
// Files only need to set the keys they override.
func Load(mode, customPath string) (ArenaConfig, error) {
	base, ok := Default(mode)
	if !ok {
		return ArenaConfig{}, fmt.Errorf("config: %w %q", ErrUnknownMode, mode)
	}
	filename := mode + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data, base)
		if err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := Validate(cfg); err != nil {
			return base, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data, base); err == nil && Validate(cfg) == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(GetDefaultYAML(mode), base)
	if err != nil || Validate(cfg) != nil {
		return base, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode overlays YAML onto base. Unknown keys are rejected.
func decode(data []byte, base ArenaConfig) (ArenaConfig, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".space-explorer", "configs", filename)
}

// Validate checks the configuration for values the arena cannot run with.
func Validate(cfg ArenaConfig) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}
	positive := func(v float64) bool { return v > 0 && !math.IsInf(v, 0) }
	chance := func(v float64) bool { return v >= 0 && v <= 1 }

	check(positive(cfg.Arena.Width) && positive(cfg.Arena.Height),
		"arena size must be positive, got %vx%v", cfg.Arena.Width, cfg.Arena.Height)

	check(cfg.Timing.Mode == TimingFixed || cfg.Timing.Mode == TimingDelta,
		"timing.mode must be %q or %q, got %q", TimingFixed, TimingDelta, cfg.Timing.Mode)
	check(cfg.Timing.BaseRate > 0, "timing.base_rate must be positive, got %d", cfg.Timing.BaseRate)
	check(positive(cfg.Timing.MaxScale), "timing.max_scale must be positive, got %v", cfg.Timing.MaxScale)

	check(positive(cfg.Player.Radius), "player.radius must be positive, got %v", cfg.Player.Radius)
	check(cfg.Player.Speed >= 0, "player.speed must not be negative, got %v", cfg.Player.Speed)
	check(cfg.Player.Aim == AimUp || cfg.Player.Aim == AimFacing,
		"player.aim must be %q or %q, got %q", AimUp, AimFacing, cfg.Player.Aim)
	check(cfg.Player.FireCooldown >= 0, "player.fire_cooldown must not be negative, got %v", cfg.Player.FireCooldown)
	check(cfg.Player.MaxProjectiles >= 0, "player.max_projectiles must not be negative, got %d", cfg.Player.MaxProjectiles)

	check(positive(cfg.Projectile.PlayerRadius) && positive(cfg.Projectile.HostileRadius),
		"projectile radii must be positive")

	check(positive(cfg.Hostile.Radius), "hostile.radius must be positive, got %v", cfg.Hostile.Radius)
	check(chance(cfg.Hostile.SpawnChance), "hostile.spawn_chance must be in [0,1], got %v", cfg.Hostile.SpawnChance)
	check(cfg.Hostile.FireMin >= 0 && cfg.Hostile.FireMin <= cfg.Hostile.FireMax,
		"hostile fire interval must satisfy 0 <= fire_min <= fire_max, got [%v,%v]", cfg.Hostile.FireMin, cfg.Hostile.FireMax)

	check(positive(cfg.Collectible.MinRadius) && cfg.Collectible.MinRadius <= cfg.Collectible.MaxRadius,
		"collectible radius range invalid: [%v,%v]", cfg.Collectible.MinRadius, cfg.Collectible.MaxRadius)
	check(cfg.Collectible.MinSpeed >= 0 && cfg.Collectible.MinSpeed <= cfg.Collectible.MaxSpeed,
		"collectible speed range invalid: [%v,%v]", cfg.Collectible.MinSpeed, cfg.Collectible.MaxSpeed)
	check(chance(cfg.Collectible.SpawnChance), "collectible.spawn_chance must be in [0,1], got %v", cfg.Collectible.SpawnChance)

	check(cfg.Formation.Rows >= 0 && cfg.Formation.Cols >= 0, "formation size must not be negative")

	check(cfg.Gameplay.Lives > 0, "gameplay.lives must be positive, got %d", cfg.Gameplay.Lives)
	check(cfg.Gameplay.HostileScore >= 0 && cfg.Gameplay.CollectibleScore >= 0, "scores must not be negative")
	check(cfg.Gameplay.LifeEvery >= 0, "gameplay.life_every must not be negative, got %d", cfg.Gameplay.LifeEvery)

	return errors.Join(errs...)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ArenaConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives += 2
	case DifficultyHard:
		cfg.Gameplay.Lives = max(1, cfg.Gameplay.Lives-2)
	}
}

package config

import (
	_ "embed"
)

// Mode identifiers with embedded defaults.
const (
	ModeExplorer = "explorer"
	ModeClassic  = "classic"
)

//go:embed defaults/explorer.yaml
var defaultExplorerYAML []byte

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

// DefaultExplorerConfig returns the hardcoded Explorer configuration.
func DefaultExplorerConfig() ArenaConfig {
	return ArenaConfig{
		Arena:  ArenaBounds{Width: 800, Height: 600},
		Timing: TimingConfig{Mode: TimingFixed, BaseRate: 60, MaxScale: 3},
		Player: PlayerConfig{
			Radius:         20,
			Speed:          6,
			Vertical:       true,
			StartY:         520,
			Aim:            AimFacing,
			FireCooldown:   6,
			MaxProjectiles: 8,
		},
		Projectile: ProjectileConfig{
			PlayerRadius:  3,
			PlayerSpeed:   12,
			HostileRadius: 2.5,
			HostileSpeed:  7,
		},
		Hostile: HostileConfig{
			Radius:      17.5,
			SpeedX:      2,
			SpeedY:      1.5,
			SpawnChance: 0.02,
			FireMin:     60,  // 1s at 60 ticks/s
			FireMax:     240, // 4s
		},
		Collectible: CollectibleConfig{
			MinRadius:   12.5,
			MaxRadius:   27.5,
			MinSpeed:    0.6,
			MaxSpeed:    1.3,
			SpawnChance: 0.008,
		},
		Gameplay: GameplayConfig{
			Lives:            5,
			HostileScore:     20,
			CollectibleScore: 10,
			LifeEvery:        5,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpawnMultiplier: 1.0,
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultClassicConfig returns the hardcoded Classic configuration.
func DefaultClassicConfig() ArenaConfig {
	return ArenaConfig{
		Arena:  ArenaBounds{Width: 800, Height: 600},
		Timing: TimingConfig{Mode: TimingFixed, BaseRate: 60, MaxScale: 3},
		Player: PlayerConfig{
			Radius:       20,
			Speed:        5,
			StartY:       550,
			Aim:          AimUp,
			FireCooldown: 18, // 300ms
		},
		Projectile: ProjectileConfig{
			PlayerRadius:  4,
			PlayerSpeed:   8,
			HostileRadius: 4,
			HostileSpeed:  8,
		},
		Hostile: HostileConfig{
			Radius:  15,
			SpeedX:  2,
			SpeedY:  1,
			Drop:    20,
			FireMin: 120,
			FireMax: 360,
		},
		Collectible: CollectibleConfig{
			MinRadius:   15,
			MaxRadius:   25,
			MinSpeed:    0.2,
			MaxSpeed:    0.5,
			SpawnChance: 0.003,
		},
		Formation: FormationConfig{
			Rows:     5,
			Cols:     8,
			OriginX:  100,
			OriginY:  50,
			SpacingX: 80,
			SpacingY: 50,
			Refill:   true,
		},
		Gameplay: GameplayConfig{
			Lives:        3,
			HostileScore: 10,
			LifeEvery:    5,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60 ticks/s
			},
			Scaling: ScalingConfig{
				SpawnMultiplier: 0.5,
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// Default returns the hardcoded configuration for a mode.
func Default(mode string) (ArenaConfig, bool) {
	switch mode {
	case ModeExplorer:
		return DefaultExplorerConfig(), true
	case ModeClassic:
		return DefaultClassicConfig(), true
	default:
		return ArenaConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a mode.
func GetDefaultYAML(mode string) []byte {
	switch mode {
	case ModeExplorer:
		return defaultExplorerYAML
	case ModeClassic:
		return defaultClassicYAML
	default:
		return nil
	}
}

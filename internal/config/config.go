// Package config provides YAML-based arena configuration loading and
// difficulty management for the game modes.
package config

// ArenaConfig contains all tunable parameters of one game mode.
type ArenaConfig struct {
	Arena       ArenaBounds       `yaml:"arena"`
	Timing      TimingConfig      `yaml:"timing"`
	Player      PlayerConfig      `yaml:"player"`
	Projectile  ProjectileConfig  `yaml:"projectile"`
	Hostile     HostileConfig     `yaml:"hostile"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Formation   FormationConfig   `yaml:"formation"`
	Gameplay    GameplayConfig    `yaml:"gameplay"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// ArenaBounds defines the arena rectangle in arena units.
type ArenaBounds struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Timing modes.
const (
	TimingFixed = "fixed" // every tick advances one base tick
	TimingDelta = "delta" // movement scales with elapsed time
)

// TimingConfig selects how elapsed time maps onto movement.
// All speeds and cooldowns are expressed per base tick.
type TimingConfig struct {
	Mode     string  `yaml:"mode"`      // "fixed" or "delta"
	BaseRate int     `yaml:"base_rate"` // Base ticks per second
	MaxScale float64 `yaml:"max_scale"` // Upper bound on the per-tick scale in delta mode
}

// Aim modes for the player's projectiles.
const (
	AimUp     = "up"     // always straight up
	AimFacing = "facing" // along the last movement direction
)

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Radius         float64 `yaml:"radius"`
	Speed          float64 `yaml:"speed"`           // Units per tick per held direction
	Vertical       bool    `yaml:"vertical"`        // Whether up/down movement is allowed
	StartX         float64 `yaml:"start_x"`         // 0 means arena center
	StartY         float64 `yaml:"start_y"`         // 0 means arena center
	Aim            string  `yaml:"aim"`             // "up" or "facing"
	FireCooldown   float64 `yaml:"fire_cooldown"`   // Ticks between shots
	MaxProjectiles int     `yaml:"max_projectiles"` // Live player projectiles allowed, 0 = unlimited
}

// ProjectileConfig defines projectile sizes and speeds per owner.
type ProjectileConfig struct {
	PlayerRadius  float64 `yaml:"player_radius"`
	PlayerSpeed   float64 `yaml:"player_speed"`
	HostileRadius float64 `yaml:"hostile_radius"`
	HostileSpeed  float64 `yaml:"hostile_speed"`
}

// HostileConfig defines hostile movement, spawning and firing.
type HostileConfig struct {
	Radius      float64 `yaml:"radius"`
	SpeedX      float64 `yaml:"speed_x"`      // Horizontal speed, direction picked at random
	SpeedY      float64 `yaml:"speed_y"`      // Downward drift per tick
	Drop        float64 `yaml:"drop"`         // Extra downward step when reversing at a side bound
	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick spawn probability
	FireMin     float64 `yaml:"fire_min"`     // Min ticks between shots, 0 disables firing
	FireMax     float64 `yaml:"fire_max"`     // Max ticks between shots
}

// CollectibleConfig defines the drifting pickups.
type CollectibleConfig struct {
	MinRadius   float64 `yaml:"min_radius"`
	MaxRadius   float64 `yaml:"max_radius"`
	MinSpeed    float64 `yaml:"min_speed"`
	MaxSpeed    float64 `yaml:"max_speed"`
	SpawnChance float64 `yaml:"spawn_chance"`
}

// FormationConfig defines an optional grid of hostiles placed at reset.
type FormationConfig struct {
	Rows     int     `yaml:"rows"`
	Cols     int     `yaml:"cols"`
	OriginX  float64 `yaml:"origin_x"`
	OriginY  float64 `yaml:"origin_y"`
	SpacingX float64 `yaml:"spacing_x"`
	SpacingY float64 `yaml:"spacing_y"`
	Refill   bool    `yaml:"refill"` // Spawn the next wave once the formation is cleared
}

// Enabled reports whether the formation places any hostiles.
func (f FormationConfig) Enabled() bool {
	return f.Rows > 0 && f.Cols > 0
}

// GameplayConfig defines lives and scoring.
type GameplayConfig struct {
	Lives            int `yaml:"lives"`
	HostileScore     int `yaml:"hostile_score"`
	CollectibleScore int `yaml:"collectible_score"`
	LifeEvery        int `yaml:"life_every"` // Collections per bonus life, 0 disables
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpawnMultiplier float64 `yaml:"spawn_multiplier"` // Added to spawn chances at max difficulty
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to hostile speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

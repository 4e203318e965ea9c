// Package config provides YAML-based game configuration loading and
// difficulty management for the platformer.
package config

// PlatformerConfig contains all tunable parameters of the platformer.
type PlatformerConfig struct {
	Physics    PlatformerPhysics `yaml:"physics"`
	Player     PlatformerPlayer  `yaml:"player"`
	Scoring    PlatformerScoring `yaml:"scoring"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// PlatformerPhysics defines player motion parameters. Speeds are in level
// units per second.
type PlatformerPhysics struct {
	XSpeed    float64 `yaml:"x_speed"`
	Gravity   float64 `yaml:"gravity"`
	JumpSpeed float64 `yaml:"jump_speed"`
	MaxStep   float64 `yaml:"max_step"`   // Longest simulated step in seconds
	HoldTicks int     `yaml:"hold_ticks"` // Ticks a run key stays held after a press
}

// PlatformerPlayer defines player parameters.
type PlatformerPlayer struct {
	Lives int `yaml:"lives"`
}

// PlatformerScoring defines how points are awarded.
type PlatformerScoring struct {
	CoinPoints int `yaml:"coin_points"`
	LevelBonus int `yaml:"level_bonus"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Level index, score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Time scale added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	default:
		return "", false
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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

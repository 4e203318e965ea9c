package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			XSpeed:    7,
			Gravity:   30,
			JumpSpeed: 17,
			MaxStep:   0.05,
			HoldTicks: 8,
		},
		Player: PlatformerPlayer{
			Lives: 3,
		},
		Scoring: PlatformerScoring{
			CoinPoints: 10,
			LevelBonus: 100,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer":
		return defaultPlatformerYAML
	default:
		return nil
	}
}

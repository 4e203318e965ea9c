package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	return load(customPath, "platformer.yaml", defaultPlatformerYAML, DefaultPlatformerConfig)
}

// load reads a config following the search order. Files found on the search
// path are decoded over the hardcoded defaults, so partial files only
// override the keys they set.
func load[T any](customPath, filename string, embedded []byte, fallback func() T) (T, error) {
	// Try custom path first
	if customPath != "" {
		cfg := fallback()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			cfg := fallback()
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := fallback()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// ApplyPlatformerPreset adjusts lives and jump for a difficulty preset.
// Speed progression is applied by DifficultyManager.ApplyPreset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Physics.JumpSpeed *= 1.05
	case DifficultyHard:
		cfg.Player.Lives = 2
	}
}

// Validate reports configuration values the game cannot run with.
func (c PlatformerConfig) Validate() error {
	switch {
	case c.Physics.XSpeed <= 0:
		return fmt.Errorf("config: physics.x_speed must be positive, got %v", c.Physics.XSpeed)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("config: physics.gravity must be positive, got %v", c.Physics.Gravity)
	case c.Physics.JumpSpeed <= 0:
		return fmt.Errorf("config: physics.jump_speed must be positive, got %v", c.Physics.JumpSpeed)
	case !finite(c.Physics.XSpeed, c.Physics.Gravity, c.Physics.JumpSpeed, c.Physics.MaxStep):
		return fmt.Errorf("config: physics values must be finite")
	case c.Physics.MaxStep <= 0:
		return fmt.Errorf("config: physics.max_step must be positive, got %v", c.Physics.MaxStep)
	case c.Physics.HoldTicks < 1:
		return fmt.Errorf("config: physics.hold_ticks must be at least 1, got %d", c.Physics.HoldTicks)
	case c.Player.Lives < 1:
		return fmt.Errorf("config: player.lives must be at least 1, got %d", c.Player.Lives)
	case !finite(c.Difficulty.Scaling.SpeedMultiplier) || 1+c.Difficulty.Scaling.SpeedMultiplier <= 0:
		return fmt.Errorf("config: difficulty.scaling.speed_multiplier must be greater than -1, got %v",
			c.Difficulty.Scaling.SpeedMultiplier)
	}
	return nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

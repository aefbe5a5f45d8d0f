package config

import (
	_ "embed"
)

//go:embed defaults/hexpop.yaml
var defaultHexpopYAML []byte

// DefaultHexpopConfig returns the default game configuration.
func DefaultHexpopConfig() HexpopConfig {
	return HexpopConfig{
		Playfield: HexpopPlayfield{
			Width:  384,
			Height: 480,
		},
		Physics: HexpopPhysics{
			DescentMultiplier: 1.0,
			AimStep:           0.045,
			MaxAimAngle:       1.35,
		},
		Gameplay: HexpopGameplay{
			Lives:      3,
			StartLevel: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultHexpopYAML
}

// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// HexpopConfig contains all configuration for the bubble shooter.
type HexpopConfig struct {
	Playfield  HexpopPlayfield  `yaml:"playfield"`
	Physics    HexpopPhysics    `yaml:"physics"`
	Gameplay   HexpopGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// HexpopPlayfield defines the simulated playfield size in pixels.
// The terminal renderer scales this down to character cells.
type HexpopPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HexpopPhysics defines tunable physics parameters.
type HexpopPhysics struct {
	// DescentMultiplier scales every level's descent rate.
	DescentMultiplier float64 `yaml:"descent_multiplier"`
	// AimStep is the aim rotation per held key tick, in radians.
	AimStep float64 `yaml:"aim_step"`
	// MaxAimAngle bounds the aim away from horizontal, in radians.
	MaxAimAngle float64 `yaml:"max_aim_angle"`
}

// HexpopGameplay defines round-level gameplay parameters.
type HexpopGameplay struct {
	Lives      int `yaml:"lives"`
	StartLevel int `yaml:"start_level"` // 1-based campaign level to begin at
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
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to descent speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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

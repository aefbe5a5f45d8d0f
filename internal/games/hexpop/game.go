// Package hexpop adapts the bubble engine to the platform Game interface:
// it maps input actions to aim changes, owns the campaign/endless mode
// progression, and renders the playfield into a screen buffer.
package hexpop

import (
	"github.com/vovakirdan/hexpop/internal/bubble"
	"github.com/vovakirdan/hexpop/internal/config"
	"github.com/vovakirdan/hexpop/internal/core"
	"github.com/vovakirdan/hexpop/internal/registry"
)

// GameState constants
const (
	StatePlaying  = "playing"  // Round in progress
	StateCleared  = "cleared"  // Level cleared, short interstitial
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // All campaign levels completed
	StatePaused   = "paused"   // Game paused
)

// clearedDelayTicks is how long the "level cleared" interstitial shows
// before the next level starts.
const clearedDelayTicks = 120

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, win at end
	ModeEndless                  // Cycle levels forever with rising descent
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel stores the 1-based campaign level override set via CLI
var startLevel int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetStartLevel sets the 1-based campaign level to start at.
func SetStartLevel(level int) {
	startLevel = level
}

// Game implements the bubble shooter on top of the platform interfaces.
type Game struct {
	mode GameMode

	round *bubble.Round
	aim   float64

	state        string
	levelIndex   int
	endlessCycle int
	tickCount    int
	clearedDelay int
	maxCombo     int

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.HexpopConfig
	difficulty *config.DifficultyManager

	// Layout (computed from screen size)
	layout         layout
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a campaign-mode game instance.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless-mode game instance.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "hexpop_endless"
	}
	return "hexpop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Hexpop (Endless)"
	}
	return "Hexpop"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadHexpop(configPath)
	if err != nil {
		cfg = config.DefaultHexpopConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHexpopPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.levelIndex = 0
	if cfg.Gameplay.StartLevel > 1 {
		g.levelIndex = cfg.Gameplay.StartLevel - 1
	}
	if startLevel > 0 {
		g.levelIndex = startLevel - 1
	}
	if g.levelIndex >= bubble.LevelCount() {
		g.levelIndex = bubble.LevelCount() - 1
	}

	g.calculateLayout()
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.aim = 0
	g.tickCount = 0
	g.clearedDelay = 0
	g.endlessCycle = 0
	g.maxCombo = 0

	seed := runtime.Seed
	if seed == 0 {
		seed = 1
	}
	level := bubble.Levels[g.levelIndex]
	g.round = bubble.NewRound(level,
		cfg.Playfield.Width, cfg.Playfield.Height, seed, cfg.Gameplay.Lives)
	g.applyDescentScale()
	g.state = StatePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Level-cleared interstitial: count down, then start the next level.
	if g.state == StateCleared {
		g.clearedDelay--
		if g.clearedDelay <= 0 {
			g.startNextLevel()
		}
		return core.StepResult{State: g.State()}
	}

	g.updateAim(in)

	if in.Has(core.ActionShoot) {
		g.round.Shoot()
	}

	g.applyDescentScale()

	dt := 1.0 / float64(g.tickRate())
	events := g.round.Advance(dt, g.aim)
	g.handleEvents(events)

	return core.StepResult{State: g.State()}
}

// tickRate returns the simulation tick rate, defaulting to 60.
func (g *Game) tickRate() int {
	if g.runtime.TickRate > 0 {
		return g.runtime.TickRate
	}
	return 60
}

// updateAim rotates the aim by held direction keys, bounded away from
// horizontal.
func (g *Game) updateAim(in core.InputFrame) {
	step := g.cfg.Physics.AimStep
	if step <= 0 {
		step = 0.045
	}
	limit := g.cfg.Physics.MaxAimAngle
	if limit <= 0 {
		limit = 1.35
	}

	if in.Has(core.ActionLeft) {
		g.aim -= step
	}
	if in.Has(core.ActionRight) {
		g.aim += step
	}
	g.aim = core.ClampF(g.aim, -limit, limit)
}

// applyDescentScale feeds the configured multiplier, plus the difficulty
// ramp in endless mode, into the engine.
func (g *Game) applyDescentScale() {
	scale := g.cfg.Physics.DescentMultiplier
	if scale <= 0 {
		scale = 1
	}
	if g.mode == ModeEndless {
		scale = g.difficulty.Speed(scale, g.round.Score(), g.tickCount)
	}
	g.round.ScaleDescent(scale)
}

// handleEvents reacts to engine lifecycle events.
func (g *Game) handleEvents(events []bubble.Event) {
	for _, e := range events {
		switch ev := e.(type) {
		case bubble.ComboAchieved:
			if ev.Chain > g.maxCombo {
				g.maxCombo = ev.Chain
			}

		case bubble.LifeLost:
			if ev.Remaining <= 0 {
				g.state = StateGameOver
			}

		case bubble.RoundWon:
			g.state = StateCleared
			g.clearedDelay = clearedDelayTicks
		}
	}
}

// startNextLevel advances the campaign or cycles the endless rotation.
func (g *Game) startNextLevel() {
	next := g.levelIndex + 1

	if g.mode == ModeCampaign {
		if next >= bubble.LevelCount() {
			g.state = StateWin
			return
		}
	} else if next >= bubble.LevelCount() {
		next = 0
		g.endlessCycle++
	}

	g.levelIndex = next
	g.round.NextLevel(bubble.Levels[g.levelIndex])
	g.applyDescentScale()
	g.state = StatePlaying
}

// MaxCombo returns the longest combo chain achieved this session.
func (g *Game) MaxCombo() int {
	return g.maxCombo
}

// LevelNumber returns the 1-based display level, counting endless cycles.
func (g *Game) LevelNumber() int {
	return g.endlessCycle*bubble.LevelCount() + g.levelIndex + 1
}

// LevelName returns the display name of the current level.
func (g *Game) LevelName() string {
	return bubble.Levels[g.levelIndex].Name
}

// Won reports whether the campaign has been completed.
func (g *Game) Won() bool {
	return g.state == StateWin
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	lives := 0
	if g.round != nil {
		score = g.round.Score()
		lives = g.round.Lives()
	}
	return core.GameState{
		Score:    score,
		Lives:    lives,
		Level:    g.LevelNumber(),
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Register the game modes with the registry
func init() {
	registry.Register("hexpop", func() registry.Game {
		return New()
	})
	registry.Register("hexpop_endless", func() registry.Game {
		return NewEndless()
	})
}

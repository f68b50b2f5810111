// Package blockfall implements the falling-block game on top of the engine
// package. It adapts the pure engine to the registry.Game interface: input
// frames become edge-detected piece controls, and the board is drawn into a
// core.Screen for the terminal UI.
package blockfall

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game for one blockfall variant.
type Game struct {
	variant string
	cfg     config.BlockfallConfig
	runtime core.RuntimeConfig
	log     *log.Logger

	state *engine.State
	edges engine.EdgeDetector

	// Previous levels of the non-piece controls, for edge detection.
	prevPause   bool
	prevRestart bool

	paused   bool
	tooSmall bool
}

// New creates a game for the given variant. Unknown variants fall back to
// the display variant's settings.
func New(variant string) *Game {
	cfg, err := config.DefaultBlockfallConfig(variant)
	if err != nil {
		cfg, _ = config.DefaultBlockfallConfig(config.VariantDisplay)
	}
	return &Game{
		variant: variant,
		cfg:     cfg,
		log:     logger.With("variant", variant),
	}
}

func init() {
	registry.Register(config.VariantDisplay, func() registry.Game {
		return New(config.VariantDisplay)
	})
	registry.Register(config.VariantMock, func() registry.Game {
		return New(config.VariantMock)
	})
}

// ID returns the variant ID.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == config.VariantMock {
		return "Blockfall (Mock Display)"
	}
	return "Blockfall"
}

// Reset loads the configuration and starts a fresh game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.log = logger.With("variant", g.variant)

	cfg, source, err := config.LoadBlockfall(g.variant, configPath)
	if err != nil {
		g.log.Warn("falling back to default config", "err", err)
		cfg, _ = config.DefaultBlockfallConfig(g.variant)
		source = "default"
	}

	if difficultyPreset != "" {
		config.ApplyBlockfallPreset(&cfg, difficultyPreset)
	}
	if rt.Seed != 0 {
		cfg.Sequencer.Seed = rt.Seed
	}

	ec, err := cfg.Engine()
	if err == nil {
		g.state, err = engine.New(ec)
	}
	if err != nil {
		g.log.Warn("invalid engine config, using defaults", "err", err)
		cfg, _ = config.DefaultBlockfallConfig(g.variant)
		ec, _ = cfg.Engine()
		g.state, _ = engine.New(ec)
	}
	g.cfg = cfg

	g.edges.Reset()
	g.prevPause, g.prevRestart = false, false
	g.paused = false

	g.log.Info("game started",
		"config", source,
		"width", ec.Width, "height", ec.Height,
		"gravity", ec.GravityEvery,
		"rotation", ec.Rotation,
		"seed", ec.Seed)
}

// Step advances the game by one tick. The frame holds the controls that are
// down this tick; presses are detected on the transition.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state == nil {
		g.Reset(g.runtime)
	}

	pause := in.Has(core.ActionPause)
	restart := in.Has(core.ActionRestart)
	pausePressed := pause && !g.prevPause
	restartPressed := restart && !g.prevRestart
	g.prevPause, g.prevRestart = pause, restart

	var events []string
	if restartPressed {
		g.state.Reset()
		g.edges.Reset()
		g.paused = false
		g.log.Info("board reset by player", "resets", g.state.Resets)
		events = append(events, "restart")
	}
	if pausePressed {
		g.paused = !g.paused
	}

	// Sampled even while halted, so a control held across unpause is
	// not seen as a fresh press.
	edges := g.edges.Edges(engine.Input{
		Left:   in.Has(core.ActionLeft),
		Right:  in.Has(core.ActionRight),
		Rotate: in.Has(core.ActionRotate),
	})
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State(), Events: events}
	}

	res := g.state.Step(edges)
	events = append(events, res.Event.String())
	if res.BlockedHorizontal {
		events = append(events, "blocked_horizontal")
	}
	if res.BlockedRotation {
		events = append(events, "blocked_rotation")
	}

	switch res.Event {
	case engine.EventCommitted:
		g.log.Debug("placed piece",
			"kind", res.Landed.Kind,
			"x", res.Landed.Pos.X, "y", res.Landed.Pos.Y,
			"rotation", res.Landed.Rotation,
			"next", res.Next)
	case engine.EventReset:
		g.log.Info("board full, resetting",
			"tick", g.state.Tick,
			"resets", g.state.Resets)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Placed: g.state.Placed,
		Resets: g.state.Resets,
		Paused: g.paused,
	}
}

// Canvas returns the board size.
func (g *Game) Canvas() (w, h int) {
	return g.cfg.Board.Width, g.cfg.Board.Height
}

// Project writes the board and falling piece into dst.
func (g *Game) Project(dst []core.Color) {
	if g.state == nil {
		clear(dst)
		return
	}
	g.state.Project(dst)
}

// TickInterval returns the configured step interval, or the runtime tick
// rate when one was given.
func (g *Game) TickInterval() time.Duration {
	if g.runtime.TickRate > 0 {
		return time.Second / time.Duration(g.runtime.TickRate)
	}
	return g.cfg.Interval()
}

// Snapshot returns the engine snapshot for determinism checks.
func (g *Game) Snapshot() engine.Snapshot {
	if g.state == nil {
		return engine.Snapshot{}
	}
	return g.state.Snapshot()
}

// Config returns the configuration in effect.
func (g *Game) Config() config.BlockfallConfig {
	return g.cfg
}

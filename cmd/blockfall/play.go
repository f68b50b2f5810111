package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/display/ansi"
	"github.com/vovakirdan/blockfall/internal/display/mmio"
	"github.com/vovakirdan/blockfall/internal/display/window"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/keyboard"
	"github.com/vovakirdan/blockfall/internal/platform/loop"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Display names accepted by --display.
const (
	displayTUI    = "tui"
	displayANSI   = "ansi"
	displayMMIO   = "mmio"
	displayWindow = "window"
)

var (
	flagDisplay string
	flagTicks   uint64
	flagNoInput bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (default: blockfall).

Displays:
  tui     - Full-screen terminal UI (default)
  ansi    - Coloured '#' frames printed one after another
  mmio    - Emulated memory-mapped panel, mirrored as ansi frames
  window  - Desktop window

Controls:
  Left/A, Right/D  - Move
  Up/W/Space       - Rotate
  P                - Pause
  R                - Reset the board
  Q/Ctrl+C         - Quit

Examples:
  blockfall play
  blockfall play blockfall_mock --display ansi
  blockfall play --display mmio --ticks 300 --no-input
  blockfall play --display window --preset easy
  blockfall play --config ./my-blockfall.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDisplay, "display", displayTUI, "Display: tui, ansi, mmio, window")
	playCmd.Flags().Uint64Var(&flagTicks, "ticks", 0, "Stop after this many ticks (ansi, mmio; 0 = unlimited)")
	playCmd.Flags().BoolVar(&flagNoInput, "no-input", false, "Do not read the keyboard (ansi, mmio)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := config.VariantDisplay
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		exitErr("unknown variant %q\nRun 'blockfall list' to see available variants.", gameID)
	}

	switch flagDisplay {
	case displayTUI, displayANSI, displayMMIO, displayWindow:
	default:
		exitErr("unknown display %q (want tui, ansi, mmio or window)", flagDisplay)
	}

	logger, closeLog, err := newLogger(flagDisplay != displayWindow)
	if err != nil {
		exitErr("%v", err)
	}
	defer closeLog()

	if err := setupGames(logger); err != nil {
		exitErr("%v", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		exitErr("creating variant: %v", err)
	}

	cfg := runtimeConfig()
	logger.Info("starting", "variant", gameID, "display", flagDisplay)

	switch flagDisplay {
	case displayTUI:
		err = tui.Run(game, cfg, logger)
	case displayWindow:
		game.Reset(cfg)
		err = window.Run(game, game.TickInterval(), logger)
	default:
		err = runLoop(game, cfg, logger)
	}
	if err != nil {
		logger.Error("run failed", "err", err)
		closeLog()
		exitErr("running %s: %v", gameID, err)
	}
}

// runLoop plays on the ansi or mmio display until quit, a tick limit or a
// signal.
func runLoop(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game.Reset(cfg)
	w, h := game.Canvas()

	var keys *keyboard.Source
	if !flagNoInput {
		var err error
		if keys, err = keyboard.Open(); err != nil {
			return err
		}
		defer keys.Close()
	}

	// With the keyboard open the terminal is raw: frames redraw in place and
	// need explicit carriage returns. Without it frames scroll, so output can
	// be piped.
	interactive := keys != nil
	screen := ansi.New(w, h, ansi.Options{Home: interactive, CRLF: interactive})

	l := &loop.Loop{
		Game:     game,
		MaxTicks: flagTicks,
		Logger:   logger,
	}
	if keys != nil {
		l.Source = keys
	}

	switch flagDisplay {
	case displayANSI:
		l.Sink = screen
	case displayMMIO:
		bus := mmio.NewMemBus(w, h)
		strobe := time.Microsecond
		if bf, ok := game.(*blockfall.Game); ok {
			strobe = bf.Config().StrobeDelay()
		}
		driver, err := mmio.NewDriver(bus, w, h, strobe)
		if err != nil {
			return err
		}
		l.Sink = loop.MultiSink{driver, panelMirror{bus: bus, screen: screen}}
		if keys != nil {
			l.Source = panelInput{keys: keys, bus: bus}
		}
		defer func() {
			logger.Info("panel stats", "latched", bus.Latched(), "dropped", bus.Dropped())
		}()
	}

	return l.Run(ctx)
}

// panelMirror prints what the emulated panel latched, not what was sent.
type panelMirror struct {
	bus    *mmio.MemBus
	screen *ansi.Display
}

func (m panelMirror) Show([]core.Color) error {
	return m.screen.Show(m.bus.Frame())
}

// panelInput presses the panel buttons from the keyboard and reads them
// back through the button register. Keys without a button pass through.
type panelInput struct {
	keys *keyboard.Source
	bus  *mmio.MemBus
}

func (p panelInput) Poll() (core.InputFrame, error) {
	f, err := p.keys.Poll()
	if err != nil {
		return f, err
	}
	p.bus.SetButtons(mmio.ButtonBits(f))

	out, err := mmio.ButtonSource{Bus: p.bus}.Poll()
	if err != nil {
		return out, err
	}
	for _, a := range []core.Action{core.ActionPause, core.ActionRestart, core.ActionQuit} {
		if f.Has(a) {
			out.Set(a)
		}
	}
	return out, nil
}

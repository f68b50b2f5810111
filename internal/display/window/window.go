// Package window shows a game in a desktop window using ebiten.
package window

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// CellSize is the edge length of one board cell in pixels.
const CellSize = 24

// Palette maps the display palette to window colours.
var Palette = [core.PaletteSize]color.RGBA{
	core.ColorBlack:  {16, 16, 20, 255},
	core.ColorRed:    {220, 50, 47, 255},
	core.ColorOrange: {255, 140, 0, 255},
	core.ColorYellow: {240, 220, 60, 255},
	core.ColorGreen:  {80, 200, 90, 255},
	core.ColorCyan:   {60, 200, 220, 255},
	core.ColorPurple: {150, 80, 200, 255},
	core.ColorPink:   {250, 120, 190, 255},
}

var gridColor = color.RGBA{40, 40, 48, 255}

// keys lists the physical keys sampled for each action.
var keys = map[core.Action][]ebiten.Key{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionRotate:  {ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyQ, ebiten.KeyEscape},
}

// Window implements ebiten.Game. Every Update is one game tick; the tick
// rate is set from the game's interval.
type Window struct {
	game   registry.Game
	log    *log.Logger
	frame  []core.Color
	width  int
	height int
	ticks  uint64
}

// New creates a window for an already reset game.
func New(game registry.Game, logger *log.Logger) *Window {
	w, h := game.Canvas()
	return &Window{
		game:   game,
		log:    logger,
		frame:  make([]core.Color, w*h),
		width:  w,
		height: h,
	}
}

// Sample reads the held keys into an input frame.
func Sample() core.InputFrame {
	f := core.NewInputFrame()
	for action, ks := range keys {
		for _, k := range ks {
			if ebiten.IsKeyPressed(k) {
				f.Set(action)
				break
			}
		}
	}
	return f
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	in := Sample()
	if in.Has(core.ActionQuit) {
		w.log.Info("window closed", "ticks", w.ticks)
		return ebiten.Termination
	}
	w.game.Step(in)
	w.game.Project(w.frame)
	w.ticks++
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(gridColor)
	for y := range w.height {
		for x := range w.width {
			c := w.frame[y*w.width+x]
			if !c.InPalette() {
				c = core.ColorBlack
			}
			vector.DrawFilledRect(screen,
				float32(x*CellSize+1), float32(y*CellSize+1),
				CellSize-2, CellSize-2,
				Palette[c], false)
		}
	}
}

// Layout implements ebiten.Game.
func (w *Window) Layout(int, int) (int, int) {
	return w.width * CellSize, w.height * CellSize
}

// TPS converts a tick interval to ticks per second, at least 1.
func TPS(interval time.Duration) int {
	if interval <= 0 {
		return ebiten.DefaultTPS
	}
	return max(int(time.Second/interval), 1)
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, interval time.Duration, logger *log.Logger) error {
	w := New(game, logger)
	w.game.Project(w.frame)

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(w.width*CellSize, w.height*CellSize)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(TPS(interval))

	logger.Info("window opened", "game", game.ID(), "tps", TPS(interval))
	return ebiten.RunGame(w)
}

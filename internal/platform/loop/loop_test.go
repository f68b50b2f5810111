package loop

import (
	"context"
	"errors"
	"maps"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

type countingGame struct {
	steps  int
	frames []core.InputFrame
}

func (g *countingGame) ID() string                  { return "counting" }
func (g *countingGame) Title() string               { return "Counting" }
func (g *countingGame) Reset(core.RuntimeConfig)    {}
func (g *countingGame) Render(*core.Screen)         {}
func (g *countingGame) State() core.GameState       { return core.GameState{} }
func (g *countingGame) Canvas() (int, int)          { return 3, 2 }
func (g *countingGame) TickInterval() time.Duration { return time.Millisecond }

func (g *countingGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.frames = append(g.frames, core.InputFrame{Actions: maps.Clone(in.Actions)})
	return core.StepResult{}
}

// Project writes the step count into the first cell.
func (g *countingGame) Project(dst []core.Color) {
	clear(dst)
	dst[0] = core.Color(g.steps % int(core.PaletteSize))
}

type recordingSink struct {
	shown   [][]core.Color
	failAt  int
	failErr error
}

func (s *recordingSink) Show(frame []core.Color) error {
	if s.failErr != nil && len(s.shown) == s.failAt {
		return s.failErr
	}
	s.shown = append(s.shown, append([]core.Color(nil), frame...))
	return nil
}

func frameOf(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestRunMaxTicks(t *testing.T) {
	g := &countingGame{}
	sink := &recordingSink{}
	l := &Loop{Game: g, Sink: sink, MaxTicks: 5}

	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, 5, g.steps)
	require.Len(t, sink.shown, 6, "initial frame plus one per tick")
	for i, f := range sink.shown {
		assert.Len(t, f, 6)
		assert.Equal(t, core.Color(i), f[0])
	}
}

func TestRunQuitStopsBeforeStep(t *testing.T) {
	g := &countingGame{}
	polls := 0
	src := SourceFunc(func() (core.InputFrame, error) {
		polls++
		if polls == 3 {
			return frameOf(core.ActionQuit), nil
		}
		return frameOf(core.ActionLeft), nil
	})
	l := &Loop{Game: g, Source: src, Sink: &recordingSink{}}

	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, 2, g.steps)
	assert.True(t, g.frames[0].Has(core.ActionLeft))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := &countingGame{}
	l := &Loop{Game: g, Sink: &recordingSink{}, Interval: time.Hour}
	require.NoError(t, l.Run(ctx))
	assert.Zero(t, g.steps)
}

func TestRunPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")

	sink := &recordingSink{failAt: 2, failErr: boom}
	err := (&Loop{Game: &countingGame{}, Sink: sink}).Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "loop: show frame")

	src := SourceFunc(func() (core.InputFrame, error) { return core.InputFrame{}, boom })
	err = (&Loop{Game: &countingGame{}, Source: src, Sink: &recordingSink{}}).Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "loop: poll input")

	err = (&Loop{Game: &countingGame{}}).Run(context.Background())
	assert.Error(t, err)
}

func TestMultiSourceMerges(t *testing.T) {
	a := SourceFunc(func() (core.InputFrame, error) { return frameOf(core.ActionLeft), nil })
	b := SourceFunc(func() (core.InputFrame, error) { return frameOf(core.ActionRotate), nil })

	f, err := MultiSource{a, b}.Poll()
	require.NoError(t, err)
	assert.True(t, f.Has(core.ActionLeft))
	assert.True(t, f.Has(core.ActionRotate))
	assert.False(t, f.Has(core.ActionRight))
}

func TestMultiSinkStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	first := &recordingSink{failErr: boom}
	second := &recordingSink{}

	err := MultiSink{first, second}.Show([]core.Color{core.ColorRed})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, second.shown)
}

// Package loop runs a game against a raw input source and a colour-buffer
// display at a fixed interval, without a terminal UI framework.
package loop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Source supplies the input levels for one tick. Poll must not block.
type Source interface {
	Poll() (core.InputFrame, error)
}

// Sink shows one projected frame (row-major, canvas sized).
type Sink interface {
	Show(frame []core.Color) error
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (core.InputFrame, error)

// Poll calls f.
func (f SourceFunc) Poll() (core.InputFrame, error) { return f() }

// MultiSource merges the frames of several sources.
type MultiSource []Source

// Poll polls every source and merges their actions.
func (m MultiSource) Poll() (core.InputFrame, error) {
	out := core.NewInputFrame()
	for _, s := range m {
		f, err := s.Poll()
		if err != nil {
			return out, err
		}
		out.Merge(f)
	}
	return out, nil
}

// MultiSink shows every frame on each sink in order.
type MultiSink []Sink

// Show forwards the frame, stopping at the first error.
func (m MultiSink) Show(frame []core.Color) error {
	for _, s := range m {
		if err := s.Show(frame); err != nil {
			return err
		}
	}
	return nil
}

// Loop drives Game at a fixed Interval: poll, step, project, show, wait.
type Loop struct {
	Game     registry.Game
	Source   Source // nil means no input
	Sink     Sink
	Interval time.Duration // 0 means Game.TickInterval()
	MaxTicks uint64        // 0 means run until cancelled or quit
	Logger   *log.Logger
}

// Run shows the initial frame, then ticks until ctx is cancelled, the source
// reports ActionQuit or MaxTicks is reached. The game must already be Reset.
func (l *Loop) Run(ctx context.Context) error {
	if l.Game == nil || l.Sink == nil {
		return errors.New("loop: game and sink are required")
	}
	logger := l.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	interval := l.Interval
	if interval <= 0 {
		interval = l.Game.TickInterval()
	}

	w, h := l.Game.Canvas()
	frame := make([]core.Color, w*h)
	l.Game.Project(frame)
	if err := l.Sink.Show(frame); err != nil {
		return fmt.Errorf("loop: show frame: %w", err)
	}

	logger.Info("loop started", "game", l.Game.ID(), "interval", interval, "canvas", fmt.Sprintf("%dx%d", w, h))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var ticks uint64
	for {
		select {
		case <-ctx.Done():
			logger.Info("loop stopped", "ticks", ticks, "reason", ctx.Err())
			return nil
		case <-ticker.C:
		}

		in := core.NewInputFrame()
		if l.Source != nil {
			var err error
			if in, err = l.Source.Poll(); err != nil {
				return fmt.Errorf("loop: poll input: %w", err)
			}
		}
		if in.Has(core.ActionQuit) {
			logger.Info("loop stopped", "ticks", ticks, "reason", "quit")
			return nil
		}

		l.Game.Step(in)
		l.Game.Project(frame)
		if err := l.Sink.Show(frame); err != nil {
			logger.Error("display failed", "tick", ticks, "err", err)
			return fmt.Errorf("loop: show frame: %w", err)
		}

		ticks++
		if l.MaxTicks > 0 && ticks >= l.MaxTicks {
			logger.Info("loop stopped", "ticks", ticks, "reason", "tick limit")
			return nil
		}
	}
}

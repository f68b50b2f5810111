// Package keyboard reads raw key events from the terminal for the
// non-TUI display loops.
package keyboard

import (
	"errors"
	"fmt"

	"github.com/eiannone/keyboard"

	"github.com/vovakirdan/blockfall/internal/core"
)

// eventBuffer is the capacity of the key event channel.
const eventBuffer = 20

// ErrClosed is returned by Poll once the event channel has been closed.
var ErrClosed = errors.New("keyboard: event channel closed")

// Source turns key events into input frames. Events are pushed by the
// keyboard library's goroutine and drained without blocking on Poll, so every
// press seen since the previous poll is active for exactly one frame.
type Source struct {
	events <-chan keyboard.KeyEvent
	close  func() error
}

// Open puts the terminal in raw mode and starts listening for keys.
func Open() (*Source, error) {
	events, err := keyboard.GetKeys(eventBuffer)
	if err != nil {
		return nil, fmt.Errorf("keyboard: cannot open: %w", err)
	}
	return &Source{events: events, close: keyboard.Close}, nil
}

// NewSource wraps an existing event channel.
func NewSource(events <-chan keyboard.KeyEvent) *Source {
	return &Source{events: events}
}

// Poll drains the pending events into a frame.
func (s *Source) Poll() (core.InputFrame, error) {
	frame := core.NewInputFrame()
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return frame, ErrClosed
			}
			if ev.Err != nil {
				return frame, fmt.Errorf("keyboard: %w", ev.Err)
			}
			if a := Action(ev); a != core.ActionNone {
				frame.Set(a)
			}
		default:
			return frame, nil
		}
	}
}

// Close restores the terminal.
func (s *Source) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Action maps a key event to a game action.
func Action(ev keyboard.KeyEvent) core.Action {
	switch {
	case ev.Key == keyboard.KeyCtrlC || ev.Key == keyboard.KeyEsc || ev.Rune == 'q':
		return core.ActionQuit
	case ev.Key == keyboard.KeyArrowLeft || ev.Rune == 'a':
		return core.ActionLeft
	case ev.Key == keyboard.KeyArrowRight || ev.Rune == 'd':
		return core.ActionRight
	case ev.Key == keyboard.KeyArrowUp || ev.Key == keyboard.KeySpace || ev.Rune == 'w':
		return core.ActionRotate
	case ev.Rune == 'p':
		return core.ActionPause
	case ev.Rune == 'r':
		return core.ActionRestart
	}
	return core.ActionNone
}

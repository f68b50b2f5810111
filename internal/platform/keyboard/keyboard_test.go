package keyboard

import (
	"errors"
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestAction(t *testing.T) {
	tests := []struct {
		name string
		ev   keyboard.KeyEvent
		want core.Action
	}{
		{"arrow left", keyboard.KeyEvent{Key: keyboard.KeyArrowLeft}, core.ActionLeft},
		{"a", keyboard.KeyEvent{Rune: 'a'}, core.ActionLeft},
		{"arrow right", keyboard.KeyEvent{Key: keyboard.KeyArrowRight}, core.ActionRight},
		{"d", keyboard.KeyEvent{Rune: 'd'}, core.ActionRight},
		{"arrow up", keyboard.KeyEvent{Key: keyboard.KeyArrowUp}, core.ActionRotate},
		{"space", keyboard.KeyEvent{Key: keyboard.KeySpace}, core.ActionRotate},
		{"p", keyboard.KeyEvent{Rune: 'p'}, core.ActionPause},
		{"r", keyboard.KeyEvent{Rune: 'r'}, core.ActionRestart},
		{"ctrl+c", keyboard.KeyEvent{Key: keyboard.KeyCtrlC}, core.ActionQuit},
		{"q", keyboard.KeyEvent{Rune: 'q'}, core.ActionQuit},
		{"other", keyboard.KeyEvent{Rune: 'z'}, core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Action(tt.ev))
		})
	}
}

func TestPollDrainsWithoutBlocking(t *testing.T) {
	ch := make(chan keyboard.KeyEvent, 4)
	src := NewSource(ch)

	f, err := src.Poll()
	require.NoError(t, err)
	assert.Empty(t, f.Actions)

	ch <- keyboard.KeyEvent{Key: keyboard.KeyArrowLeft}
	ch <- keyboard.KeyEvent{Rune: 'w'}
	f, err = src.Poll()
	require.NoError(t, err)
	assert.True(t, f.Has(core.ActionLeft))
	assert.True(t, f.Has(core.ActionRotate))

	f, err = src.Poll()
	require.NoError(t, err)
	assert.False(t, f.Has(core.ActionLeft), "a press lasts one poll")

	require.NoError(t, src.Close())
}

func TestPollErrors(t *testing.T) {
	boom := errors.New("tty gone")
	ch := make(chan keyboard.KeyEvent, 1)
	ch <- keyboard.KeyEvent{Err: boom}
	_, err := NewSource(ch).Poll()
	require.ErrorIs(t, err, boom)

	closed := make(chan keyboard.KeyEvent)
	close(closed)
	_, err = NewSource(closed).Poll()
	require.ErrorIs(t, err, ErrClosed)
}

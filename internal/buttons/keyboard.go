package buttons

import (
	"context"
	"sync"

	"github.com/rook-computer/watchface/internal/system"
)

// Linux input-event-codes.h
const (
	keyEsc       = 1
	keyEnter     = 28
	keyBackspace = 14
	keyUp        = 103
	keyDown      = 108
)

var keyEvents = map[uint16]Event{
	keyEsc:       Back,
	keyBackspace: Back,
	keyEnter:     Select,
	keyUp:        Up,
	keyDown:      Down,
}

// KeyboardButtons maps evdev key presses onto the four watch buttons.
type KeyboardButtons struct {
	Logger system.Logger

	ch     chan Event
	cancel context.CancelFunc
	once   sync.Once
}

func NewKeyboardButtons(logger system.Logger) *KeyboardButtons {
	return &KeyboardButtons{Logger: logger, ch: make(chan Event, 8)}
}

func (k *KeyboardButtons) Start(ctx context.Context) error {
	watchCtx, cancel := context.WithCancel(ctx)
	k.cancel = cancel
	codes := make([]uint16, 0, len(keyEvents))
	for code := range keyEvents {
		codes = append(codes, code)
	}
	system.WatchKeys(watchCtx, k.Logger, codes, func(code uint16) {
		ev, ok := keyEvents[code]
		if !ok {
			return
		}
		select {
		case k.ch <- ev:
		default:
		}
	})
	return nil
}

func (k *KeyboardButtons) Stop() error {
	if k.cancel != nil {
		k.cancel()
	}
	return nil
}

func (k *KeyboardButtons) Events() <-chan Event { return k.ch }

package terminal

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/retroenv/retrochip8/internal/machine"
)

// DefaultHoldTime is how long a key counts as pressed after its last input byte.
// Terminals report no key releases, auto repeat refreshes held keys.
const DefaultHoldTime = 150 * time.Millisecond

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03
)

// keyMap maps the left hand block of a QWERTY keyboard onto the hex keypad:
//
//	1 2 3 4      1 2 3 C
//	q w e r  ->  4 5 6 D
//	a s d f      7 8 9 E
//	z x c v      A 0 B F
var keyMap = map[byte]byte{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

// MapKey returns the keypad key for a host input byte. Upper case letters map like lower case ones.
func MapKey(b byte) (byte, bool) {
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	key, ok := keyMap[b]
	return key, ok
}

// Keyboard is a key input source reading host key presses from a terminal input.
// Input bytes are read on a separate goroutine and handed over through a channel,
// the key state itself is only touched by the goroutine calling Keys.
type Keyboard struct {
	input  io.Reader
	hold   time.Duration
	now    func() time.Time
	events chan byte
	quit   atomic.Bool

	lastPress [machine.KeyCount]time.Time
}

// NewKeyboard returns a keyboard reading from the given input.
func NewKeyboard(input io.Reader, hold time.Duration) *Keyboard {
	return &Keyboard{
		input:  input,
		hold:   hold,
		now:    time.Now,
		events: make(chan byte, 64),
	}
}

// Start reads input until the context is cancelled or the input fails.
func (k *Keyboard) Start(ctx context.Context) {
	go k.read(ctx)
}

func (k *Keyboard) read(ctx context.Context) {
	buf := make([]byte, 16)
	for ctx.Err() == nil {
		n, err := k.input.Read(buf)
		for _, b := range buf[:n] {
			if b == keyEscape || b == keyCtrlC {
				k.quit.Store(true)
				continue
			}
			select {
			case k.events <- b:
			default: // drop input while the emulation is not consuming it
			}
		}

		switch {
		case errors.Is(err, io.EOF):
			// a raw terminal with a read timeout reports EOF when no key was pressed
			time.Sleep(10 * time.Millisecond)
		case err != nil:
			return
		}
	}
}

// Keys returns the current keypad state. It must be called between cycles.
func (k *Keyboard) Keys() machine.Keys {
	now := k.now()
drain:
	for {
		select {
		case b := <-k.events:
			if key, ok := MapKey(b); ok {
				k.lastPress[key] = now
			}
		default:
			break drain
		}
	}

	var keys machine.Keys
	for key, pressed := range k.lastPress {
		keys[key] = !pressed.IsZero() && now.Sub(pressed) < k.hold
	}
	return keys
}

// QuitRequested returns whether escape or Ctrl-C was pressed.
func (k *Keyboard) QuitRequested() bool {
	return k.quit.Load()
}

// NoInput is a key input source without any pressed keys.
type NoInput struct{}

// Keys implements the key input source.
func (NoInput) Keys() machine.Keys { return machine.Keys{} }

// QuitRequested implements the key input source.
func (NoInput) QuitRequested() bool { return false }

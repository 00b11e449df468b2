package machine

import "fmt"

// KeyCount is the number of keys of the hexadecimal keypad.
const KeyCount = 16

// Keys is a snapshot of the pressed state of all keypad keys, indexed by key value 0x0-0xF.
type Keys [KeyCount]bool

// Keypad holds the state of the 16-key hexadecimal input device.
// It is written by the key input source between cycles and only read by the interpreter.
type Keypad struct {
	keys Keys
}

// Set replaces the state of all keys.
func (k *Keypad) Set(keys Keys) {
	k.keys = keys
}

// SetKey sets the pressed state of a single key.
func (k *Keypad) SetKey(key byte, pressed bool) error {
	if int(key) >= KeyCount {
		return fmt.Errorf("key %d: %w", key, ErrOutOfRange)
	}
	k.keys[key] = pressed
	return nil
}

// IsPressed returns whether the given key is currently pressed.
func (k *Keypad) IsPressed(key byte) (bool, error) {
	if int(key) >= KeyCount {
		return false, fmt.Errorf("key %d: %w", key, ErrOutOfRange)
	}
	return k.keys[key], nil
}

// State returns a snapshot of all keys.
func (k *Keypad) State() Keys {
	return k.keys
}

//go:build linux || darwin || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// RawMode holds the terminal state to restore after leaving raw mode.
type RawMode struct {
	fd      int
	restore unix.Termios
}

// EnterRawMode switches the terminal to non-canonical mode without echo.
// Reads return after at most 100ms, also when no key was pressed.
func EnterRawMode(fd int) (*RawMode, error) {
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("reading terminal state: %w", err)
	}

	raw := &RawMode{
		fd:      fd,
		restore: *termios,
	}
	termstate := *termios

	termstate.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.INLCR | unix.ICRNL | unix.IXON
	termstate.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.IEXTEN | unix.ISIG
	termstate.Cflag &^= unix.CSIZE | unix.PARENB
	termstate.Cflag |= unix.CS8

	termstate.Cc[unix.VMIN] = 0
	termstate.Cc[unix.VTIME] = 1

	if err := unix.IoctlSetTermios(fd, ioctlSetTermios, &termstate); err != nil {
		return nil, fmt.Errorf("setting raw terminal state: %w", err)
	}
	return raw, nil
}

// Restore returns the terminal to the state before entering raw mode.
func (r *RawMode) Restore() error {
	if err := unix.IoctlSetTermios(r.fd, ioctlSetTermios, &r.restore); err != nil {
		return fmt.Errorf("restoring terminal state: %w", err)
	}
	return nil
}

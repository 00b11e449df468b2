//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package terminal

// RawMode is not available on this platform.
type RawMode struct{}

// EnterRawMode returns ErrRawModeUnsupported on this platform.
func EnterRawMode(int) (*RawMode, error) {
	return nil, ErrRawModeUnsupported
}

// Restore is a no-op on this platform.
func (r *RawMode) Restore() error {
	return nil
}

package terminal

import "errors"

// ErrRawModeUnsupported is returned on platforms without termios support.
var ErrRawModeUnsupported = errors.New("raw terminal mode not supported on this platform")

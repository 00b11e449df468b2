// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/arch/system/nes/cartridge"
)

// ErrEmptyFile is returned for ROM files without any content.
var ErrEmptyFile = errors.New("empty ROM file")

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads a raw CHIP-8 program image without any header from the given file.
func (l *Loader) Load(fileName string) ([]byte, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", fileName, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading file info %s: %w", fileName, err)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("file %s: %w", fileName, ErrEmptyFile)
	}

	cart, err := cartridge.LoadBuffer(file)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", fileName, err)
	}

	// the buffer loader pads the image to full PRG banks
	size := min(int(info.Size()), len(cart.PRG))
	return cart.PRG[:size], nil
}

// LoadInto reads a program image from the given file and copies it into the machine memory.
// The machine is left without a program if the image does not fit.
func (l *Loader) LoadInto(m *machine.Machine, fileName string) (int, error) {
	program, err := l.Load(fileName)
	if err != nil {
		return 0, err
	}
	if err := m.LoadProgram(program); err != nil {
		return 0, fmt.Errorf("loading program %s: %w", fileName, err)
	}
	return len(program), nil
}

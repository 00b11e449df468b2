package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("load CHIP8 file", func(t *testing.T) {
		data := []byte{0x12, 0x34, 0x56, 0x78}
		tmpFile := createTempFile(t, data)

		program, err := New().Load(tmpFile)
		assert.NoError(t, err)
		if diff := cmp.Diff(data, program); diff != "" {
			t.Errorf("program: (-want, +got)\n%s", diff)
		}
	})

	t.Run("image is not padded to bank size", func(t *testing.T) {
		data := []byte{0x00, 0xE0, 0x12, 0x02, 0xAB}
		tmpFile := createTempFile(t, data)

		program, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, program, len(data))
		if diff := cmp.Diff(data, program); diff != "" {
			t.Errorf("program: (-want, +got)\n%s", diff)
		}
	})

	t.Run("image larger than a bank", func(t *testing.T) {
		data := make([]byte, 16384+10)
		data[len(data)-1] = 0xFF
		tmpFile := createTempFile(t, data)

		program, err := New().Load(tmpFile)
		assert.NoError(t, err)
		assert.Len(t, program, len(data))
		assert.Equal(t, byte(0xFF), program[len(program)-1])
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		_, err := New().Load("/nonexistent/file.ch8")
		assert.Error(t, err)
	})

	t.Run("error on empty file", func(t *testing.T) {
		tmpFile := createTempFile(t, nil)

		_, err := New().Load(tmpFile)
		assert.True(t, errors.Is(err, ErrEmptyFile))
	})
}

func TestLoadInto(t *testing.T) {
	t.Run("program fits", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte{0x60, 0x05, 0x12, 0x02})
		m := machine.New()

		size, err := New().LoadInto(m, tmpFile)
		assert.NoError(t, err)
		assert.Equal(t, 4, size)
		assert.True(t, m.ProgramLoaded())

		b, err := m.ReadMemory(machine.ProgramStart + 2)
		assert.NoError(t, err)
		assert.Equal(t, byte(0x12), b)
	})

	t.Run("program too large", func(t *testing.T) {
		tmpFile := createTempFile(t, make([]byte, machine.MemorySize-machine.ProgramStart+1))
		m := machine.New()

		_, err := New().LoadInto(m, tmpFile)
		assert.True(t, errors.Is(err, machine.ErrProgramTooLarge))
		assert.False(t, m.ProgramLoaded())
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "test.ch8")
	err := os.WriteFile(tmpFile, data, 0o600)
	assert.NoError(t, err)
	return tmpFile
}

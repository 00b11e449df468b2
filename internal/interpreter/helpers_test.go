package interpreter

import (
	"math/rand/v2"
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// newTestInterpreter returns an interpreter with the given instruction words
// loaded at the program start and a fixed random seed.
func newTestInterpreter(t *testing.T, words ...uint16) (*Interpreter, *machine.Machine) {
	t.Helper()

	program := make([]byte, 0, len(words)*2)
	for _, word := range words {
		program = append(program, byte(word>>8), byte(word))
	}

	m := machine.New()
	assert.NoError(t, m.LoadProgram(program))

	it := New(log.NewTestLogger(t), m, WithRandom(rand.New(rand.NewPCG(1, 2))))
	return it, m
}

// step executes a number of cycles and fails the test on any error.
func step(t *testing.T, it *Interpreter, cycles int) {
	t.Helper()

	for range cycles {
		_, err := it.Step()
		assert.NoError(t, err)
	}
}

func register(t *testing.T, m *machine.Machine, x uint8) byte {
	t.Helper()

	v, err := m.Register(x)
	assert.NoError(t, err)
	return v
}

func setRegisters(t *testing.T, m *machine.Machine, values map[uint8]byte) {
	t.Helper()

	for x, v := range values {
		assert.NoError(t, m.SetRegister(x, v))
	}
}

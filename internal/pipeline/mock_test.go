package pipeline

import (
	"github.com/retroenv/retrochip8/internal/machine"
)

type mockKeys struct {
	keys machine.Keys
	quit bool
}

func (m *mockKeys) Keys() machine.Keys { return m.keys }
func (m *mockKeys) QuitRequested() bool { return m.quit }

type mockSink struct {
	frames  [][]byte
	beeps   int
	drawErr error
}

func (m *mockSink) Present(fb *machine.Framebuffer) error {
	if m.drawErr != nil {
		return m.drawErr
	}
	m.frames = append(m.frames, fb.Pixels())
	return nil
}

func (m *mockSink) Beep() error {
	m.beeps++
	return nil
}

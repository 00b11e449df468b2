package interpreter

import (
	"github.com/retroenv/retrogolib/log"
)

// TickTimers decrements the delay and sound timers if they are running.
// A sound timer that expires raises a beep event on the machine.
func (it *Interpreter) TickTimers() {
	m := it.machine
	if dt := m.DelayTimer(); dt > 0 {
		m.SetDelayTimer(dt - 1)
	}
	if st := m.SoundTimer(); st > 0 {
		if st == 1 {
			m.RaiseBeep()
			it.logger.Debug("Beep", log.Uint16("pc", m.PC()))
		}
		m.SetSoundTimer(st - 1)
	}
}

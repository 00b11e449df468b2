package interpreter

import (
	"github.com/retroenv/retrochip8/internal/arch/chip8"
)

// draw composites an N row sprite from memory at I onto the framebuffer at
// (VX, VY) and sets VF to 1 if any lit pixel was turned off, 0 otherwise.
func (it *Interpreter) draw(ins chip8.Instruction) error {
	vx, vy, err := it.registerPair(ins)
	if err != nil {
		return err
	}
	rows, err := it.machine.ReadMemoryRange(int(it.machine.Index()), int(ins.N))
	if err != nil {
		return err
	}

	var flag byte
	if it.machine.Display().DrawSprite(vx, vy, rows) {
		flag = 1
	}
	it.machine.SetFlag(flag)
	return nil
}

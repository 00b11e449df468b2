package interpreter

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

type handler func(it *Interpreter, ins chip8.Instruction) error

// handlers maps every instruction kind to its implementation. A handler
// that does not change it.next lets the program counter advance by 2.
var handlers = [chip8.KindCount]handler{
	chip8.Invalid:               (*Interpreter).invalid,
	chip8.Sys:                   (*Interpreter).sys,
	chip8.ClearScreen:           (*Interpreter).clearScreen,
	chip8.Return:                (*Interpreter).ret,
	chip8.Jump:                  (*Interpreter).jump,
	chip8.Call:                  (*Interpreter).call,
	chip8.SkipEqualImmediate:    (*Interpreter).skipEqualImmediate,
	chip8.SkipNotEqualImmediate: (*Interpreter).skipNotEqualImmediate,
	chip8.SkipEqualRegister:     (*Interpreter).skipEqualRegister,
	chip8.SkipNotEqualRegister:  (*Interpreter).skipNotEqualRegister,
	chip8.LoadImmediate:         (*Interpreter).loadImmediate,
	chip8.AddImmediate:          (*Interpreter).addImmediate,
	chip8.LoadRegister:          (*Interpreter).registerOperation,
	chip8.Or:                    (*Interpreter).registerOperation,
	chip8.And:                   (*Interpreter).registerOperation,
	chip8.Xor:                   (*Interpreter).registerOperation,
	chip8.AddRegister:           (*Interpreter).registerOperation,
	chip8.Subtract:              (*Interpreter).registerOperation,
	chip8.SubtractReverse:       (*Interpreter).registerOperation,
	chip8.ShiftRight:            (*Interpreter).shift,
	chip8.ShiftLeft:             (*Interpreter).shift,
	chip8.LoadIndex:             (*Interpreter).loadIndex,
	chip8.JumpOffset:            (*Interpreter).jumpOffset,
	chip8.Random:                (*Interpreter).random,
	chip8.Draw:                  (*Interpreter).draw,
	chip8.SkipKeyPressed:        (*Interpreter).skipKey,
	chip8.SkipKeyNotPressed:     (*Interpreter).skipKey,
	chip8.LoadDelayTimer:        (*Interpreter).loadDelayTimer,
	chip8.WaitKey:               (*Interpreter).waitKey,
	chip8.SetDelayTimer:         (*Interpreter).setTimer,
	chip8.SetSoundTimer:         (*Interpreter).setTimer,
	chip8.AddIndex:              (*Interpreter).addIndex,
	chip8.LoadFont:              (*Interpreter).loadFont,
	chip8.StoreBCD:              (*Interpreter).storeBCD,
	chip8.StoreRegisters:        (*Interpreter).storeRegisters,
	chip8.LoadRegisters:         (*Interpreter).loadRegisters,
}

func (it *Interpreter) invalid(ins chip8.Instruction) error {
	return fmt.Errorf("$%04X: %w", ins.Opcode, ErrUnknownOpcode)
}

func (it *Interpreter) sys(ins chip8.Instruction) error {
	it.logger.Debug("Ignoring machine code routine call", log.Hex("address", ins.NNN))
	return nil
}

func (it *Interpreter) clearScreen(chip8.Instruction) error {
	it.machine.Display().Clear()
	return nil
}

func (it *Interpreter) ret(chip8.Instruction) error {
	address, err := it.machine.Stack().Pop()
	if err != nil {
		return err
	}
	it.next = address
	return nil
}

func (it *Interpreter) jump(ins chip8.Instruction) error {
	it.next = ins.NNN
	return nil
}

func (it *Interpreter) call(ins chip8.Instruction) error {
	if err := it.machine.Stack().Push(it.next); err != nil {
		return err
	}
	it.next = ins.NNN
	return nil
}

func (it *Interpreter) skipIf(condition bool) {
	if condition {
		it.next += chip8.OpcodeSize
	}
}

func (it *Interpreter) skipEqualImmediate(ins chip8.Instruction) error {
	vx, err := it.machine.Register(ins.X)
	if err != nil {
		return err
	}
	it.skipIf(vx == ins.NN)
	return nil
}

func (it *Interpreter) skipNotEqualImmediate(ins chip8.Instruction) error {
	vx, err := it.machine.Register(ins.X)
	if err != nil {
		return err
	}
	it.skipIf(vx != ins.NN)
	return nil
}

func (it *Interpreter) skipEqualRegister(ins chip8.Instruction) error {
	vx, vy, err := it.registerPair(ins)
	if err != nil {
		return err
	}
	it.skipIf(vx == vy)
	return nil
}

func (it *Interpreter) skipNotEqualRegister(ins chip8.Instruction) error {
	vx, vy, err := it.registerPair(ins)
	if err != nil {
		return err
	}
	it.skipIf(vx != vy)
	return nil
}

func (it *Interpreter) loadImmediate(ins chip8.Instruction) error {
	return it.machine.SetRegister(ins.X, ins.NN)
}

// addImmediate wraps around without touching the flag register.
func (it *Interpreter) addImmediate(ins chip8.Instruction) error {
	vx, err := it.machine.Register(ins.X)
	if err != nil {
		return err
	}
	return it.machine.SetRegister(ins.X, vx+ins.NN)
}

// registerOperation executes the 8XYn group except for the shifts.
// The result is written to VX before the flag is written to VF, so with
// X == F the flag wins.
func (it *Interpreter) registerOperation(ins chip8.Instruction) error {
	vx, vy, err := it.registerPair(ins)
	if err != nil {
		return err
	}

	var result byte
	setFlag := true
	var flag byte

	switch ins.Kind {
	case chip8.LoadRegister:
		result, setFlag = vy, false
	case chip8.Or:
		result, setFlag = vx|vy, false
	case chip8.And:
		result, setFlag = vx&vy, false
	case chip8.Xor:
		result, setFlag = vx^vy, false
	case chip8.AddRegister:
		sum := uint16(vx) + uint16(vy)
		result = byte(sum)
		if sum > 0xFF {
			flag = 1
		}
	case chip8.Subtract:
		// flag is 1 when no borrow occurs
		result = vx - vy
		if vy <= vx {
			flag = 1
		}
	case chip8.SubtractReverse:
		result = vy - vx
		if vx <= vy {
			flag = 1
		}
	default:
		return fmt.Errorf("unsupported register operation %s", ins.Kind)
	}

	if err := it.machine.SetRegister(ins.X, result); err != nil {
		return err
	}
	if setFlag {
		it.machine.SetFlag(flag)
	}
	return nil
}

// shift shifts VX by one bit, VY is ignored. The shifted out bit is read
// before VX is written and ends up in VF, which is written last.
func (it *Interpreter) shift(ins chip8.Instruction) error {
	vx, err := it.machine.Register(ins.X)
	if err != nil {
		return err
	}

	var result, flag byte
	if ins.Kind == chip8.ShiftRight {
		result, flag = vx>>1, vx&0x01
	} else {
		result, flag = vx<<1, vx>>7
	}

	if err := it.machine.SetRegister(ins.X, result); err != nil {
		return err
	}
	it.machine.SetFlag(flag)
	return nil
}

func (it *Interpreter) loadIndex(ins chip8.Instruction) error {
	it.machine.SetIndex(ins.NNN)
	return nil
}

func (it *Interpreter) jumpOffset(ins chip8.Instruction) error {
	v0, err := it.machine.Register(0)
	if err != nil {
		return err
	}
	it.next = ins.NNN + uint16(v0)
	return nil
}

func (it *Interpreter) random(ins chip8.Instruction) error {
	value := byte(it.rng.Uint32()) & ins.NN
	return it.machine.SetRegister(ins.X, value)
}

func (it *Interpreter) skipKey(ins chip8.Instruction) error {
	vx, err := it.machine.Register(ins.X)
	if err != nil {
		return err
	}
	pressed, err := it.machine.Keypad().IsPressed(vx)
	if err != nil {
		return err
	}
	if ins.Kind == chip8.SkipKeyPressed {
		it.skipIf(pressed)
	} else {
		it.skipIf(!pressed)
	}
	return nil
}

func (it *Interpreter) loadDelayTimer(ins chip8.Instruction) error {
	return it.machine.SetRegister(ins.X, it.machine.DelayTimer())
}

// waitKey stores the highest pressed key in VX. Without any pressed key the
// program counter stays on this instruction and the cycle reports awaiting input.
func (it *Interpreter) waitKey(ins chip8.Instruction) error {
	pressed := -1
	for key, down := range it.machine.Keypad().State() {
		if down {
			pressed = key
		}
	}
	if pressed < 0 {
		it.next = it.machine.PC()
		it.status = StatusAwaitingInput
		return nil
	}
	return it.machine.SetRegister(ins.X, byte(pressed))
}

func (it *Interpreter) setTimer(ins chip8.Instruction) error {
	vx, err := it.machine.Register(ins.X)
	if err != nil {
		return err
	}
	if ins.Kind == chip8.SetDelayTimer {
		it.machine.SetDelayTimer(vx)
	} else {
		it.machine.SetSoundTimer(vx)
	}
	return nil
}

// addIndex keeps the full 16-bit sum in I and flags a result past the 12-bit address space.
func (it *Interpreter) addIndex(ins chip8.Instruction) error {
	vx, err := it.machine.Register(ins.X)
	if err != nil {
		return err
	}
	sum := uint32(it.machine.Index()) + uint32(vx)
	var flag byte
	if sum > 0xFFF {
		flag = 1
	}
	it.machine.SetIndex(uint16(sum))
	it.machine.SetFlag(flag)
	return nil
}

func (it *Interpreter) loadFont(ins chip8.Instruction) error {
	vx, err := it.machine.Register(ins.X)
	if err != nil {
		return err
	}
	it.machine.SetIndex(machine.GlyphAddress(vx))
	return nil
}

func (it *Interpreter) storeBCD(ins chip8.Instruction) error {
	vx, err := it.machine.Register(ins.X)
	if err != nil {
		return err
	}
	index := int(it.machine.Index())
	digits := [3]byte{vx / 100, (vx / 10) % 10, vx % 10}
	for i, digit := range digits {
		if err := it.machine.WriteMemory(index+i, digit); err != nil {
			return err
		}
	}
	return nil
}

// storeRegisters copies V0-VX to memory at I and advances I past the copied range.
func (it *Interpreter) storeRegisters(ins chip8.Instruction) error {
	index := int(it.machine.Index())
	for x := uint8(0); x <= ins.X; x++ {
		v, err := it.machine.Register(x)
		if err != nil {
			return err
		}
		if err := it.machine.WriteMemory(index+int(x), v); err != nil {
			return err
		}
	}
	it.machine.SetIndex(it.machine.Index() + uint16(ins.X) + 1)
	return nil
}

// loadRegisters fills V0-VX from memory at I and advances I past the copied range.
func (it *Interpreter) loadRegisters(ins chip8.Instruction) error {
	data, err := it.machine.ReadMemoryRange(int(it.machine.Index()), int(ins.X)+1)
	if err != nil {
		return err
	}
	for x, v := range data {
		if err := it.machine.SetRegister(uint8(x), v); err != nil {
			return err
		}
	}
	it.machine.SetIndex(it.machine.Index() + uint16(ins.X) + 1)
	return nil
}

// registerPair returns the values of VX and VY.
func (it *Interpreter) registerPair(ins chip8.Instruction) (byte, byte, error) {
	vx, err := it.machine.Register(ins.X)
	if err != nil {
		return 0, 0, err
	}
	vy, err := it.machine.Register(ins.Y)
	if err != nil {
		return 0, 0, err
	}
	return vx, vy, nil
}

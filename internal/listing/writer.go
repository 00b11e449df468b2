// Package listing implements the assembly listing output of a Chip-8 program image.
package listing

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrogolib/set"
)

const dataBytesPerLine = 8

// Options of the listing writer.
type Options struct {
	OffsetComments bool // append address and opcode bytes as comment
	ZeroBytes      bool // output the trailing zero bytes of the program
}

// Writer writes a linear disassembly of a program image.
type Writer struct {
	writer  io.Writer
	options Options
}

// line is a decoded word of the program or a run of data bytes.
type line struct {
	address uint16
	data    []byte
	ins     chip8.Instruction
	code    bool
}

// New creates a new listing writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		writer:  writer,
		options: options,
	}
}

// Write writes the program image that is loaded at the base address.
// Words that do not decode to an instruction are written as data bytes,
// jump, call and skip targets inside the program get a label and code
// blocks are separated after returns and unconditional jumps.
func (w *Writer) Write(base uint16, program []byte) error {
	program = program[:w.endIndex(program)]
	lines := decode(base, program)
	labels := collectLabels(base, len(program), lines)

	if _, err := fmt.Fprintf(w.writer, "; CHIP-8 program listing\n.org $%03X\n\n", base); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	var blockEnded bool
	for _, l := range lines {
		if blockEnded {
			if _, err := fmt.Fprintln(w.writer); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}
		}
		blockEnded = l.code && (l.ins.IsReturn() || l.ins.IsJump())

		if label, ok := labels[l.address]; ok {
			if _, err := fmt.Fprintf(w.writer, "%s:\n", label); err != nil {
				return fmt.Errorf("writing label %s: %w", label, err)
			}
		}
		if err := w.writeLine(l, labels); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeLine(l line, labels map[uint16]string) error {
	var text string
	if l.code {
		text = "    " + formatInstruction(l.ins, labels)
	} else {
		var buf strings.Builder
		buf.WriteString("    .byte ")
		for i, b := range l.data {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "$%02X", b)
		}
		text = buf.String()
	}

	if !w.options.OffsetComments {
		if _, err := fmt.Fprintf(w.writer, "%s\n", text); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
		return nil
	}

	comment := fmt.Sprintf("$%04X", l.address)
	if l.code {
		comment += fmt.Sprintf(" %02X %02X", l.data[0], l.data[1])
	}
	if _, err := fmt.Fprintf(w.writer, "%-32s ; %s\n", text, comment); err != nil {
		return fmt.Errorf("writing line with comment: %w", err)
	}
	return nil
}

// endIndex finds the end of the program after the instruction word that
// contains the last non zero byte.
func (w *Writer) endIndex(program []byte) int {
	if w.options.ZeroBytes {
		return len(program)
	}
	for i := len(program) - 1; i >= 0; i-- {
		if program[i] != 0 {
			end := i + 1
			if end%chip8.OpcodeSize != 0 {
				end = min(end+1, len(program))
			}
			return end
		}
	}
	return 0
}

// decode splits the program into instruction words and runs of data bytes.
func decode(base uint16, program []byte) []line {
	var lines []line
	var data *line

	for offset := 0; offset < len(program); offset += chip8.OpcodeSize {
		address := base + uint16(offset)
		if offset+1 < len(program) {
			word := chip8.Word(program[offset], program[offset+1])
			if ins, err := chip8.Decode(word); err == nil {
				data = nil
				lines = append(lines, line{
					address: address,
					data:    program[offset : offset+2],
					ins:     ins,
					code:    true,
				})
				continue
			}
		}

		end := min(offset+chip8.OpcodeSize, len(program))
		if data == nil || len(data.data) >= dataBytesPerLine {
			lines = append(lines, line{address: address})
			data = &lines[len(lines)-1]
		}
		data.data = append(data.data, program[offset:end]...)
	}
	return lines
}

// collectLabels names the branch targets that point to a line of the program.
func collectLabels(base uint16, size int, lines []line) map[uint16]string {
	starts := set.New[uint16]()
	for _, l := range lines {
		starts.Add(l.address)
	}

	labels := map[uint16]string{}
	for _, l := range lines {
		target, ok := branchTarget(l)
		if !ok || target < base || int(target) >= int(base)+size || !starts.Contains(target) {
			continue
		}

		switch {
		case l.ins.IsCall():
			labels[target] = fmt.Sprintf("_func_%04x", target)
		default:
			if _, ok := labels[target]; !ok {
				labels[target] = fmt.Sprintf("_label_%04x", target)
			}
		}
	}
	return labels
}

// branchTarget returns the static target address of a branching instruction.
// Jumps relative to V0 have no static target.
func branchTarget(l line) (uint16, bool) {
	switch {
	case !l.code:
		return 0, false
	case l.ins.IsSkip():
		return l.address + 2*chip8.OpcodeSize, true
	case l.ins.IsCall(), l.ins.IsJump() && l.ins.Kind != chip8.JumpOffset:
		return l.ins.NNN, true
	default:
		return 0, false
	}
}

// formatInstruction replaces a target address by its label.
func formatInstruction(ins chip8.Instruction, labels map[uint16]string) string {
	if ins.Kind == chip8.Jump || ins.Kind == chip8.Call {
		if label, ok := labels[ins.NNN]; ok {
			return ins.Name() + " " + label
		}
	}
	return ins.String()
}

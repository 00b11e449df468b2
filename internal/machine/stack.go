package machine

import "fmt"

// StackSize is the number of return addresses the call stack can hold.
const StackSize = 16

// Stack is the fixed size call stack holding subroutine return addresses.
type Stack struct {
	slots [StackSize]uint16
	sp    int
}

// Push stores a return address on the stack.
func (s *Stack) Push(address uint16) error {
	if s.sp >= StackSize {
		return fmt.Errorf("pushing $%04X with depth %d: %w", address, s.sp, ErrStackOverflow)
	}
	s.slots[s.sp] = address
	s.sp++
	return nil
}

// Pop removes and returns the most recently pushed return address.
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	return s.slots[s.sp], nil
}

// Depth returns the number of addresses currently on the stack.
func (s *Stack) Depth() int {
	return s.sp
}

func (s *Stack) reset() {
	*s = Stack{}
}

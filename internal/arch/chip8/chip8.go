package chip8

// IsSelfJump returns whether the opcode located at address is an
// unconditional jump to itself. Programs commonly end in such a loop once
// they have nothing left to do.
func IsSelfJump(address, opcode uint16) bool {
	if opcode&0xF000 != 0x1000 {
		return false
	}
	ins, ok := Lookup(opcode)
	return ok && ins.IsJump() && opcode&0x0FFF == address
}

// ControlFlow describes how an opcode changes the program counter.
type ControlFlow int

// Control flow kinds.
const (
	Sequential ControlFlow = iota
	Jump
	Call
	Return
	Skip
)

func (c ControlFlow) String() string {
	switch c {
	case Jump:
		return "jump"
	case Call:
		return "call"
	case Return:
		return "return"
	case Skip:
		return "skip"
	default:
		return "sequential"
	}
}

// Classify returns the control flow kind of the opcode.
func Classify(opcode uint16) ControlFlow {
	ins, ok := Lookup(opcode)
	if !ok {
		return Sequential
	}

	switch {
	case ins.IsJump():
		return Jump
	case ins.IsCall():
		return Call
	case ins.IsReturn():
		return Return
	case ins.IsSkip():
		return Skip
	default:
		return Sequential
	}
}

package translator

import "fmt"

// FrameSize is the number of words a call saves: the return address and
// LCL, ARG, THIS, THAT.
const FrameSize = 5

// savedPointers lists the caller pointers in push order.
var savedPointers = []string{"LCL", "ARG", "THIS", "THAT"}

// ReturnLabel is the label a call to fn resumes at.
func ReturnLabel(fn string, n int) string {
	return fmt.Sprintf("RETURN.%s.%d", fn, n)
}

// function declares fn and zeroes its locals.
func (e *emitter) function(c Function) {
	e.linef("(%s)", c.Name)
	for i := 0; i < c.Locals; i++ {
		e.line("@SP", "A=M", "M=0", "@SP", "M=M+1")
	}
}

// call saves the caller frame, points ARG at the first argument and LCL at
// the new stack top, and jumps to the callee.
func (e *emitter) call(c Call, n int) {
	ret := ReturnLabel(c.Name, n)

	e.linef("@%s", ret)
	e.line("D=A")
	e.pushD()
	for _, reg := range savedPointers {
		e.linef("@%s", reg)
		e.line("D=M")
		e.pushD()
	}

	// ARG = SP - 5 - nArgs
	e.line("@SP", "D=M")
	e.linef("@%d", FrameSize)
	e.line("D=D-A")
	e.linef("@%d", c.Args)
	e.line("D=D-A", "@ARG", "M=D")

	// LCL = SP
	e.line("@SP", "D=M", "@LCL", "M=D")

	e.linef("@%s", c.Name)
	e.line("0;JMP")
	e.linef("(%s)", ret)
}

// ret tears down the callee frame. The frame sits right below LCL. The
// return address is read before *ARG is written, because with no arguments
// ARG points at the slot holding it.
func (e *emitter) ret() {
	e.line("@LCL", "D=M")
	e.linef("@%d", FrameSize)
	e.line("A=D-A", "D=M")
	e.linef("@%s", frameReturn)
	e.line("M=D")

	// *ARG = pop()
	e.popD()
	e.line("@ARG", "A=M", "M=D")

	// SP = ARG + 1
	e.line("@ARG", "D=M+1", "@SP", "M=D")

	// THAT, THIS, ARG, LCL = *(LCL-1) .. *(LCL-4)
	for i := len(savedPointers) - 1; i >= 0; i-- {
		e.line("@LCL", "D=M")
		e.linef("@%d", len(savedPointers)-i)
		e.line("A=D-A", "D=M")
		e.linef("@%s", savedPointers[i])
		e.line("M=D")
	}

	e.linef("@%s", frameReturn)
	e.line("A=M", "0;JMP")
}

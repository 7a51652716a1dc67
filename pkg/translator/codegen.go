package translator

import (
	"fmt"
	"strings"
)

// segmentBase names the base-pointer register of each indirect segment.
var segmentBase = map[Segment]string{
	SegLocal:    "LCL",
	SegArgument: "ARG",
	SegThis:     "THIS",
	SegThat:     "THAT",
}

var arithmeticOps = map[string]string{
	"add": "+",
	"sub": "-",
	"and": "&",
	"or":  "|",
}

var unaryOps = map[string]string{
	"neg": "-",
	"not": "!",
}

const (
	// tempBase is the RAM address of temp 0.
	tempBase = 5
	// scratch holds a computed pop target while the value is fetched.
	scratch = "R13"
	// frameReturn holds the return address while a frame is torn down.
	frameReturn = "R14"
)

type emitter struct {
	lines []string
}

func (e *emitter) line(s ...string) {
	e.lines = append(e.lines, s...)
}

func (e *emitter) linef(format string, args ...any) {
	e.lines = append(e.lines, fmt.Sprintf(format, args...))
}

// pushD pushes the D register.
func (e *emitter) pushD() {
	e.line("@SP", "A=M", "M=D", "@SP", "M=M+1")
}

// popD pops into the D register.
func (e *emitter) popD() {
	e.line("@SP", "AM=M-1", "D=M")
}

// Translate emits the assembly lines for one command. Bootstrap, Call and
// Compare advance the counters in ctx; FileName is read by the static
// segment.
func Translate(cmd Command, ctx *Context) []string {
	e := &emitter{}

	switch c := cmd.(type) {
	case Arithmetic:
		e.line("@SP", "A=M-1", "D=M", "A=A-1")
		e.linef("M=M%sD", arithmeticOps[c.Op])
		e.line("@SP", "M=M-1")
	case Unary:
		e.line("@SP", "A=M-1")
		e.linef("M=%sM", unaryOps[c.Op])
	case Compare:
		e.compare(c, ctx.nextBranch())
	case Push:
		e.push(c, ctx.FileName)
	case Pop:
		e.pop(c, ctx.FileName)
	case Label:
		e.linef("(%s)", c.Name)
	case Goto:
		e.linef("@%s", c.Label)
		e.line("0;JMP")
	case IfGoto:
		e.popD()
		e.linef("@%s", c.Label)
		e.line("D;JNE")
	case Function:
		e.function(c)
	case Call:
		e.call(c, ctx.nextReturn())
	case Return:
		e.ret()
	case Bootstrap:
		e.line("@256", "D=A", "@SP", "M=D")
		e.call(Call{Name: c.Entry}, ctx.nextReturn())
	case Unknown:
	}

	return e.lines
}

// compare computes x-y and branches on its sign. The result overwrites x.
func (e *emitter) compare(c Compare, n int) {
	e.line("@SP", "A=M-1", "D=M", "A=A-1", "D=M-D")
	e.linef("@TRUE%d", n)
	e.linef("D;J%s", strings.ToUpper(c.Op))
	e.line("@SP", "A=M-1", "A=A-1", "M=0")
	e.linef("@END%d", n)
	e.line("0;JMP")
	e.linef("(TRUE%d)", n)
	e.line("@SP", "A=M-1", "A=A-1", "M=-1")
	e.linef("(END%d)", n)
	e.line("@SP", "M=M-1")
}

func (e *emitter) push(c Push, fileName string) {
	switch c.Segment {
	case SegConstant:
		e.linef("@%d", c.Index)
		e.line("D=A")
	case SegLocal, SegArgument, SegThis, SegThat:
		e.linef("@%s", segmentBase[c.Segment])
		e.line("D=M")
		e.linef("@%d", c.Index)
		e.line("A=D+A", "D=M")
	case SegTemp:
		e.linef("@%d", tempBase)
		e.line("D=A")
		e.linef("@%d", c.Index)
		e.line("A=D+A", "D=M")
	case SegPointer:
		e.linef("@%s", pointerRegister(c.Index))
		e.line("D=M")
	case SegStatic:
		e.linef("@%s.%d", fileName, c.Index)
		e.line("D=M")
	default:
		return
	}
	e.pushD()
}

func (e *emitter) pop(c Pop, fileName string) {
	switch c.Segment {
	case SegLocal, SegArgument, SegThis, SegThat:
		e.linef("@%s", segmentBase[c.Segment])
		e.line("D=M")
		e.linef("@%d", c.Index)
		e.line("D=D+A")
		e.popIndirect()
	case SegTemp:
		e.linef("@%d", tempBase)
		e.line("D=A")
		e.linef("@%d", c.Index)
		e.line("D=D+A")
		e.popIndirect()
	case SegPointer:
		e.popD()
		e.linef("@%s", pointerRegister(c.Index))
		e.line("M=D")
	case SegStatic:
		e.popD()
		e.linef("@%s.%d", fileName, c.Index)
		e.line("M=D")
	}
}

// popIndirect pops into the address held in D. The target is parked in the
// scratch register because A is needed to read the stack.
func (e *emitter) popIndirect() {
	e.line("@"+scratch, "M=D")
	e.popD()
	e.line("@"+scratch, "A=M", "M=D")
}

func pointerRegister(index int) string {
	if index == 1 {
		return "THAT"
	}
	return "THIS"
}

package translator

import (
	"fmt"
	"strconv"
	"strings"
)

type Segment string

const (
	SegConstant Segment = "constant"
	SegLocal    Segment = "local"
	SegArgument Segment = "argument"
	SegThis     Segment = "this"
	SegThat     Segment = "that"
	SegPointer  Segment = "pointer"
	SegTemp     Segment = "temp"
	SegStatic   Segment = "static"
)

// Command is one VM instruction. The concrete types form a closed set and
// are dispatched by Translate.
type Command interface {
	String() string
	command()
}

// Arithmetic is add, sub, and or: pops two values and pushes one.
type Arithmetic struct{ Op string }

// Unary is neg or not, applied to the top of the stack in place.
type Unary struct{ Op string }

// Compare is eq, lt or gt. It pushes -1 for true and 0 for false.
type Compare struct{ Op string }

type Push struct {
	Segment Segment
	Index   int
}

type Pop struct {
	Segment Segment
	Index   int
}

type Label struct{ Name string }

type Goto struct{ Label string }

// IfGoto pops the top of the stack and jumps when it is non-zero.
type IfGoto struct{ Label string }

type Function struct {
	Name   string
	Locals int
}

type Call struct {
	Name string
	Args int
}

type Return struct{}

// Bootstrap is synthesized, never parsed: it sets SP and calls Entry.
type Bootstrap struct{ Entry string }

// Unknown is any line that does not parse. It translates to nothing.
type Unknown struct{ Text string }

func (Arithmetic) command() {}
func (Unary) command()      {}
func (Compare) command()    {}
func (Push) command()       {}
func (Pop) command()        {}
func (Label) command()      {}
func (Goto) command()       {}
func (IfGoto) command()     {}
func (Function) command()   {}
func (Call) command()       {}
func (Return) command()     {}
func (Bootstrap) command()  {}
func (Unknown) command()    {}

func (c Arithmetic) String() string { return c.Op }
func (c Unary) String() string      { return c.Op }
func (c Compare) String() string    { return c.Op }
func (c Push) String() string       { return fmt.Sprintf("push %s %d", c.Segment, c.Index) }
func (c Pop) String() string        { return fmt.Sprintf("pop %s %d", c.Segment, c.Index) }
func (c Label) String() string      { return "label " + c.Name }
func (c Goto) String() string       { return "goto " + c.Label }
func (c IfGoto) String() string     { return "if-goto " + c.Label }
func (c Function) String() string   { return fmt.Sprintf("function %s %d", c.Name, c.Locals) }
func (c Call) String() string       { return fmt.Sprintf("call %s %d", c.Name, c.Args) }
func (Return) String() string       { return "return" }
func (c Bootstrap) String() string  { return "bootstrap " + c.Entry }
func (c Unknown) String() string    { return c.Text }

var segments = map[string]Segment{
	"constant": SegConstant,
	"local":    SegLocal,
	"argument": SegArgument,
	"this":     SegThis,
	"that":     SegThat,
	"pointer":  SegPointer,
	"temp":     SegTemp,
	"static":   SegStatic,
}

// Parse classifies one trimmed, comment-free VM line by its leading keyword.
// Anything it cannot make sense of becomes Unknown.
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Unknown{Text: line}
	}

	switch op := fields[0]; op {
	case "add", "sub", "and", "or":
		return Arithmetic{Op: op}
	case "neg", "not":
		return Unary{Op: op}
	case "eq", "lt", "gt":
		return Compare{Op: op}
	case "push", "pop":
		if len(fields) < 3 {
			break
		}
		seg, ok := segments[fields[1]]
		if !ok {
			break
		}
		idx, err := strconv.Atoi(fields[2])
		if err != nil || idx < 0 {
			break
		}
		if op == "push" {
			return Push{Segment: seg, Index: idx}
		}
		return Pop{Segment: seg, Index: idx}
	case "label", "goto", "if-goto":
		if len(fields) < 2 {
			break
		}
		switch op {
		case "label":
			return Label{Name: fields[1]}
		case "goto":
			return Goto{Label: fields[1]}
		default:
			return IfGoto{Label: fields[1]}
		}
	case "function", "call":
		if len(fields) < 3 {
			break
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil || n < 0 {
			break
		}
		if op == "function" {
			return Function{Name: fields[1], Locals: n}
		}
		return Call{Name: fields[1], Args: n}
	case "return":
		return Return{}
	}

	return Unknown{Text: line}
}

package asm

import (
	"fmt"
	"strconv"
	"strings"
)

// Instruction is one of AddressInstruction, ComputeInstruction or
// LabelInstruction.
type Instruction interface {
	Line() int
	String() string
	instruction()
}

// AddressInstruction is "@value", where value is a decimal literal or a
// symbol name.
type AddressInstruction struct {
	LineNo int
	Value  string
}

// ComputeInstruction is "dest=comp;jump". Dest and Jump are empty when absent.
type ComputeInstruction struct {
	LineNo int
	Dest   string
	Comp   string
	Jump   string
}

// LabelInstruction is "(name)". It takes no ROM slot.
type LabelInstruction struct {
	LineNo int
	Name   string
}

func (i AddressInstruction) Line() int { return i.LineNo }
func (i ComputeInstruction) Line() int { return i.LineNo }
func (i LabelInstruction) Line() int   { return i.LineNo }

func (AddressInstruction) instruction() {}
func (ComputeInstruction) instruction() {}
func (LabelInstruction) instruction()   {}

func (i AddressInstruction) String() string { return "@" + i.Value }
func (i LabelInstruction) String() string   { return "(" + i.Name + ")" }

func (i ComputeInstruction) String() string {
	var sb strings.Builder
	if i.Dest != "" {
		sb.WriteString(i.Dest)
		sb.WriteByte('=')
	}
	sb.WriteString(i.Comp)
	if i.Jump != "" {
		sb.WriteByte(';')
		sb.WriteString(i.Jump)
	}
	return sb.String()
}

// IsLiteral reports whether the operand is a decimal literal rather than a
// symbol.
func (i AddressInstruction) IsLiteral() bool {
	return isDecimal(i.Value)
}

// Parse classifies one trimmed, comment-free line. Lines starting with '@'
// are address instructions, lines containing a parenthesis are labels and
// everything else is a compute instruction.
func Parse(text string, lineNo int) Instruction {
	if strings.HasPrefix(text, "@") {
		return AddressInstruction{LineNo: lineNo, Value: text[1:]}
	}
	if strings.ContainsAny(text, "()") {
		return LabelInstruction{LineNo: lineNo, Name: strings.Trim(text, "()")}
	}

	c := ComputeInstruction{LineNo: lineNo}
	eq := strings.IndexByte(text, '=')
	semi := strings.IndexByte(text, ';')

	start, end := 0, len(text)
	if eq != -1 {
		c.Dest = text[:eq]
		start = eq + 1
	}
	if semi != -1 && semi >= start {
		c.Jump = text[semi+1:]
		end = semi
	}
	c.Comp = text[start:end]
	return c
}

// Encode turns an instruction into its 16-bit word. Labels produce no word
// and report ok=false.
func Encode(inst Instruction, symbols *SymbolTable) (word uint16, ok bool, err error) {
	switch i := inst.(type) {
	case AddressInstruction:
		word, err = encodeAddress(i, symbols)
		return word, err == nil, err
	case ComputeInstruction:
		word, err = encodeCompute(i)
		return word, err == nil, err
	case LabelInstruction:
		return 0, false, nil
	default:
		return 0, false, fmt.Errorf("unsupported instruction %T", inst)
	}
}

func encodeAddress(i AddressInstruction, symbols *SymbolTable) (uint16, error) {
	if i.IsLiteral() {
		v, err := strconv.ParseUint(i.Value, 10, 32)
		if err != nil || v > MaxAddress {
			return 0, fmt.Errorf("address out of range on line %d: %s", i.LineNo, i.Value)
		}
		return uint16(v), nil
	}

	addr, ok := symbols.Lookup(i.Value)
	if !ok {
		return 0, &LookupError{Field: "symbol", Text: i.Value, Line: i.LineNo}
	}
	return addr, nil
}

func encodeCompute(i ComputeInstruction) (uint16, error) {
	comp, ok := compTable[i.Comp]
	if !ok {
		return 0, &LookupError{Field: "comp", Text: i.Comp, Line: i.LineNo}
	}

	var dest uint16
	if i.Dest != "" {
		if dest, ok = destTable[i.Dest]; !ok {
			return 0, &LookupError{Field: "dest", Text: i.Dest, Line: i.LineNo}
		}
	}

	var jump uint16
	if i.Jump != "" {
		if jump, ok = jumpTable[i.Jump]; !ok {
			return 0, &LookupError{Field: "jump", Text: i.Jump, Line: i.LineNo}
		}
	}

	return 0b111<<13 | comp<<6 | dest<<3 | jump, nil
}

// FormatWord renders a word as 16 binary digits, most significant bit first.
func FormatWord(w uint16) string {
	return fmt.Sprintf("%016b", w)
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

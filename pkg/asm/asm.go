package asm

import (
	"fmt"
	"strings"

	"gohack/pkg/utils"
)

// ROMSize is the number of instruction slots of the target machine.
const ROMSize = 32768

type Assembler struct {
	symbols *SymbolTable
}

// Program is the result of one assembly run.
type Program struct {
	Words []uint16
	// SourceMap maps a ROM address to the input line it came from.
	SourceMap map[uint16]int
	Symbols   *SymbolTable
}

// Binary renders every word as a 16-character binary string.
func (p *Program) Binary() []string {
	out := make([]string, len(p.Words))
	for i, w := range p.Words {
		out[i] = FormatWord(w)
	}
	return out
}

func NewAssembler() *Assembler {
	return &Assembler{
		symbols: NewSymbolTable(),
	}
}

// Assemble encodes trimmed, comment-free lines into binary strings, one per
// non-label line.
func Assemble(lines []string) ([]string, error) {
	p, err := NewAssembler().Assemble(lines)
	if err != nil {
		return nil, err
	}
	return p.Binary(), nil
}

// AssembleSource accepts raw source text, comments and blank lines
// included. Line numbers in errors and in the source map refer to code.
func AssembleSource(code string) (*Program, error) {
	return NewAssembler().assemble(utils.NumberLines(strings.Split(code, "\n")))
}

func (a *Assembler) Assemble(lines []string) (*Program, error) {
	numbered := make([]utils.Line, len(lines))
	for i, text := range lines {
		numbered[i] = utils.Line{No: i + 1, Text: text}
	}
	return a.assemble(numbered)
}

// Symbols returns the table built by the last run.
func (a *Assembler) Symbols() *SymbolTable {
	return a.symbols
}

func (a *Assembler) assemble(lines []utils.Line) (*Program, error) {
	a.symbols = NewSymbolTable()

	insts := make([]Instruction, len(lines))
	for i, l := range lines {
		insts[i] = Parse(l.Text, l.No)
	}

	if err := a.pass1(insts); err != nil {
		return nil, err
	}
	a.pass2(insts)

	return a.encode(insts)
}

// pass1 assigns every label the address of the next real instruction.
func (a *Assembler) pass1(insts []Instruction) error {
	var address uint32

	for _, inst := range insts {
		lbl, ok := inst.(LabelInstruction)
		if !ok {
			address++
			continue
		}

		if address > MaxAddress {
			return fmt.Errorf("label '%s' on line %d points past addressable memory", lbl.Name, lbl.LineNo)
		}
		if lbl.Name == "" {
			return fmt.Errorf("invalid label on line %d", lbl.LineNo)
		}
		if !a.symbols.DefineLabel(lbl.Name, uint16(address)) {
			return fmt.Errorf("duplicate label '%s' on line %d", lbl.Name, lbl.LineNo)
		}
	}

	if address > ROMSize {
		return fmt.Errorf("program too large: %d instructions", address)
	}
	return nil
}

// pass2 hands out RAM addresses from FirstVariable upward to every symbolic
// operand that is neither predefined nor a label, first occurrence first.
func (a *Assembler) pass2(insts []Instruction) {
	next := FirstVariable

	for _, inst := range insts {
		ai, ok := inst.(AddressInstruction)
		if !ok || ai.IsLiteral() {
			continue
		}
		if a.symbols.DefineVariable(ai.Value, next) {
			next++
		}
	}
}

func (a *Assembler) encode(insts []Instruction) (*Program, error) {
	p := &Program{
		Words:     make([]uint16, 0, len(insts)),
		SourceMap: make(map[uint16]int),
		Symbols:   a.symbols,
	}

	for _, inst := range insts {
		word, ok, err := Encode(inst, a.symbols)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		p.SourceMap[uint16(len(p.Words))] = inst.Line()
		p.Words = append(p.Words, word)
	}

	return p, nil
}

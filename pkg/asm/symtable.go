package asm

import (
	"fmt"
	"strings"
)

type SymbolKind int

const (
	SymbolPredefined SymbolKind = iota
	SymbolLabel
	SymbolVariable
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolPredefined:
		return "predefined"
	case SymbolLabel:
		return "label"
	case SymbolVariable:
		return "variable"
	default:
		return fmt.Sprintf("SymbolKind(%d)", int(k))
	}
}

type Symbol struct {
	Name    string
	Address uint16
	Kind    SymbolKind
}

// SymbolTable maps symbol names to addresses. Names keep the order in
// which they were defined: predefined symbols, then labels, then variables.
// An address is never reassigned once defined.
type SymbolTable struct {
	symbols map[string]Symbol
	order   []string
}

// NewSymbolTable returns a table holding only the predefined symbols.
func NewSymbolTable() *SymbolTable {
	s := &SymbolTable{
		symbols: make(map[string]Symbol, len(predefinedSymbols)),
	}
	for _, p := range predefinedSymbols {
		s.define(p.name, p.addr, SymbolPredefined)
	}
	return s
}

func (s *SymbolTable) define(name string, addr uint16, kind SymbolKind) bool {
	if _, exists := s.symbols[name]; exists {
		return false
	}
	s.symbols[name] = Symbol{Name: name, Address: addr, Kind: kind}
	s.order = append(s.order, name)
	return true
}

// DefineLabel records a label address. It reports false when the name is
// already taken.
func (s *SymbolTable) DefineLabel(name string, addr uint16) bool {
	return s.define(name, addr, SymbolLabel)
}

// DefineVariable records a variable address. It reports false when the
// name is already taken.
func (s *SymbolTable) DefineVariable(name string, addr uint16) bool {
	return s.define(name, addr, SymbolVariable)
}

func (s *SymbolTable) Lookup(name string) (uint16, bool) {
	sym, ok := s.symbols[name]
	return sym.Address, ok
}

func (s *SymbolTable) Contains(name string) bool {
	_, ok := s.symbols[name]
	return ok
}

func (s *SymbolTable) Len() int {
	return len(s.order)
}

// Symbols returns every symbol in definition order.
func (s *SymbolTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.symbols[name])
	}
	return out
}

// Kind filters Symbols down to one kind, still in definition order.
func (s *SymbolTable) Kind(kind SymbolKind) []Symbol {
	var out []Symbol
	for _, name := range s.order {
		if sym := s.symbols[name]; sym.Kind == kind {
			out = append(out, sym)
		}
	}
	return out
}

func (s *SymbolTable) String() string {
	var sb strings.Builder
	for _, kind := range []SymbolKind{SymbolLabel, SymbolVariable} {
		syms := s.Kind(kind)
		if len(syms) == 0 {
			fmt.Fprintf(&sb, "%s symbols: (empty)\n", kind)
			continue
		}
		fmt.Fprintf(&sb, "%s symbols:\n", kind)
		for _, sym := range syms {
			fmt.Fprintf(&sb, "  %-24s %5d\n", sym.Name, sym.Address)
		}
	}
	return sb.String()
}

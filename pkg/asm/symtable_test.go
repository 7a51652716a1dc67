package asm

import (
	"strings"
	"testing"
)

func TestPredefinedSymbols(t *testing.T) {
	s := NewSymbolTable()

	tests := []struct {
		name string
		want uint16
	}{
		{"SP", 0},
		{"LCL", 1},
		{"ARG", 2},
		{"THIS", 3},
		{"THAT", 4},
		{"R0", 0},
		{"R5", 5},
		{"R13", 13},
		{"R15", 15},
		{"SCREEN", 16384},
		{"KBD", 24576},
	}
	for _, tc := range tests {
		got, ok := s.Lookup(tc.name)
		if !ok || got != tc.want {
			t.Errorf("Lookup(%q) = %d, %v; want %d", tc.name, got, ok, tc.want)
		}
	}

	if s.Len() != 23 {
		t.Errorf("Len() = %d; want 23", s.Len())
	}
	if _, ok := s.Lookup("R16"); ok {
		t.Error("R16 should not be predefined")
	}
}

func TestSymbolTableNeverReassigns(t *testing.T) {
	s := NewSymbolTable()

	if !s.DefineLabel("LOOP", 4) {
		t.Fatal("DefineLabel(LOOP) = false")
	}
	if s.DefineVariable("LOOP", 16) {
		t.Error("DefineVariable(LOOP) replaced a label")
	}
	if s.DefineLabel("R1", 9) {
		t.Error("DefineLabel(R1) replaced a predefined symbol")
	}

	if got, _ := s.Lookup("LOOP"); got != 4 {
		t.Errorf("LOOP = %d; want 4", got)
	}
	if got, _ := s.Lookup("R1"); got != 1 {
		t.Errorf("R1 = %d; want 1", got)
	}
}

func TestSymbolTableOrder(t *testing.T) {
	s := NewSymbolTable()
	s.DefineLabel("B", 2)
	s.DefineVariable("x", 16)
	s.DefineLabel("A", 7)

	syms := s.Symbols()
	last := syms[len(syms)-3:]
	if last[0].Name != "B" || last[1].Name != "x" || last[2].Name != "A" {
		t.Errorf("definition order = %v", last)
	}

	labels := s.Kind(SymbolLabel)
	if len(labels) != 2 || labels[0].Name != "B" || labels[1].Name != "A" {
		t.Errorf("Kind(SymbolLabel) = %v", labels)
	}

	out := s.String()
	if !strings.Contains(out, "label symbols:") || !strings.Contains(out, "variable symbols:") {
		t.Errorf("String() = %q", out)
	}
}

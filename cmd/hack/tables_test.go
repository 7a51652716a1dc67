package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"gohack/pkg/asm"
	"gohack/pkg/cpu"
)

func TestParseRanges(t *testing.T) {
	got, err := parseRanges("0-4, 256,300-301")
	if err != nil {
		t.Fatal(err)
	}
	want := []ramRange{{0, 4}, {256, 256}, {300, 301}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseRanges = %v; want %v", got, want)
	}

	for _, bad := range []string{"x", "5-1", "1-y", "40000"} {
		if _, err := parseRanges(bad); err == nil {
			t.Errorf("parseRanges(%q): expected error", bad)
		}
	}
}

func TestPrintTables(t *testing.T) {
	prog, err := asm.AssembleSource("@i\n(LOOP)\n@LOOP\n0;JMP\n")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	printSymbols(&buf, prog.Symbols)
	if out := buf.String(); !strings.Contains(out, "LOOP") || !strings.Contains(out, "16") {
		t.Errorf("symbol table = %q", out)
	}

	vm := cpu.NewCPU()
	vm.RAM[0] = 0xFFFF
	buf.Reset()
	printRAM(&buf, vm, []ramRange{{0, 0}})
	if out := buf.String(); !strings.Contains(out, "65535") || !strings.Contains(out, "-1") {
		t.Errorf("RAM table = %q", out)
	}
}

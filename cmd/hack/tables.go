package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"gohack/pkg/asm"
	"gohack/pkg/cpu"
)

type ramRange struct {
	from, to uint16
}

func printSymbols(w io.Writer, syms *asm.SymbolTable) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Symbol", "Address", "Kind"})
	for _, kind := range []asm.SymbolKind{asm.SymbolLabel, asm.SymbolVariable} {
		for _, sym := range syms.Kind(kind) {
			t.AppendRow(table.Row{sym.Name, sym.Address, sym.Kind})
		}
	}
	t.Render()
}

func printRAM(w io.Writer, vm *cpu.CPU, ranges []ramRange) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Address", "Value", "Signed"})
	for _, r := range ranges {
		for addr := uint32(r.from); addr <= uint32(r.to); addr++ {
			v := vm.Read(uint16(addr))
			t.AppendRow(table.Row{addr, v, int16(v)})
		}
		t.AppendSeparator()
	}
	t.Render()
}

// parseRanges reads "a-b,c,d-e".
func parseRanges(s string) ([]ramRange, error) {
	var out []ramRange
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		from, err := strconv.ParseUint(lo, 10, 15)
		if err != nil {
			return nil, fmt.Errorf("invalid RAM range %q: %w", part, err)
		}
		to := from
		if isRange {
			if to, err = strconv.ParseUint(hi, 10, 15); err != nil {
				return nil, fmt.Errorf("invalid RAM range %q: %w", part, err)
			}
		}
		if to < from {
			return nil, fmt.Errorf("invalid RAM range %q: end before start", part)
		}
		out = append(out, ramRange{from: uint16(from), to: uint16(to)})
	}
	return out, nil
}

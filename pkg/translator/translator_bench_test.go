package translator

import (
	"fmt"
	"testing"
)

func benchProgram(funcs int) []Unit {
	var lines []string
	for i := 0; i < funcs; i++ {
		lines = append(lines,
			fmt.Sprintf("function Bench.f%d 2", i),
			"push argument 0",
			"push constant 1",
			"sub",
			"pop local 0",
			"push local 0",
			"push constant 0",
			"gt",
			fmt.Sprintf("if-goto REC%d", i),
			"push static 0",
			"return",
			fmt.Sprintf("label REC%d", i),
			"push local 0",
			fmt.Sprintf("call Bench.f%d 1", i),
			"return",
		)
	}
	return []Unit{{Name: "Bench", Lines: lines}}
}

func BenchmarkTranslateProgram(b *testing.B) {
	units := benchProgram(200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New().TranslateProgram(units, true)
	}
}

func BenchmarkParse(b *testing.B) {
	lines := benchProgram(1)[0].Lines
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, l := range lines {
			Parse(l)
		}
	}
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"

	"gohack/pkg/asm"
	"gohack/pkg/translator"
	"gohack/pkg/utils"
)

const testSource = `function Main.main 1
push constant 7
push constant 8
add
pop local 0
push local 0
return
`

func main() {
	units := []translator.Unit{{Name: "Main", Lines: utils.CleanLines(strings.Split(testSource, "\n"))}}
	if len(os.Args) > 1 {
		var err error
		units, _, err = translator.Load(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "load error:", err)
			os.Exit(1)
		}
	}

	t := translator.New()

	// Parse
	fmt.Println("Commands")
	for _, u := range units {
		fmt.Printf("  %s.vm (%d lines)\n", u.Name, len(u.Lines))
		for _, line := range u.Lines {
			pp.Printf("    %-28s %v\n", line, translator.Parse(line))
		}
	}
	fmt.Println()

	// Translate
	assembly := t.TranslateProgram(units, len(units) > 1)
	fmt.Println("Generated Assembly")
	for _, line := range assembly {
		fmt.Println(line)
	}
	fmt.Println()
	pp.Println(t.Context())

	// Assemble
	a := asm.NewAssembler()
	prog, err := a.Assemble(assembly)
	if err != nil {
		fmt.Fprintln(os.Stderr, "assembly error:", err)
		os.Exit(1)
	}
	fmt.Printf("\n%d words\n", len(prog.Words))
	fmt.Print(a.Symbols())
}

package e2e_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/gomega"

	"gohack/pkg/asm"
	"gohack/pkg/cpu"
	"gohack/pkg/translator"
	"gohack/pkg/utils"
)

const maxCycles = 5_000_000

// writeProgram lays out files as a VM program directory.
func writeProgram(dir string, files map[string]string) {
	for name, src := range files {
		Expect(os.WriteFile(filepath.Join(dir, name), []byte(strings.TrimLeft(src, "\n")), 0o644)).To(Succeed())
	}
}

// build runs the full file pipeline: load, translate, assemble and write a
// .hack file next to the sources. It returns the path of the binary and the
// assembled program.
func build(path string) (string, *asm.Program) {
	units, isDir, err := translator.Load(path)
	Expect(err).NotTo(HaveOccurred())

	lines := translator.New().TranslateProgram(units, isDir)
	prog, err := asm.NewAssembler().Assemble(lines)
	Expect(err).NotTo(HaveOccurred())

	out := utils.OutputPath(path, isDir, ".hack")
	Expect(utils.WriteLines(out, prog.Binary())).To(Succeed())
	return out, prog
}

// boot loads a .hack file, lets setup poke RAM, and runs to a halt.
func boot(hackPath string, setup func(vm *cpu.CPU)) *cpu.CPU {
	words, err := cpu.LoadHackFile(hackPath)
	Expect(err).NotTo(HaveOccurred())

	vm := cpu.NewCPU()
	Expect(vm.Load(words)).To(Succeed())
	if setup != nil {
		setup(vm)
	}
	vm.Run(maxCycles)
	Expect(vm.Halted).To(BeTrue(), "program did not halt")
	return vm
}

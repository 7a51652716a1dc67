package e2e_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"gohack/pkg/asm"
	"gohack/pkg/cpu"
	"gohack/pkg/utils"
)

var _ = Describe("VM programs", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	Describe("a single function without bootstrap", func() {
		It("returns into the caller frame", func() {
			path := filepath.Join(dir, "SimpleFunction.vm")
			writeProgram(dir, map[string]string{"SimpleFunction.vm": `
// locals are zeroed, so this computes ~0 + arg0 - arg1
function SimpleFunction.test 2
push local 0
push local 1
add
not
push argument 0
add
push argument 1
sub
return
`})
			hackPath, _ := build(path)
			Expect(hackPath).To(Equal(filepath.Join(dir, "SimpleFunction.hack")))

			vm := boot(hackPath, func(vm *cpu.CPU) {
				vm.RAM[0], vm.RAM[1], vm.RAM[2] = 317, 317, 310
				vm.RAM[3], vm.RAM[4] = 3000, 4000
				copy(vm.RAM[310:317], []uint16{1234, 37, 1000, 305, 300, 3010, 4010})
			})

			Expect(vm.RAM[0:5]).To(Equal([]uint16{311, 305, 300, 3010, 4010}))
			Expect(vm.RAM[310]).To(Equal(uint16(1196)))
		})
	})

	Describe("a recursive program with bootstrap", func() {
		It("computes fibonacci(4)", func() {
			writeProgram(dir, map[string]string{
				"Main.vm": `
function Main.fibonacci 0
push argument 0
push constant 2
lt
if-goto N_LT_2
goto N_GE_2
label N_LT_2
push argument 0
return
label N_GE_2
push argument 0
push constant 2
sub
call Main.fibonacci 1
push argument 0
push constant 1
sub
call Main.fibonacci 1
add
return
`,
				"Sys.vm": `
function Sys.init 0
push constant 4
call Main.fibonacci 1
label WHILE
goto WHILE
`,
			})

			hackPath, prog := build(dir)
			Expect(hackPath).To(Equal(filepath.Join(dir, filepath.Base(dir)+".hack")))

			vm := boot(hackPath, nil)
			Expect(vm.RAM[0]).To(Equal(uint16(262)))
			Expect(vm.RAM[261]).To(Equal(uint16(3)))

			_, ok := prog.Symbols.Lookup("RETURN.Sys.init.1")
			Expect(ok).To(BeTrue())
		})
	})

	Describe("statics across files", func() {
		It("keeps each file's statics apart", func() {
			class := func(name string) string {
				return `
function ` + name + `.set 0
push argument 0
pop static 0
push argument 1
pop static 1
push constant 0
return
function ` + name + `.get 0
push static 0
push static 1
sub
return
`
			}
			writeProgram(dir, map[string]string{
				"Class1.vm": class("Class1"),
				"Class2.vm": class("Class2"),
				"Sys.vm": `
function Sys.init 0
push constant 6
push constant 8
call Class1.set 2
pop temp 0
push constant 23
push constant 15
call Class2.set 2
pop temp 0
call Class1.get 0
call Class2.get 0
label WHILE
goto WHILE
`,
			})

			hackPath, prog := build(dir)
			vm := boot(hackPath, nil)

			Expect(vm.RAM[0]).To(Equal(uint16(263)))
			Expect(int16(vm.RAM[261])).To(Equal(int16(-2)))
			Expect(vm.RAM[262]).To(Equal(uint16(8)))

			for _, name := range []string{"Class1.0", "Class1.1", "Class2.0", "Class2.1"} {
				_, ok := prog.Symbols.Lookup(name)
				Expect(ok).To(BeTrue(), name)
			}
			Expect(prog.Symbols.Kind(asm.SymbolVariable)).To(HaveLen(4))
		})
	})

	Describe("comparisons in a loop", func() {
		It("counts how many of 0..9 are below 5", func() {
			path := filepath.Join(dir, "Count.vm")
			writeProgram(dir, map[string]string{"Count.vm": `
push constant 0
pop static 0 // i
push constant 0
pop static 1 // hits
label LOOP
push static 0
push constant 5
lt
if-goto HIT
goto NEXT
label HIT
push static 1
push constant 1
add
pop static 1
label NEXT
push static 0
push constant 1
add
pop static 0
push static 0
push constant 10
eq
not
if-goto LOOP
`})
			hackPath, prog := build(path)
			vm := boot(hackPath, func(vm *cpu.CPU) { vm.RAM[0] = 256 })

			hits, _ := prog.Symbols.Lookup("Count.1")
			Expect(vm.RAM[hits]).To(Equal(uint16(5)))
			Expect(vm.RAM[0]).To(Equal(uint16(256)))
		})
	})
})

var _ = Describe("Assembly programs", func() {
	It("assembles Max and runs the binary", func() {
		dir := GinkgoT().TempDir()
		src := `
// R2 = max(R0, R1)
    @R0
    D=M
    @R1
    D=D-M
    @OUTPUT_FIRST
    D;JGT
    @R1
    D=M
    @OUTPUT_D
    0;JMP
(OUTPUT_FIRST)
    @R0
    D=M
(OUTPUT_D)
    @R2
    M=D
(INFINITE_LOOP)
    @INFINITE_LOOP
    0;JMP
`
		prog, err := asm.AssembleSource(src)
		Expect(err).NotTo(HaveOccurred())
		Expect(prog.Words).To(HaveLen(16))

		hackPath := filepath.Join(dir, "Max.hack")
		Expect(utils.WriteLines(hackPath, prog.Binary())).To(Succeed())

		for _, tc := range [][3]uint16{{3, 7, 7}, {9, 2, 9}, {5, 5, 5}} {
			vm := boot(hackPath, func(vm *cpu.CPU) {
				vm.RAM[0], vm.RAM[1] = tc[0], tc[1]
			})
			Expect(vm.RAM[2]).To(Equal(tc[2]))
		}
	})

	It("reports the line of an unknown mnemonic", func() {
		_, err := asm.AssembleSource("@1\n\nD=A\nD=D*A\n")
		var le *asm.LookupError
		Expect(err).To(BeAssignableToTypeOf(le))
		Expect(err).To(MatchError(asm.ErrLookup))
		Expect(err.Error()).To(ContainSubstring("line 4"))
	})
})

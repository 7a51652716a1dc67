package cpu

const (
	ROMSize = 32768
	RAMSize = 32768

	// ScreenBase is the first word of the memory-mapped screen.
	ScreenBase uint16 = 16384
	// ScreenWords is 256 rows of 32 words, 16 pixels per word.
	ScreenWords = 8192
	// KBD holds the code of the key currently pressed, 0 when none.
	KBD uint16 = 24576

	addrMask = 0x7FFF
)

// Instruction bit layout.
const (
	bitCompute = 0x8000
	bitAMem    = 0x1000
	destA      = 0b100
	destD      = 0b010
	destM      = 0b001
	jumpLT     = 0b100
	jumpEQ     = 0b010
	jumpGT     = 0b001
)

type CPU struct {
	A  uint16
	D  uint16
	PC uint16

	ROM [ROMSize]uint16
	RAM [RAMSize]uint16

	// ProgramSize is the number of words loaded into ROM. Running past it
	// halts the machine.
	ProgramSize int

	// Halted is set when the program runs off the end of ROM or spins in a
	// "(L) @L 0;JMP" loop.
	Halted bool

	Cycles uint64
}

func NewCPU() *CPU {
	return &CPU{}
}

// Load copies a program into ROM and resets the registers. RAM is kept.
func (c *CPU) Load(program []uint16) error {
	if len(program) > ROMSize {
		return errProgramTooLarge(len(program))
	}
	c.ROM = [ROMSize]uint16{}
	copy(c.ROM[:], program)
	c.ProgramSize = len(program)
	c.Reset()
	return nil
}

// Reset clears the registers and the halt flag.
func (c *CPU) Reset() {
	c.A, c.D, c.PC = 0, 0, 0
	c.Halted = false
	c.Cycles = 0
}

// SetKey sets the keyboard register directly. 0 means no key.
func (c *CPU) SetKey(val uint16) {
	c.RAM[KBD] = val
}

func (c *CPU) Read(addr uint16) uint16 {
	return c.RAM[addr&addrMask]
}

// Write stores val at addr. KBD is read-only to programs.
func (c *CPU) Write(addr uint16, val uint16) {
	addr &= addrMask
	if addr == KBD {
		return
	}
	c.RAM[addr] = val
}

// Stack returns the words between base and SP.
func (c *CPU) Stack(base uint16) []uint16 {
	sp := c.RAM[0]
	if sp < base {
		return nil
	}
	out := make([]uint16, sp-base)
	copy(out, c.RAM[base:sp])
	return out
}

func (c *CPU) Step() {
	if c.Halted {
		return
	}
	if int(c.PC) >= c.ProgramSize {
		c.Halted = true
		return
	}

	instr := c.ROM[c.PC]
	c.Cycles++

	if instr&bitCompute == 0 {
		c.A = instr
		c.PC++
		return
	}

	addrM := c.A
	y := c.A
	if instr&bitAMem != 0 {
		y = c.Read(addrM)
	}
	out := ALU(c.D, y, (instr>>6)&0x3F)

	dest := (instr >> 3) & 0x7
	jump := instr & 0x7

	if dest&destM != 0 {
		c.Write(addrM, out)
	}
	if dest&destD != 0 {
		c.D = out
	}
	target := c.A
	if dest&destA != 0 {
		c.A = out
	}

	if !jumps(out, jump) {
		c.PC++
		return
	}

	if jump == 0b111 && target+1 == c.PC && c.ROM[target] == target {
		c.Halted = true
	}
	c.PC = target
}

// Run steps until the machine halts or maxCycles instructions have been
// executed. maxCycles of 0 means no limit. It returns the cycles used.
func (c *CPU) Run(maxCycles uint64) uint64 {
	start := c.Cycles
	for !c.Halted {
		if maxCycles > 0 && c.Cycles-start >= maxCycles {
			break
		}
		c.Step()
	}
	return c.Cycles - start
}

func (c *CPU) RunUntilDone() {
	for !c.Halted {
		c.Step()
	}
}

// ALU computes the six-control-bit function zx nx zy ny f no over x and y.
func ALU(x, y, ctrl uint16) uint16 {
	if ctrl&0b100000 != 0 {
		x = 0
	}
	if ctrl&0b010000 != 0 {
		x = ^x
	}
	if ctrl&0b001000 != 0 {
		y = 0
	}
	if ctrl&0b000100 != 0 {
		y = ^y
	}
	var out uint16
	if ctrl&0b000010 != 0 {
		out = x + y
	} else {
		out = x & y
	}
	if ctrl&0b000001 != 0 {
		out = ^out
	}
	return out
}

func jumps(out, jump uint16) bool {
	v := int16(out)
	return (jump&jumpLT != 0 && v < 0) ||
		(jump&jumpEQ != 0 && v == 0) ||
		(jump&jumpGT != 0 && v > 0)
}

package asm

// Fixed addresses of the predefined symbols.
const (
	AddrSP     uint16 = 0
	AddrLCL    uint16 = 1
	AddrARG    uint16 = 2
	AddrTHIS   uint16 = 3
	AddrTHAT   uint16 = 4
	AddrSCREEN uint16 = 16384
	AddrKBD    uint16 = 24576

	// FirstVariable is the first RAM address handed out to variables.
	FirstVariable uint16 = 16

	// MaxAddress is the largest value an address instruction can carry.
	MaxAddress = 0x7FFF
)

var predefinedSymbols = []struct {
	name string
	addr uint16
}{
	{"SP", AddrSP},
	{"LCL", AddrLCL},
	{"ARG", AddrARG},
	{"THIS", AddrTHIS},
	{"THAT", AddrTHAT},
	{"R0", 0},
	{"R1", 1},
	{"R2", 2},
	{"R3", 3},
	{"R4", 4},
	{"R5", 5},
	{"R6", 6},
	{"R7", 7},
	{"R8", 8},
	{"R9", 9},
	{"R10", 10},
	{"R11", 11},
	{"R12", 12},
	{"R13", 13},
	{"R14", 14},
	{"R15", 15},
	{"SCREEN", AddrSCREEN},
	{"KBD", AddrKBD},
}

// compTable maps a compute expression to its 7-bit field: the a-bit
// (select M instead of A) followed by the six ALU control bits.
var compTable = map[string]uint16{
	"0":   0b0101010,
	"1":   0b0111111,
	"-1":  0b0111010,
	"D":   0b0001100,
	"A":   0b0110000,
	"!D":  0b0001101,
	"!A":  0b0110001,
	"-D":  0b0001111,
	"-A":  0b0110011,
	"D+1": 0b0011111,
	"A+1": 0b0110111,
	"D-1": 0b0001110,
	"A-1": 0b0110010,
	"D+A": 0b0000010,
	"A+D": 0b0000010,
	"D-A": 0b0010011,
	"A-D": 0b0000111,
	"D&A": 0b0000000,
	"A&D": 0b0000000,
	"D|A": 0b0010101,
	"A|D": 0b0010101,

	"M":   0b1110000,
	"!M":  0b1110001,
	"-M":  0b1110011,
	"M+1": 0b1110111,
	"M-1": 0b1110010,
	"D+M": 0b1000010,
	"M+D": 0b1000010,
	"D-M": 0b1010011,
	"M-D": 0b1000111,
	"D&M": 0b1000000,
	"M&D": 0b1000000,
	"D|M": 0b1010101,
	"M|D": 0b1010101,
}

var destTable = map[string]uint16{
	"M":   0b001,
	"D":   0b010,
	"MD":  0b011,
	"DM":  0b011,
	"A":   0b100,
	"AM":  0b101,
	"MA":  0b101,
	"AD":  0b110,
	"DA":  0b110,
	"AMD": 0b111,
	"ADM": 0b111,
}

var jumpTable = map[string]uint16{
	"JGT": 0b001,
	"JEQ": 0b010,
	"JGE": 0b011,
	"JLT": 0b100,
	"JNE": 0b101,
	"JLE": 0b110,
	"JMP": 0b111,
}

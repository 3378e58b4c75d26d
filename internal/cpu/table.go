package cpu

// opcodeEntry is one row of the 256-slot dispatch table before it is copied
// into CPU.instructions.
type opcodeEntry struct {
	opcode       uint8
	name         string
	mode         AddressingMode
	bytes        uint8
	cycles       uint8
	pageCrossAdd uint8
	exec         func(*CPU, stepInfo)
}

// unstableNoopNames lists the unofficial opcodes left as bare no-ops because
// their behavior is combinatorial/bus-conflict-dependent on real silicon.
// -debug logs the first time the CPU executes any of them.
var unstableNoopNames = map[string]bool{
	"STP": true, "ANC": true, "ALR": true, "ARR": true, "AHX": true,
	"SHX": true, "SHY": true, "TAS": true, "LAS": true, "XAA": true, "AXS": true,
}

// initInstructions populates the 256-entry opcode table. Byte counts, base
// cycle counts, and page-cross cycle bonuses follow the standard NMOS 6502
// timings; addressing modes and handler assignments match the official
// instruction set plus the eight unofficial combined read-modify-write
// opcodes this emulator implements faithfully.
func (cpu *CPU) initInstructions() {
	for _, e := range opcodeTable {
		cpu.instructions[e.opcode] = Instruction{
			Name:         e.name,
			Mode:         e.mode,
			Bytes:        e.bytes,
			Cycles:       e.cycles,
			PageCrossAdd: e.pageCrossAdd,
			Execute:      e.exec,
			Unofficial:   unstableNoopNames[e.name],
		}
	}
}

var opcodeTable = []opcodeEntry{
	{0x00, "BRK", Implied, 1, 7, 0, (*CPU).opBRK},
	{0x01, "ORA", IndexedIndirect, 2, 6, 0, (*CPU).opORA},
	{0x02, "STP", Implied, 1, 2, 0, (*CPU).opUnofficialNoop},
	{0x03, "SLO", IndexedIndirect, 2, 8, 0, (*CPU).opSLO},
	{0x04, "NOP", ZeroPage, 2, 3, 0, (*CPU).opNOP},
	{0x05, "ORA", ZeroPage, 2, 3, 0, (*CPU).opORA},
	{0x06, "ASL", ZeroPage, 2, 5, 0, (*CPU).opASL},
	{0x07, "SLO", ZeroPage, 2, 5, 0, (*CPU).opSLO},
	{0x08, "PHP", Implied, 1, 3, 0, (*CPU).opPHP},
	{0x09, "ORA", Immediate, 2, 2, 0, (*CPU).opORA},
	{0x0A, "ASL", Accumulator, 1, 2, 0, (*CPU).opASL},
	{0x0B, "ANC", Immediate, 2, 2, 0, (*CPU).opUnofficialNoop},
	{0x0C, "NOP", Absolute, 3, 4, 0, (*CPU).opNOP},
	{0x0D, "ORA", Absolute, 3, 4, 0, (*CPU).opORA},
	{0x0E, "ASL", Absolute, 3, 6, 0, (*CPU).opASL},
	{0x0F, "SLO", Absolute, 3, 6, 0, (*CPU).opSLO},

	{0x10, "BPL", Relative, 2, 2, 0, (*CPU).opBPL},
	{0x11, "ORA", IndirectIndexed, 2, 5, 1, (*CPU).opORA},
	{0x12, "STP", Implied, 1, 2, 0, (*CPU).opUnofficialNoop},
	{0x13, "SLO", IndirectIndexed, 2, 8, 0, (*CPU).opSLO},
	{0x14, "NOP", ZeroPageX, 2, 4, 0, (*CPU).opNOP},
	{0x15, "ORA", ZeroPageX, 2, 4, 0, (*CPU).opORA},
	{0x16, "ASL", ZeroPageX, 2, 6, 0, (*CPU).opASL},
	{0x17, "SLO", ZeroPageX, 2, 6, 0, (*CPU).opSLO},
	{0x18, "CLC", Implied, 1, 2, 0, (*CPU).opCLC},
	{0x19, "ORA", AbsoluteY, 3, 4, 1, (*CPU).opORA},
	{0x1A, "NOP", Implied, 1, 2, 0, (*CPU).opNOP},
	{0x1B, "SLO", AbsoluteY, 3, 7, 0, (*CPU).opSLO},
	{0x1C, "NOP", AbsoluteX, 3, 4, 1, (*CPU).opNOP},
	{0x1D, "ORA", AbsoluteX, 3, 4, 1, (*CPU).opORA},
	{0x1E, "ASL", AbsoluteX, 3, 7, 0, (*CPU).opASL},
	{0x1F, "SLO", AbsoluteX, 3, 7, 0, (*CPU).opSLO},

	{0x20, "JSR", Absolute, 3, 6, 0, (*CPU).opJSR},
	{0x21, "AND", IndexedIndirect, 2, 6, 0, (*CPU).opAND},
	{0x22, "STP", Implied, 1, 2, 0, (*CPU).opUnofficialNoop},
	{0x23, "RLA", IndexedIndirect, 2, 8, 0, (*CPU).opRLA},
	{0x24, "BIT", ZeroPage, 2, 3, 0, (*CPU).opBIT},
	{0x25, "AND", ZeroPage, 2, 3, 0, (*CPU).opAND},
	{0x26, "ROL", ZeroPage, 2, 5, 0, (*CPU).opROL},
	{0x27, "RLA", ZeroPage, 2, 5, 0, (*CPU).opRLA},
	{0x28, "PLP", Implied, 1, 4, 0, (*CPU).opPLP},
	{0x29, "AND", Immediate, 2, 2, 0, (*CPU).opAND},
	{0x2A, "ROL", Accumulator, 1, 2, 0, (*CPU).opROL},
	{0x2B, "ANC", Immediate, 2, 2, 0, (*CPU).opUnofficialNoop},
	{0x2C, "BIT", Absolute, 3, 4, 0, (*CPU).opBIT},
	{0x2D, "AND", Absolute, 3, 4, 0, (*CPU).opAND},
	{0x2E, "ROL", Absolute, 3, 6, 0, (*CPU).opROL},
	{0x2F, "RLA", Absolute, 3, 6, 0, (*CPU).opRLA},

	{0x30, "BMI", Relative, 2, 2, 0, (*CPU).opBMI},
	{0x31, "AND", IndirectIndexed, 2, 5, 1, (*CPU).opAND},
	{0x32, "STP", Implied, 1, 2, 0, (*CPU).opUnofficialNoop},
	{0x33, "RLA", IndirectIndexed, 2, 8, 0, (*CPU).opRLA},
	{0x34, "NOP", ZeroPageX, 2, 4, 0, (*CPU).opNOP},
	{0x35, "AND", ZeroPageX, 2, 4, 0, (*CPU).opAND},
	{0x36, "ROL", ZeroPageX, 2, 6, 0, (*CPU).opROL},
	{0x37, "RLA", ZeroPageX, 2, 6, 0, (*CPU).opRLA},
	{0x38, "SEC", Implied, 1, 2, 0, (*CPU).opSEC},
	{0x39, "AND", AbsoluteY, 3, 4, 1, (*CPU).opAND},
	{0x3A, "NOP", Implied, 1, 2, 0, (*CPU).opNOP},
	{0x3B, "RLA", AbsoluteY, 3, 7, 0, (*CPU).opRLA},
	{0x3C, "NOP", AbsoluteX, 3, 4, 1, (*CPU).opNOP},
	{0x3D, "AND", AbsoluteX, 3, 4, 1, (*CPU).opAND},
	{0x3E, "ROL", AbsoluteX, 3, 7, 0, (*CPU).opROL},
	{0x3F, "RLA", AbsoluteX, 3, 7, 0, (*CPU).opRLA},

	{0x40, "RTI", Implied, 1, 6, 0, (*CPU).opRTI},
	{0x41, "EOR", IndexedIndirect, 2, 6, 0, (*CPU).opEOR},
	{0x42, "STP", Implied, 1, 2, 0, (*CPU).opUnofficialNoop},
	{0x43, "SRE", IndexedIndirect, 2, 8, 0, (*CPU).opSRE},
	{0x44, "NOP", ZeroPage, 2, 3, 0, (*CPU).opNOP},
	{0x45, "EOR", ZeroPage, 2, 3, 0, (*CPU).opEOR},
	{0x46, "LSR", ZeroPage, 2, 5, 0, (*CPU).opLSR},
	{0x47, "SRE", ZeroPage, 2, 5, 0, (*CPU).opSRE},
	{0x48, "PHA", Implied, 1, 3, 0, (*CPU).opPHA},
	{0x49, "EOR", Immediate, 2, 2, 0, (*CPU).opEOR},
	{0x4A, "LSR", Accumulator, 1, 2, 0, (*CPU).opLSR},
	{0x4B, "ALR", Immediate, 2, 2, 0, (*CPU).opUnofficialNoop},
	{0x4C, "JMP", Absolute, 3, 3, 0, (*CPU).opJMP},
	{0x4D, "EOR", Absolute, 3, 4, 0, (*CPU).opEOR},
	{0x4E, "LSR", Absolute, 3, 6, 0, (*CPU).opLSR},
	{0x4F, "SRE", Absolute, 3, 6, 0, (*CPU).opSRE},

	{0x50, "BVC", Relative, 2, 2, 0, (*CPU).opBVC},
	{0x51, "EOR", IndirectIndexed, 2, 5, 1, (*CPU).opEOR},
	{0x52, "STP", Implied, 1, 2, 0, (*CPU).opUnofficialNoop},
	{0x53, "SRE", IndirectIndexed, 2, 8, 0, (*CPU).opSRE},
	{0x54, "NOP", ZeroPageX, 2, 4, 0, (*CPU).opNOP},
	{0x55, "EOR", ZeroPageX, 2, 4, 0, (*CPU).opEOR},
	{0x56, "LSR", ZeroPageX, 2, 6, 0, (*CPU).opLSR},
	{0x57, "SRE", ZeroPageX, 2, 6, 0, (*CPU).opSRE},
	{0x58, "CLI", Implied, 1, 2, 0, (*CPU).opCLI},
	{0x59, "EOR", AbsoluteY, 3, 4, 1, (*CPU).opEOR},
	{0x5A, "NOP", Implied, 1, 2, 0, (*CPU).opNOP},
	{0x5B, "SRE", AbsoluteY, 3, 7, 0, (*CPU).opSRE},
	{0x5C, "NOP", AbsoluteX, 3, 4, 1, (*CPU).opNOP},
	{0x5D, "EOR", AbsoluteX, 3, 4, 1, (*CPU).opEOR},
	{0x5E, "LSR", AbsoluteX, 3, 7, 0, (*CPU).opLSR},
	{0x5F, "SRE", AbsoluteX, 3, 7, 0, (*CPU).opSRE},

	{0x60, "RTS", Implied, 1, 6, 0, (*CPU).opRTS},
	{0x61, "ADC", IndexedIndirect, 2, 6, 0, (*CPU).opADC},
	{0x62, "STP", Implied, 1, 2, 0, (*CPU).opUnofficialNoop},
	{0x63, "RRA", IndexedIndirect, 2, 8, 0, (*CPU).opRRA},
	{0x64, "NOP", ZeroPage, 2, 3, 0, (*CPU).opNOP},
	{0x65, "ADC", ZeroPage, 2, 3, 0, (*CPU).opADC},
	{0x66, "ROR", ZeroPage, 2, 5, 0, (*CPU).opROR},
	{0x67, "RRA", ZeroPage, 2, 5, 0, (*CPU).opRRA},
	{0x68, "PLA", Implied, 1, 4, 0, (*CPU).opPLA},
	{0x69, "ADC", Immediate, 2, 2, 0, (*CPU).opADC},
	{0x6A, "ROR", Accumulator, 1, 2, 0, (*CPU).opROR},
	{0x6B, "ARR", Immediate, 2, 2, 0, (*CPU).opUnofficialNoop},
	{0x6C, "JMP", Indirect, 3, 5, 0, (*CPU).opJMP},
	{0x6D, "ADC", Absolute, 3, 4, 0, (*CPU).opADC},
	{0x6E, "ROR", Absolute, 3, 6, 0, (*CPU).opROR},
	{0x6F, "RRA", Absolute, 3, 6, 0, (*CPU).opRRA},

	{0x70, "BVS", Relative, 2, 2, 0, (*CPU).opBVS},
	{0x71, "ADC", IndirectIndexed, 2, 5, 1, (*CPU).opADC},
	{0x72, "STP", Implied, 1, 2, 0, (*CPU).opUnofficialNoop},
	{0x73, "RRA", IndirectIndexed, 2, 8, 0, (*CPU).opRRA},
	{0x74, "NOP", ZeroPageX, 2, 4, 0, (*CPU).opNOP},
	{0x75, "ADC", ZeroPageX, 2, 4, 0, (*CPU).opADC},
	{0x76, "ROR", ZeroPageX, 2, 6, 0, (*CPU).opROR},
	{0x77, "RRA", ZeroPageX, 2, 6, 0, (*CPU).opRRA},
	{0x78, "SEI", Implied, 1, 2, 0, (*CPU).opSEI},
	{0x79, "ADC", AbsoluteY, 3, 4, 1, (*CPU).opADC},
	{0x7A, "NOP", Implied, 1, 2, 0, (*CPU).opNOP},
	{0x7B, "RRA", AbsoluteY, 3, 7, 0, (*CPU).opRRA},
	{0x7C, "NOP", AbsoluteX, 3, 4, 1, (*CPU).opNOP},
	{0x7D, "ADC", AbsoluteX, 3, 4, 1, (*CPU).opADC},
	{0x7E, "ROR", AbsoluteX, 3, 7, 0, (*CPU).opROR},
	{0x7F, "RRA", AbsoluteX, 3, 7, 0, (*CPU).opRRA},

	{0x80, "NOP", Immediate, 2, 2, 0, (*CPU).opNOP},
	{0x81, "STA", IndexedIndirect, 2, 6, 0, (*CPU).opSTA},
	{0x82, "NOP", Immediate, 2, 2, 0, (*CPU).opNOP},
	{0x83, "SAX", IndexedIndirect, 2, 6, 0, (*CPU).opSAX},
	{0x84, "STY", ZeroPage, 2, 3, 0, (*CPU).opSTY},
	{0x85, "STA", ZeroPage, 2, 3, 0, (*CPU).opSTA},
	{0x86, "STX", ZeroPage, 2, 3, 0, (*CPU).opSTX},
	{0x87, "SAX", ZeroPage, 2, 3, 0, (*CPU).opSAX},
	{0x88, "DEY", Implied, 1, 2, 0, (*CPU).opDEY},
	{0x89, "NOP", Immediate, 2, 2, 0, (*CPU).opNOP},
	{0x8A, "TXA", Implied, 1, 2, 0, (*CPU).opTXA},
	{0x8B, "XAA", Immediate, 2, 2, 0, (*CPU).opUnofficialNoop},
	{0x8C, "STY", Absolute, 3, 4, 0, (*CPU).opSTY},
	{0x8D, "STA", Absolute, 3, 4, 0, (*CPU).opSTA},
	{0x8E, "STX", Absolute, 3, 4, 0, (*CPU).opSTX},
	{0x8F, "SAX", Absolute, 3, 4, 0, (*CPU).opSAX},

	{0x90, "BCC", Relative, 2, 2, 0, (*CPU).opBCC},
	{0x91, "STA", IndirectIndexed, 2, 6, 0, (*CPU).opSTA},
	{0x92, "STP", Implied, 1, 2, 0, (*CPU).opUnofficialNoop},
	{0x93, "AHX", IndirectIndexed, 2, 6, 0, (*CPU).opUnofficialNoop},
	{0x94, "STY", ZeroPageX, 2, 4, 0, (*CPU).opSTY},
	{0x95, "STA", ZeroPageX, 2, 4, 0, (*CPU).opSTA},
	{0x96, "STX", ZeroPageY, 2, 4, 0, (*CPU).opSTX},
	{0x97, "SAX", ZeroPageY, 2, 4, 0, (*CPU).opSAX},
	{0x98, "TYA", Implied, 1, 2, 0, (*CPU).opTYA},
	{0x99, "STA", AbsoluteY, 3, 5, 0, (*CPU).opSTA},
	{0x9A, "TXS", Implied, 1, 2, 0, (*CPU).opTXS},
	{0x9B, "TAS", AbsoluteY, 3, 5, 0, (*CPU).opUnofficialNoop},
	{0x9C, "SHY", AbsoluteX, 3, 5, 0, (*CPU).opUnofficialNoop},
	{0x9D, "STA", AbsoluteX, 3, 5, 0, (*CPU).opSTA},
	{0x9E, "SHX", AbsoluteY, 3, 5, 0, (*CPU).opUnofficialNoop},
	{0x9F, "AHX", AbsoluteY, 3, 5, 0, (*CPU).opUnofficialNoop},

	{0xA0, "LDY", Immediate, 2, 2, 0, (*CPU).opLDY},
	{0xA1, "LDA", IndexedIndirect, 2, 6, 0, (*CPU).opLDA},
	{0xA2, "LDX", Immediate, 2, 2, 0, (*CPU).opLDX},
	{0xA3, "LAX", IndexedIndirect, 2, 6, 0, (*CPU).opLAX},
	{0xA4, "LDY", ZeroPage, 2, 3, 0, (*CPU).opLDY},
	{0xA5, "LDA", ZeroPage, 2, 3, 0, (*CPU).opLDA},
	{0xA6, "LDX", ZeroPage, 2, 3, 0, (*CPU).opLDX},
	{0xA7, "LAX", ZeroPage, 2, 3, 0, (*CPU).opLAX},
	{0xA8, "TAY", Implied, 1, 2, 0, (*CPU).opTAY},
	{0xA9, "LDA", Immediate, 2, 2, 0, (*CPU).opLDA},
	{0xAA, "TAX", Implied, 1, 2, 0, (*CPU).opTAX},
	{0xAB, "LAX", Immediate, 2, 2, 0, (*CPU).opLAX},
	{0xAC, "LDY", Absolute, 3, 4, 0, (*CPU).opLDY},
	{0xAD, "LDA", Absolute, 3, 4, 0, (*CPU).opLDA},
	{0xAE, "LDX", Absolute, 3, 4, 0, (*CPU).opLDX},
	{0xAF, "LAX", Absolute, 3, 4, 0, (*CPU).opLAX},

	{0xB0, "BCS", Relative, 2, 2, 0, (*CPU).opBCS},
	{0xB1, "LDA", IndirectIndexed, 2, 5, 1, (*CPU).opLDA},
	{0xB2, "STP", Implied, 1, 2, 0, (*CPU).opUnofficialNoop},
	{0xB3, "LAX", IndirectIndexed, 2, 5, 1, (*CPU).opLAX},
	{0xB4, "LDY", ZeroPageX, 2, 4, 0, (*CPU).opLDY},
	{0xB5, "LDA", ZeroPageX, 2, 4, 0, (*CPU).opLDA},
	{0xB6, "LDX", ZeroPageY, 2, 4, 0, (*CPU).opLDX},
	{0xB7, "LAX", ZeroPageY, 2, 4, 0, (*CPU).opLAX},
	{0xB8, "CLV", Implied, 1, 2, 0, (*CPU).opCLV},
	{0xB9, "LDA", AbsoluteY, 3, 4, 1, (*CPU).opLDA},
	{0xBA, "TSX", Implied, 1, 2, 0, (*CPU).opTSX},
	{0xBB, "LAS", AbsoluteY, 3, 4, 1, (*CPU).opUnofficialNoop},
	{0xBC, "LDY", AbsoluteX, 3, 4, 1, (*CPU).opLDY},
	{0xBD, "LDA", AbsoluteX, 3, 4, 1, (*CPU).opLDA},
	{0xBE, "LDX", AbsoluteY, 3, 4, 1, (*CPU).opLDX},
	{0xBF, "LAX", AbsoluteY, 3, 4, 1, (*CPU).opLAX},

	{0xC0, "CPY", Immediate, 2, 2, 0, (*CPU).opCPY},
	{0xC1, "CMP", IndexedIndirect, 2, 6, 0, (*CPU).opCMP},
	{0xC2, "NOP", Immediate, 2, 2, 0, (*CPU).opNOP},
	{0xC3, "DCP", IndexedIndirect, 2, 8, 0, (*CPU).opDCP},
	{0xC4, "CPY", ZeroPage, 2, 3, 0, (*CPU).opCPY},
	{0xC5, "CMP", ZeroPage, 2, 3, 0, (*CPU).opCMP},
	{0xC6, "DEC", ZeroPage, 2, 5, 0, (*CPU).opDEC},
	{0xC7, "DCP", ZeroPage, 2, 5, 0, (*CPU).opDCP},
	{0xC8, "INY", Implied, 1, 2, 0, (*CPU).opINY},
	{0xC9, "CMP", Immediate, 2, 2, 0, (*CPU).opCMP},
	{0xCA, "DEX", Implied, 1, 2, 0, (*CPU).opDEX},
	{0xCB, "AXS", Immediate, 2, 2, 0, (*CPU).opUnofficialNoop},
	{0xCC, "CPY", Absolute, 3, 4, 0, (*CPU).opCPY},
	{0xCD, "CMP", Absolute, 3, 4, 0, (*CPU).opCMP},
	{0xCE, "DEC", Absolute, 3, 6, 0, (*CPU).opDEC},
	{0xCF, "DCP", Absolute, 3, 6, 0, (*CPU).opDCP},

	{0xD0, "BNE", Relative, 2, 2, 0, (*CPU).opBNE},
	{0xD1, "CMP", IndirectIndexed, 2, 5, 1, (*CPU).opCMP},
	{0xD2, "STP", Implied, 1, 2, 0, (*CPU).opUnofficialNoop},
	{0xD3, "DCP", IndirectIndexed, 2, 8, 0, (*CPU).opDCP},
	{0xD4, "NOP", ZeroPageX, 2, 4, 0, (*CPU).opNOP},
	{0xD5, "CMP", ZeroPageX, 2, 4, 0, (*CPU).opCMP},
	{0xD6, "DEC", ZeroPageX, 2, 6, 0, (*CPU).opDEC},
	{0xD7, "DCP", ZeroPageX, 2, 6, 0, (*CPU).opDCP},
	{0xD8, "CLD", Implied, 1, 2, 0, (*CPU).opCLD},
	{0xD9, "CMP", AbsoluteY, 3, 4, 1, (*CPU).opCMP},
	{0xDA, "NOP", Implied, 1, 2, 0, (*CPU).opNOP},
	{0xDB, "DCP", AbsoluteY, 3, 7, 0, (*CPU).opDCP},
	{0xDC, "NOP", AbsoluteX, 3, 4, 1, (*CPU).opNOP},
	{0xDD, "CMP", AbsoluteX, 3, 4, 1, (*CPU).opCMP},
	{0xDE, "DEC", AbsoluteX, 3, 7, 0, (*CPU).opDEC},
	{0xDF, "DCP", AbsoluteX, 3, 7, 0, (*CPU).opDCP},

	{0xE0, "CPX", Immediate, 2, 2, 0, (*CPU).opCPX},
	{0xE1, "SBC", IndexedIndirect, 2, 6, 0, (*CPU).opSBC},
	{0xE2, "NOP", Immediate, 2, 2, 0, (*CPU).opNOP},
	{0xE3, "ISC", IndexedIndirect, 2, 8, 0, (*CPU).opISC},
	{0xE4, "CPX", ZeroPage, 2, 3, 0, (*CPU).opCPX},
	{0xE5, "SBC", ZeroPage, 2, 3, 0, (*CPU).opSBC},
	{0xE6, "INC", ZeroPage, 2, 5, 0, (*CPU).opINC},
	{0xE7, "ISC", ZeroPage, 2, 5, 0, (*CPU).opISC},
	{0xE8, "INX", Implied, 1, 2, 0, (*CPU).opINX},
	{0xE9, "SBC", Immediate, 2, 2, 0, (*CPU).opSBC},
	{0xEA, "NOP", Implied, 1, 2, 0, (*CPU).opNOP},
	{0xEB, "SBC", Immediate, 2, 2, 0, (*CPU).opSBC},
	{0xEC, "CPX", Absolute, 3, 4, 0, (*CPU).opCPX},
	{0xED, "SBC", Absolute, 3, 4, 0, (*CPU).opSBC},
	{0xEE, "INC", Absolute, 3, 6, 0, (*CPU).opINC},
	{0xEF, "ISC", Absolute, 3, 6, 0, (*CPU).opISC},

	{0xF0, "BEQ", Relative, 2, 2, 0, (*CPU).opBEQ},
	{0xF1, "SBC", IndirectIndexed, 2, 5, 1, (*CPU).opSBC},
	{0xF2, "STP", Implied, 1, 2, 0, (*CPU).opUnofficialNoop},
	{0xF3, "ISC", IndirectIndexed, 2, 8, 0, (*CPU).opISC},
	{0xF4, "NOP", ZeroPageX, 2, 4, 0, (*CPU).opNOP},
	{0xF5, "SBC", ZeroPageX, 2, 4, 0, (*CPU).opSBC},
	{0xF6, "INC", ZeroPageX, 2, 6, 0, (*CPU).opINC},
	{0xF7, "ISC", ZeroPageX, 2, 6, 0, (*CPU).opISC},
	{0xF8, "SED", Implied, 1, 2, 0, (*CPU).opSED},
	{0xF9, "SBC", AbsoluteY, 3, 4, 1, (*CPU).opSBC},
	{0xFA, "NOP", Implied, 1, 2, 0, (*CPU).opNOP},
	{0xFB, "ISC", AbsoluteY, 3, 7, 0, (*CPU).opISC},
	{0xFC, "NOP", AbsoluteX, 3, 4, 1, (*CPU).opNOP},
	{0xFD, "SBC", AbsoluteX, 3, 4, 1, (*CPU).opSBC},
	{0xFE, "INC", AbsoluteX, 3, 7, 0, (*CPU).opINC},
	{0xFF, "ISC", AbsoluteX, 3, 7, 0, (*CPU).opISC},
}

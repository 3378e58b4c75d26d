// Package cpu implements the 6502 CPU emulation for the NES.
package cpu

import (
	"log"

	"github.com/nesgo/nesgo/internal/apu"
	"github.com/nesgo/nesgo/internal/cartridge"
	"github.com/nesgo/nesgo/internal/input"
	"github.com/nesgo/nesgo/internal/ppu"
)

// AddressingMode identifies how an instruction's operand address is resolved.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
)

const (
	stackBase = 0x0100

	nmiVector   = 0xFFFA
	resetVector = 0xFFFC
	irqVector   = 0xFFFE
)

// Instruction is one entry of the 256-slot opcode dispatch table.
type Instruction struct {
	Name         string
	Mode         AddressingMode
	Bytes        uint8
	Cycles       uint8
	PageCrossAdd uint8
	Execute      func(cpu *CPU, info stepInfo)
	Unofficial   bool
}

type interruptKind int

const (
	interruptNone interruptKind = iota
	interruptNMI
	interruptIRQ
)

type stepInfo struct {
	address uint16
	mode    AddressingMode
}

// CPU is a 6502 interpreter. It owns the NES address bus: internal RAM, the
// PPU, the APU stub, both controller ports, and the cartridge mapper. There
// is no separate bus/memory object — Read/Write below are the bus.
type CPU struct {
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	PC uint16

	// Status flags. The two "empty" bits (unused, break) are not persistent
	// state; they are synthesized only when a status byte is pushed to the
	// stack (see statusByte).
	C bool
	Z bool
	I bool
	D bool
	V bool
	N bool

	ram [0x800]uint8

	PPU         *ppu.PPU
	APU         *apu.APU
	Controllers [2]*input.Controller
	mapper      cartridge.Mapper

	cycles uint64

	dmaStallCycles int
	interrupt      interruptKind

	instructions [256]Instruction

	// LogUnofficialOpcodes, when set, logs the first time each no-op
	// unofficial opcode (STP and friends) is executed. Off by default; the
	// host's -debug flag turns it on.
	LogUnofficialOpcodes bool
	loggedNoops          map[uint8]bool
}

// New creates a CPU wired to a PPU, an APU stub, two controllers and a
// mapper, then performs the power-up reset sequence.
func New(m cartridge.Mapper, p *ppu.PPU, a *apu.APU) *CPU {
	cpu := &CPU{
		PPU:    p,
		APU:    a,
		mapper: m,
		Controllers: [2]*input.Controller{
			input.NewController(),
			input.NewController(),
		},
	}
	cpu.initInstructions()
	cpu.Reset()
	return cpu
}

// Reset performs the 6502 power-up/reset sequence: PC from the reset vector,
// SP = 0xFD, P = 0x24 (unused=1, interrupt-disable=1, everything else clear).
func (cpu *CPU) Reset() {
	cpu.A, cpu.X, cpu.Y = 0, 0, 0
	cpu.SP = 0xFD
	cpu.setStatusByte(0x24)
	cpu.PC = cpu.read16(resetVector)
	cpu.cycles += 7
}

// SetMapper rewires the cartridge mapper after LoadCartridge swaps carts.
func (cpu *CPU) SetMapper(m cartridge.Mapper) {
	cpu.mapper = m
}

// TriggerOAMDMA starts the 256-byte copy from CPU page `page` into PPU OAM
// and arms the CPU stall counter (513, or 514 starting on an odd cycle).
func (cpu *CPU) TriggerOAMDMA(page uint8) {
	base := uint16(page) << 8
	var data [256]uint8
	for i := 0; i < 256; i++ {
		data[i] = cpu.Read(base + uint16(i))
	}
	cpu.PPU.WriteOAMDMA(data)

	stall := 513
	if cpu.cycles%2 == 1 {
		stall = 514
	}
	cpu.dmaStallCycles += stall
}

// Step executes one instruction (or one cycle of DMA stall, or one pending
// interrupt dispatch) and returns the number of CPU cycles it consumed.
func (cpu *CPU) Step() uint64 {
	if cpu.dmaStallCycles > 0 {
		cpu.dmaStallCycles--
		return 1
	}

	if cpu.PPU.TriggerNMI {
		cpu.PPU.TriggerNMI = false
		cpu.handleNMI()
		return 7
	}

	if cpu.interrupt != interruptNone {
		kind := cpu.interrupt
		cpu.interrupt = interruptNone
		if kind == interruptNMI {
			cpu.handleNMI()
		} else {
			cpu.handleIRQ()
		}
		return 7
	}

	startCycles := cpu.cycles

	opcode := cpu.Read(cpu.PC)
	inst := &cpu.instructions[opcode]

	if cpu.LogUnofficialOpcodes && inst.Unofficial && !cpu.loggedNoops[opcode] {
		if cpu.loggedNoops == nil {
			cpu.loggedNoops = make(map[uint8]bool)
		}
		cpu.loggedNoops[opcode] = true
		log.Printf("cpu: first execution of unofficial opcode %02X (%s) at PC=%04X", opcode, inst.Name, cpu.PC)
	}

	address, pageCrossed := cpu.resolveAddress(inst.Mode)

	cpu.PC += uint16(inst.Bytes)
	cpu.cycles += uint64(inst.Cycles)
	if pageCrossed {
		cpu.cycles += uint64(inst.PageCrossAdd)
	}

	inst.Execute(cpu, stepInfo{address: address, mode: inst.Mode})

	return cpu.cycles - startCycles
}

// RequestIRQ queues a level-triggered IRQ, honored at the top of the next
// Step unless interrupts are disabled.
func (cpu *CPU) RequestIRQ() {
	if !cpu.I {
		cpu.interrupt = interruptIRQ
	}
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

func (cpu *CPU) resolveAddress(mode AddressingMode) (uint16, bool) {
	switch mode {
	case Implied, Accumulator:
		return 0, false
	case Immediate:
		return cpu.PC + 1, false
	case ZeroPage:
		return uint16(cpu.Read(cpu.PC + 1)), false
	case ZeroPageX:
		return uint16(cpu.Read(cpu.PC+1) + cpu.X), false
	case ZeroPageY:
		return uint16(cpu.Read(cpu.PC+1) + cpu.Y), false
	case Relative:
		return cpu.PC + 1, false
	case Absolute:
		return cpu.read16(cpu.PC + 1), false
	case AbsoluteX:
		base := cpu.read16(cpu.PC + 1)
		addr := base + uint16(cpu.X)
		return addr, pageCrossed(base, addr)
	case AbsoluteY:
		base := cpu.read16(cpu.PC + 1)
		addr := base + uint16(cpu.Y)
		return addr, pageCrossed(base, addr)
	case Indirect:
		ptr := cpu.read16(cpu.PC + 1)
		lo := uint16(cpu.Read(ptr))
		var hi uint16
		if ptr&0x00FF == 0x00FF {
			hi = uint16(cpu.Read(ptr & 0xFF00)) // 6502 page-bug
		} else {
			hi = uint16(cpu.Read(ptr + 1))
		}
		return (hi << 8) | lo, false
	case IndexedIndirect:
		zp := cpu.Read(cpu.PC+1) + cpu.X
		lo := uint16(cpu.Read(uint16(zp)))
		hi := uint16(cpu.Read(uint16(zp + 1)))
		return (hi << 8) | lo, false
	case IndirectIndexed:
		zp := cpu.Read(cpu.PC + 1)
		lo := uint16(cpu.Read(uint16(zp)))
		hi := uint16(cpu.Read(uint16(zp + 1)))
		base := (hi << 8) | lo
		addr := base + uint16(cpu.Y)
		return addr, pageCrossed(base, addr)
	default:
		return 0, false
	}
}

func (cpu *CPU) branch(info stepInfo) {
	cpu.cycles++

	offset := int8(cpu.Read(info.address))
	oldPC := cpu.PC
	cpu.PC = uint16(int32(cpu.PC) + int32(offset))

	if pageCrossed(oldPC, cpu.PC) {
		cpu.cycles += 2
	}
}

func (cpu *CPU) push(value uint8) {
	cpu.Write(stackBase+uint16(cpu.SP), value)
	cpu.SP--
}

func (cpu *CPU) pushWord(value uint16) {
	cpu.push(uint8(value >> 8))
	cpu.push(uint8(value))
}

func (cpu *CPU) pop() uint8 {
	cpu.SP++
	return cpu.Read(stackBase + uint16(cpu.SP))
}

func (cpu *CPU) popWord() uint16 {
	lo := uint16(cpu.pop())
	hi := uint16(cpu.pop())
	return (hi << 8) | lo
}

func (cpu *CPU) setZN(value uint8) {
	cpu.Z = value == 0
	cpu.N = value&0x80 != 0
}

// statusByte packs the six tracked flags plus the given bits 4-5 (break and
// unused), matching the layout N V - B D I Z C.
func (cpu *CPU) statusByte(breakAndUnused uint8) uint8 {
	var b uint8
	if cpu.N {
		b |= 0x80
	}
	if cpu.V {
		b |= 0x40
	}
	b |= breakAndUnused & 0x30
	if cpu.D {
		b |= 0x08
	}
	if cpu.I {
		b |= 0x04
	}
	if cpu.Z {
		b |= 0x02
	}
	if cpu.C {
		b |= 0x01
	}
	return b
}

func (cpu *CPU) setStatusByte(b uint8) {
	cpu.N = b&0x80 != 0
	cpu.V = b&0x40 != 0
	cpu.D = b&0x08 != 0
	cpu.I = b&0x04 != 0
	cpu.Z = b&0x02 != 0
	cpu.C = b&0x01 != 0
}

func (cpu *CPU) handleNMI() {
	cpu.pushWord(cpu.PC)
	cpu.push(cpu.statusByte(0x30))
	cpu.I = true
	cpu.PC = cpu.read16(nmiVector)
	cpu.cycles += 7
}

func (cpu *CPU) handleIRQ() {
	cpu.pushWord(cpu.PC)
	cpu.push(cpu.statusByte(0x00))
	cpu.I = true
	cpu.PC = cpu.read16(irqVector)
	cpu.cycles += 7
}

func (cpu *CPU) read16(address uint16) uint16 {
	lo := uint16(cpu.Read(address))
	hi := uint16(cpu.Read(address + 1))
	return (hi << 8) | lo
}

// Read implements the CPU-visible address bus (spec §4.2).
func (cpu *CPU) Read(address uint16) uint8 {
	switch {
	case address < 0x2000:
		return cpu.ram[address%0x0800]
	case address < 0x4000:
		return cpu.readPPURegister(0x2000 + address%8)
	case address == 0x4014:
		return 0
	case address == 0x4016:
		return cpu.Controllers[0].Read()
	case address == 0x4017:
		return cpu.Controllers[1].Read()
	case address <= 0x4017:
		return cpu.APU.Read(address)
	case address <= 0x401F:
		return 0
	default:
		return cpu.mapper.ReadPRG(address)
	}
}

// Write implements the CPU-visible address bus (spec §4.2).
func (cpu *CPU) Write(address uint16, value uint8) {
	switch {
	case address < 0x2000:
		cpu.ram[address%0x0800] = value
	case address < 0x4000:
		cpu.writePPURegister(0x2000+address%8, value)
	case address == 0x4014:
		cpu.TriggerOAMDMA(value)
	case address == 0x4016:
		cpu.Controllers[0].Write(value)
		cpu.Controllers[1].Write(value)
	case address <= 0x4017:
		cpu.APU.Write(address, value)
	case address <= 0x401F:
		// CPU test mode, inert.
	default:
		cpu.mapper.WritePRG(address, value)
	}
}

func (cpu *CPU) readPPURegister(address uint16) uint8 {
	switch address {
	case 0x2002:
		return cpu.PPU.ReadStatus()
	case 0x2004:
		return cpu.PPU.ReadOAMData()
	case 0x2007:
		return cpu.PPU.ReadData()
	default:
		return 0
	}
}

func (cpu *CPU) writePPURegister(address uint16, value uint8) {
	cpu.PPU.LatchOpenBus(value)
	switch address {
	case 0x2000:
		cpu.PPU.WriteControl(value)
	case 0x2001:
		cpu.PPU.WriteMask(value)
	case 0x2003:
		cpu.PPU.WriteOAMAddress(value)
	case 0x2004:
		cpu.PPU.WriteOAMData(value)
	case 0x2005:
		cpu.PPU.WriteScroll(value)
	case 0x2006:
		cpu.PPU.WriteAddress(value)
	case 0x2007:
		cpu.PPU.WriteData(value)
	}
}

package cpu

import (
	"testing"

	"github.com/nesgo/nesgo/internal/apu"
	"github.com/nesgo/nesgo/internal/cartridge"
	"github.com/nesgo/nesgo/internal/ppu"
)

// flatMapper maps the full $8000-$FFFF window directly onto a 32 KiB PRG
// array and $0000-$1FFF onto an 8 KiB CHR array, for CPU tests that only
// need a program to execute and don't care about bank switching.
type flatMapper struct {
	prg [0x8000]uint8
	chr [0x2000]uint8
}

func (m *flatMapper) ReadPRG(addr uint16) uint8 {
	if addr < 0x8000 {
		return 0
	}
	return m.prg[addr-0x8000]
}
func (m *flatMapper) WritePRG(addr uint16, v uint8) {
	if addr >= 0x8000 {
		m.prg[addr-0x8000] = v
	}
}
func (m *flatMapper) ReadCHR(addr uint16) uint8       { return m.chr[addr] }
func (m *flatMapper) WriteCHR(addr uint16, v uint8)   { m.chr[addr] = v }
func (m *flatMapper) Mirroring() cartridge.MirrorMode { return cartridge.MirrorHorizontal }
func (m *flatMapper) SaveBattery(string) error        { return nil }
func (m *flatMapper) LoadBattery(string) error         { return nil }

func (m *flatMapper) setResetVector(addr uint16) {
	m.prg[0xFFFC-0x8000] = uint8(addr)
	m.prg[0xFFFD-0x8000] = uint8(addr >> 8)
}

func (m *flatMapper) loadProgram(addr uint16, program ...uint8) {
	for i, b := range program {
		m.prg[addr-0x8000+uint16(i)] = b
	}
}

func newTestCPU() (*CPU, *flatMapper) {
	m := &flatMapper{}
	m.setResetVector(0x8000)
	p := ppu.New(m)
	a := apu.New()
	c := New(m, p, a)
	return c, m
}

func TestResetVector(t *testing.T) {
	c, _ := newTestCPU()
	if c.PC != 0x8000 {
		t.Fatalf("PC after reset = %#x, want 0x8000", c.PC)
	}
	if c.SP != 0xFD {
		t.Fatalf("SP after reset = %#x, want 0xFD", c.SP)
	}
}

func TestLDAImmediateSetsFlags(t *testing.T) {
	c, m := newTestCPU()
	m.loadProgram(0x8000, 0xA9, 0x00) // LDA #$00
	c.Step()
	if !c.Z || c.N {
		t.Fatalf("LDA #0: Z=%v N=%v, want Z=true N=false", c.Z, c.N)
	}

	c, m = newTestCPU()
	m.loadProgram(0x8000, 0xA9, 0x80) // LDA #$80
	c.Step()
	if c.Z || !c.N {
		t.Fatalf("LDA #0x80: Z=%v N=%v, want Z=false N=true", c.Z, c.N)
	}
}

func TestSBCIsCanonicalTwosComplementSubtraction(t *testing.T) {
	c, m := newTestCPU()
	// SEC; LDA #$05; SBC #$01 -> A = 4, no borrow (C set).
	m.loadProgram(0x8000, 0x38, 0xA9, 0x05, 0xE9, 0x01)
	c.Step()
	c.Step()
	c.Step()
	if c.A != 4 {
		t.Fatalf("A = %d, want 4", c.A)
	}
	if !c.C {
		t.Fatalf("C should be set: no borrow occurred")
	}
}

func TestSBCBorrowClearsCarry(t *testing.T) {
	c, m := newTestCPU()
	// SEC; LDA #$01; SBC #$05 -> A = 0xFC, borrow occurred (C clear).
	m.loadProgram(0x8000, 0x38, 0xA9, 0x01, 0xE9, 0x05)
	c.Step()
	c.Step()
	c.Step()
	if c.A != 0xFC {
		t.Fatalf("A = %#x, want 0xFC", c.A)
	}
	if c.C {
		t.Fatalf("C should be clear: a borrow occurred")
	}
}

func TestLSRCarryFromBitZero(t *testing.T) {
	c, m := newTestCPU()
	// LDA #$03; LSR A -> A=1, C=1 (bit 0 of 3, not bit 7).
	m.loadProgram(0x8000, 0xA9, 0x03, 0x4A)
	c.Step()
	c.Step()
	if c.A != 1 || !c.C {
		t.Fatalf("A=%d C=%v, want A=1 C=true", c.A, c.C)
	}
}

func TestBranchNotTakenCostsTwoCycles(t *testing.T) {
	c, m := newTestCPU()
	m.loadProgram(0x8000, 0xB0, 0x10) // BCS +16, carry clear so not taken
	cycles := c.Step()
	if cycles != 2 {
		t.Fatalf("not-taken branch cost %d cycles, want 2", cycles)
	}
}

func TestBranchTakenSamePageCostsThreeCycles(t *testing.T) {
	c, m := newTestCPU()
	m.loadProgram(0x8000, 0x38, 0x90, 0x02) // SEC; BCC (not taken, but then...)
	// Use BCS instead: SEC sets carry, then BCS taken, target stays on same page.
	m.loadProgram(0x8000, 0x38, 0xB0, 0x02)
	c.Step() // SEC
	cycles := c.Step()
	if cycles != 3 {
		t.Fatalf("taken same-page branch cost %d cycles, want 3", cycles)
	}
}

func TestBranchTakenCrossingPageCostsFiveCycles(t *testing.T) {
	m := &flatMapper{}
	// Put SEC; BCS at the end of a page so the branch target crosses into
	// the next page.
	m.setResetVector(0x80F0)
	m.loadProgram(0x80F0, 0x38)       // SEC
	m.loadProgram(0x80F1, 0xB0, 0x10) // BCS +16 -> target 0x8103, crosses page

	p := ppu.New(m)
	c := New(m, p, apu.New())
	c.Step() // SEC
	cycles := c.Step()
	// base(2) + taken(1) + page-cross(2): this implementation preserves the
	// original source's non-standard +2 (not +1) page-cross penalty.
	if cycles != 5 {
		t.Fatalf("taken cross-page branch cost %d cycles, want 5", cycles)
	}
}

func TestIRQPushesStatusWithBreakBitsClear(t *testing.T) {
	c, _ := newTestCPU()
	c.I = false
	c.N, c.V, c.D, c.Z, c.C = true, true, true, true, true
	c.RequestIRQ()
	c.Step()

	pulled := c.pop()
	_ = c.popWord() // discard return PC
	if pulled&0x30 != 0x00 {
		t.Fatalf("IRQ pushed status %#x, want bits 4-5 clear", pulled)
	}
}

func TestNMIPushesStatusWithBreakBitsSet(t *testing.T) {
	c, _ := newTestCPU()
	c.PPU.TriggerNMI = true
	c.Step()

	pulled := c.pop()
	_ = c.popWord()
	if pulled&0x30 != 0x30 {
		t.Fatalf("NMI pushed status %#x, want bits 4-5 set", pulled)
	}
}

func TestPLPIgnoresBreakAndUnusedBits(t *testing.T) {
	c, m := newTestCPU()
	m.loadProgram(0x8000, 0x28) // PLP
	c.push(0xFF)
	c.Step()
	// Only the six tracked flags should reflect bit pattern of 0xFF; bits
	// 4-5 have no persistent representation at all.
	if !(c.N && c.V && c.D && c.I && c.Z && c.C) {
		t.Fatalf("PLP should set all six tracked flags from 0xFF")
	}
}

func TestUnofficialLAXLoadsAAndX(t *testing.T) {
	c, m := newTestCPU()
	m.loadProgram(0x8000, 0xA7, 0x00) // LAX $00
	c.Write(0x00, 0x42)
	c.Step()
	if c.A != 0x42 || c.X != 0x42 {
		t.Fatalf("LAX: A=%#x X=%#x, want both 0x42", c.A, c.X)
	}
}

func TestOAMDMAStallsCPU(t *testing.T) {
	c, _ := newTestCPU()
	c.TriggerOAMDMA(0x02)
	if cycles := c.Step(); cycles != 1 {
		t.Fatalf("first step after OAM DMA trigger should stall for 1 cycle, got %d", cycles)
	}
}

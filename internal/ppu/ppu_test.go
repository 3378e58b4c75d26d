package ppu

import (
	"testing"

	"github.com/nesgo/nesgo/internal/cartridge"
)

// stubMapper is a minimal cartridge.Mapper for PPU-only tests: flat CHR RAM
// and a configurable mirroring mode.
type stubMapper struct {
	chr  [0x2000]uint8
	mode cartridge.MirrorMode
}

func (m *stubMapper) ReadPRG(uint16) uint8            { return 0 }
func (m *stubMapper) WritePRG(uint16, uint8)          {}
func (m *stubMapper) ReadCHR(addr uint16) uint8       { return m.chr[addr%uint16(len(m.chr))] }
func (m *stubMapper) WriteCHR(addr uint16, v uint8)   { m.chr[addr%uint16(len(m.chr))] = v }
func (m *stubMapper) Mirroring() cartridge.MirrorMode { return m.mode }
func (m *stubMapper) SaveBattery(string) error        { return nil }
func (m *stubMapper) LoadBattery(string) error        { return nil }

func newTestPPU(mode cartridge.MirrorMode) (*PPU, *stubMapper) {
	m := &stubMapper{mode: mode}
	return New(m), m
}

func TestNametableMirroringHorizontal(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorHorizontal)
	p.write(0x2000, 0xAB)
	if got := p.read(0x2400); got != 0xAB {
		t.Fatalf("horizontal mirror: $2400 = %#x, want $2000's value", got)
	}
	if got := p.read(0x2800); got == 0xAB {
		t.Fatalf("horizontal mirror: $2800 should be the other physical bank")
	}
}

func TestNametableMirroringVertical(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorVertical)
	p.write(0x2000, 0xCD)
	if got := p.read(0x2800); got != 0xCD {
		t.Fatalf("vertical mirror: $2800 = %#x, want $2000's value", got)
	}
	if got := p.read(0x2400); got == 0xCD {
		t.Fatalf("vertical mirror: $2400 should be the other physical bank")
	}
}

func TestPaletteBackdropMirroring(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorHorizontal)
	p.write(0x3F00, 0x0F)
	if got := p.read(0x3F10); got != 0x0F {
		t.Fatalf("$3F10 should mirror the universal backdrop at $3F00, got %#x", got)
	}
	// Non-backdrop sprite palette entries are NOT mirrored.
	p.write(0x3F11, 0x16)
	p.write(0x3F01, 0x20)
	if got := p.read(0x3F11); got != 0x16 {
		t.Fatalf("$3F11 must not alias $3F01, got %#x", got)
	}
}

func TestPPUDataReadIsBuffered(t *testing.T) {
	p, m := newTestPPU(cartridge.MirrorHorizontal)
	m.chr[0x0010] = 0x42

	p.WriteAddress(0x00)
	p.WriteAddress(0x10)

	if got := p.ReadData(); got != 0 {
		t.Fatalf("first $2007 read should return the stale buffer (0), got %#x", got)
	}
	if got := p.ReadData(); got != 0x42 {
		t.Fatalf("second $2007 read should return the buffered CHR byte, got %#x", got)
	}
}

func TestPPUDataPaletteReadIsImmediate(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorHorizontal)
	p.paletteRAM[0] = 0x30

	p.WriteAddress(0x3F)
	p.WriteAddress(0x00)

	if got := p.ReadData(); got != 0x30 {
		t.Fatalf("palette reads through $2007 are immediate, got %#x, want 0x30", got)
	}
}

func TestVBlankFlagAndNMI(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorHorizontal)
	p.WriteControl(0x80) // enable NMI generation

	p.scanline, p.cycle = 241, 0
	for i := 0; i < 2; i++ {
		p.Step()
	}
	if !p.inVBlank {
		t.Fatalf("in_vblank should be set at (241,1)")
	}
	// nmi_delay is armed at (241,1) and counts down later in that same Step.
	if !p.TriggerNMI {
		t.Fatalf("TriggerNMI should fire in the Step that sets vblank with NMI enabled")
	}
}

func TestVBlankClearedAtPreRender(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorHorizontal)
	p.inVBlank = true
	p.spriteZeroHit = true
	p.spriteOverflow = true
	p.scanline, p.cycle = 261, 0
	for i := 0; i < 2; i++ {
		p.Step()
	}
	if p.inVBlank || p.spriteZeroHit || p.spriteOverflow {
		t.Fatalf("pre-render (261,1) should clear vblank, sprite-zero hit, and overflow")
	}
}

func TestFrameReadySignal(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorHorizontal)
	p.scanline, p.cycle = 240, 255
	p.Step()
	if p.scanline != 240 || p.cycle != 256 {
		t.Fatalf("expected to land on (256,240), got (%d,%d)", p.cycle, p.scanline)
	}
	if !p.FrameReady {
		t.Fatalf("FrameReady should be set on transition into (256,240)")
	}
}

func TestSpriteEvaluationCapturesEightAndFlagsOverflow(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorHorizontal)
	for i := 0; i < 9; i++ {
		p.oam[i*4+0] = 10 // all nine sprites cover scanline 11..18
		p.oam[i*4+1] = uint8(i)
		p.oam[i*4+3] = uint8(i * 8)
	}
	p.evaluateSprites(12)
	if p.spriteCount != 8 {
		t.Fatalf("spriteCount = %d, want 8 (hardware caps at 8 per scanline)", p.spriteCount)
	}
	if !p.spriteOverflow {
		t.Fatalf("expected sprite overflow to be flagged with a 9th in-range sprite")
	}
}

func TestSpriteEvaluationSkipsOutOfRange(t *testing.T) {
	p, _ := newTestPPU(cartridge.MirrorHorizontal)
	p.oam[0] = 100 // far below the target scanline
	p.evaluateSprites(12)
	if p.spriteCount != 0 {
		t.Fatalf("spriteCount = %d, want 0 for an out-of-range sprite", p.spriteCount)
	}
}

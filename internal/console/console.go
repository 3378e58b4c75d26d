// Package console wires the CPU, PPU, APU stub, controllers, and cartridge
// mapper into the single stepping loop an embedding program drives. It is
// the thin surface spec §6 describes: no window, no audio output, no input
// device scanning, just cycles in and pixels/inputs out.
package console

import (
	"fmt"

	"github.com/nesgo/nesgo/internal/apu"
	"github.com/nesgo/nesgo/internal/cartridge"
	"github.com/nesgo/nesgo/internal/cpu"
	"github.com/nesgo/nesgo/internal/ppu"
)

// Console owns one emulated NES: a CPU (which itself owns RAM, the PPU, the
// APU stub, and both controller ports) plus the currently loaded cartridge.
type Console struct {
	CPU *cpu.CPU
	PPU *ppu.PPU
	APU *apu.APU

	cart *cartridge.Cartridge
}

// New returns a console with no cartridge loaded. Until LoadCartridge
// succeeds, Step still runs the CPU and PPU, but every cartridge read returns
// open bus (0xFF) and every cartridge write is dropped.
func New() *Console {
	c := &Console{APU: apu.New()}
	mapper := &noCartridge{}
	c.PPU = ppu.New(mapper)
	c.CPU = cpu.New(mapper, c.PPU, c.APU)
	return c
}

// LoadCartridge decodes an iNES image from disk and swaps it in, rewiring
// the CPU and PPU to the new mapper and resetting both to their power-up
// state. Any previously loaded cartridge's battery RAM is saved first.
func (c *Console) LoadCartridge(path string) error {
	if err := c.saveBattery(); err != nil {
		return err
	}

	cart, err := cartridge.Load(path)
	if err != nil {
		return fmt.Errorf("console: loading cartridge: %w", err)
	}

	c.cart = cart
	c.CPU.SetMapper(cart.Mapper)
	c.PPU.SetMapper(cart.Mapper)
	c.CPU.Reset()
	c.PPU.Reset()
	return nil
}

// Shutdown flushes battery-backed cartridge RAM to disk, if the loaded
// cartridge has any.
func (c *Console) Shutdown() error {
	return c.saveBattery()
}

func (c *Console) saveBattery() error {
	if c.cart == nil || !c.cart.HasBattery {
		return nil
	}
	path := cartridge.BatteryPath(c.cart.SourcePath)
	if err := c.cart.Mapper.SaveBattery(path); err != nil {
		return fmt.Errorf("console: saving battery RAM: %w", err)
	}
	return nil
}

// Step executes exactly one CPU instruction (or one cycle of DMA stall, or
// one interrupt dispatch) and steps the PPU three dots for every CPU cycle
// consumed, per spec §5's lock-step scheduling.
func (c *Console) Step() {
	cpuCycles := c.CPU.Step()
	for i := uint64(0); i < cpuCycles*3; i++ {
		c.PPU.Step()
	}
}

// SetControllerButtons updates one controller's button latch. The embedder
// calls this between Step calls; it owns keyboard/gamepad scanning (spec §6
// Non-goals).
func (c *Console) SetControllerButtons(player int, mask uint8) {
	if player < 0 || player > 1 {
		return
	}
	c.CPU.Controllers[player].SetButtons(mask)
}

// GetFrameBuffer returns the most recently rendered frame, one RGB pixel per
// NES pixel, row-major from the top-left.
func (c *Console) GetFrameBuffer() *[256 * 240]ppu.Color {
	return c.PPU.GetFrameBuffer()
}

// FrameComplete reports whether a new frame has finished rendering since the
// last call, consuming the signal if so. The embedder polls this once per
// Step (or per batch of Steps) to know when to present a frame.
func (c *Console) FrameComplete() bool {
	if c.PPU.FrameReady {
		c.PPU.FrameReady = false
		return true
	}
	return false
}

// noCartridge is the mapper wired in before any ROM is loaded: every read is
// open bus (0xFF), every write is dropped.
type noCartridge struct{}

func (noCartridge) ReadPRG(uint16) uint8            { return 0xFF }
func (noCartridge) WritePRG(uint16, uint8)          {}
func (noCartridge) ReadCHR(uint16) uint8            { return 0xFF }
func (noCartridge) WriteCHR(uint16, uint8)          {}
func (noCartridge) Mirroring() cartridge.MirrorMode { return cartridge.MirrorHorizontal }
func (noCartridge) SaveBattery(string) error        { return nil }
func (noCartridge) LoadBattery(string) error        { return nil }

// Package ppu implements the 2C02 picture processing unit: the background
// shift-register pipeline, sprite evaluation, and the nametable/palette
// address space, driven one PPU dot at a time.
package ppu

import "github.com/nesgo/nesgo/internal/cartridge"

// Color is one RGB output pixel.
type Color struct {
	R, G, B uint8
}

const (
	screenWidth  = 256
	screenHeight = 240
)

// PPU is a 2C02. It owns its own address space (two 1 KiB nametable banks,
// 32 bytes of palette RAM, 256 bytes of OAM) and is driven by Step, called
// once per PPU dot by the console (three dots per CPU cycle).
type PPU struct {
	mapper cartridge.Mapper

	cycle    int
	scanline int
	frame    uint64

	// Loopy scroll registers.
	v, t  uint16
	fineX uint8
	w     bool

	nametableRAM [0x800]uint8
	paletteRAM   [32]uint8
	oam          [256]uint8
	oamAddress   uint8

	// PPUCTRL.
	baseNametable       uint8
	vramIncrement32     bool
	spriteTableHigh     bool
	backgroundTableHigh bool
	spriteSize16        bool
	nmiOutput           bool

	// PPUMASK.
	grayscale          bool
	showLeftBackground bool
	showLeftSprites    bool
	showBackground     bool
	showSprites        bool

	// PPUSTATUS.
	spriteOverflow bool
	spriteZeroHit  bool
	inVBlank       bool

	dataBuffer uint8

	nmiPrevious bool
	nmiDelay    int
	// TriggerNMI is polled and cleared by the CPU once per Step.
	TriggerNMI bool

	// Background fetch latches and shift registers.
	nextTileID    uint8
	nextTileLSB   uint8
	nextTileMSB   uint8
	attribLatchLo uint8
	attribLatchHi uint8
	bgPatternLo   uint16
	bgPatternHi   uint16
	bgAttribLo    uint8
	bgAttribHi    uint8

	// Sprite pipeline, one slot per sprite captured for the current scanline.
	spriteCount       int
	spritePatternLo   [8]uint8
	spritePatternHi   [8]uint8
	spriteX           [8]uint8
	spriteAttrib      [8]uint8
	spriteSourceIndex [8]int

	// FrameReady is set for one Step call per frame, when the scanline/cycle
	// counters transition into (256, 240). The console polls and clears it.
	FrameReady bool

	FrameBuffer [screenWidth * screenHeight]Color
}

// New returns a PPU wired to a cartridge mapper, powered up at scanline 261.
func New(mapper cartridge.Mapper) *PPU {
	p := &PPU{mapper: mapper}
	p.Reset()
	return p
}

// SetMapper rewires the cartridge mapper after the console loads a new cart.
func (p *PPU) SetMapper(mapper cartridge.Mapper) {
	p.mapper = mapper
}

// Reset returns the PPU to its power-up state.
func (p *PPU) Reset() {
	p.cycle = 0
	p.scanline = 261
	p.frame = 0
	p.v, p.t, p.fineX, p.w = 0, 0, 0, false
	p.oamAddress = 0
	p.inVBlank = false
	p.spriteZeroHit = false
	p.spriteOverflow = false
	p.nmiOutput = false
	p.nmiPrevious = false
	p.nmiDelay = 0
	p.TriggerNMI = false
}

// Step advances the PPU by exactly one dot.
func (p *PPU) Step() {
	backgroundActive := p.scanline < 240 || p.scanline == 261

	if backgroundActive {
		inFetchWindow := (p.cycle >= 1 && p.cycle <= 256) || (p.cycle >= 321 && p.cycle <= 336)
		if inFetchWindow {
			p.shiftBackgroundRegisters()
			p.backgroundFetchStep()
		}
		if p.cycle == 256 {
			p.incrementY()
		}
		if p.cycle == 257 {
			p.copyHorizontalBits()
			if p.scanline < 240 {
				p.evaluateSprites(p.scanline + 1)
			}
		}
		if p.scanline == 261 && p.cycle >= 280 && p.cycle <= 304 {
			p.copyVerticalBits()
		}
	}

	if p.scanline < 240 && p.cycle >= 1 && p.cycle <= 256 {
		p.renderPixel(p.cycle-1, p.scanline)
	}

	if p.scanline == 241 && p.cycle == 1 {
		p.inVBlank = true
		p.checkNMI()
	}
	if p.scanline == 261 && p.cycle == 1 {
		p.inVBlank = false
		p.spriteZeroHit = false
		p.spriteOverflow = false
		p.checkNMI()
	}

	if p.nmiDelay > 0 {
		p.nmiDelay--
		if p.nmiDelay == 0 && p.nmiOutput && p.inVBlank {
			p.TriggerNMI = true
		}
	}

	p.advance()

	if p.cycle == 256 && p.scanline == 240 {
		p.FrameReady = true
	}
}

func (p *PPU) advance() {
	oddFrame := p.frame%2 == 1
	switch {
	case p.cycle == 339 && p.scanline == 261 && oddFrame:
		p.cycle, p.scanline = 0, 0
		p.frame++
	case p.cycle == 340 && p.scanline == 261:
		p.cycle, p.scanline = 0, 0
		p.frame++
	case p.cycle == 340:
		p.cycle = 0
		p.scanline++
	default:
		p.cycle++
	}
}

func (p *PPU) checkNMI() {
	line := p.nmiOutput && p.inVBlank
	if line && !p.nmiPrevious {
		p.nmiDelay = 1
	}
	p.nmiPrevious = line
}

func (p *PPU) shiftBackgroundRegisters() {
	p.bgPatternLo <<= 1
	p.bgPatternHi <<= 1
	p.bgAttribLo = (p.bgAttribLo << 1) | p.attribLatchLo
	p.bgAttribHi = (p.bgAttribHi << 1) | p.attribLatchHi
}

func (p *PPU) backgroundFetchStep() {
	switch p.cycle % 8 {
	case 1:
		p.reloadShiftRegisters()
		p.nextTileID = p.read(0x2000 | (p.v & 0x0FFF))
	case 3:
		addr := uint16(0x23C0) | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
		attribByte := p.read(addr)
		shift := ((p.v >> 4) & 4) | (p.v & 2)
		bits := (attribByte >> shift) & 0x03
		p.attribLatchLo = bits & 1
		p.attribLatchHi = (bits >> 1) & 1
	case 5:
		p.nextTileLSB = p.read(p.backgroundPatternAddress())
	case 7:
		p.nextTileMSB = p.read(p.backgroundPatternAddress() + 8)
	case 0:
		p.incrementCoarseX()
	}
}

func (p *PPU) backgroundPatternAddress() uint16 {
	base := uint16(0)
	if p.backgroundTableHigh {
		base = 0x1000
	}
	fineY := (p.v >> 12) & 0x7
	return base + uint16(p.nextTileID)*16 + fineY
}

func (p *PPU) reloadShiftRegisters() {
	p.bgPatternLo = (p.bgPatternLo & 0xFF00) | uint16(p.nextTileLSB)
	p.bgPatternHi = (p.bgPatternHi & 0xFF00) | uint16(p.nextTileMSB)
}

func (p *PPU) incrementCoarseX() {
	if p.v&0x001F == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

func (p *PPU) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}
	p.v &^= 0x7000
	y := (p.v & 0x03E0) >> 5
	switch y {
	case 29:
		y = 0
		p.v ^= 0x0800
	case 31:
		y = 0
	default:
		y++
	}
	p.v = (p.v &^ 0x03E0) | (y << 5)
}

func (p *PPU) copyHorizontalBits() {
	p.v = (p.v & 0xFBE0) | (p.t & 0x041F)
}

func (p *PPU) copyVerticalBits() {
	p.v = (p.v & 0x841F) | (p.t & 0x7BE0)
}

// evaluateSprites scans primary OAM for up to 8 sprites covering
// targetScanline and loads their pattern bytes, ready for the next
// scanline's pixel output. OAM_Y is always one less than the scanline a
// sprite is drawn on, so row is computed against targetScanline-1. It only
// touches OAM and the mapper's CHR data, so it can be exercised directly
// in tests.
func (p *PPU) evaluateSprites(targetScanline int) {
	height := 8
	if p.spriteSize16 {
		height = 16
	}

	var captured [8]int
	count := 0
	for i := 0; i < 64; i++ {
		y := int(p.oam[i*4+0])
		row := targetScanline - 1 - y
		if row < 0 || row >= height {
			continue
		}
		if count < 8 {
			captured[count] = i
			count++
			continue
		}
		p.spriteOverflow = true
		break
	}
	p.spriteCount = count

	for slot := 0; slot < count; slot++ {
		idx := captured[slot]
		y := p.oam[idx*4+0]
		tile := p.oam[idx*4+1]
		attrib := p.oam[idx*4+2]
		x := p.oam[idx*4+3]

		row := targetScanline - 1 - int(y)
		flipV := attrib&0x80 != 0
		flipH := attrib&0x40 != 0
		if flipV {
			row = height - 1 - row
		}

		var patternAddr uint16
		if height == 16 {
			table := uint16(tile&1) * 0x1000
			tileIndex := uint16(tile &^ 1)
			if row >= 8 {
				tileIndex++
				row -= 8
			}
			patternAddr = table + tileIndex*16 + uint16(row)
		} else {
			table := uint16(0)
			if p.spriteTableHigh {
				table = 0x1000
			}
			patternAddr = table + uint16(tile)*16 + uint16(row)
		}

		lo := p.read(patternAddr)
		hi := p.read(patternAddr + 8)
		if flipH {
			lo = reverseBits(lo)
			hi = reverseBits(hi)
		}

		p.spritePatternLo[slot] = lo
		p.spritePatternHi[slot] = hi
		p.spriteX[slot] = x
		p.spriteAttrib[slot] = attrib
		p.spriteSourceIndex[slot] = idx
	}
}

func reverseBits(b uint8) uint8 {
	var r uint8
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}

func (p *PPU) renderPixel(x, y int) {
	bgPixel, bgPalette := 0, 0
	if p.showBackground {
		bit := uint16(0x8000) >> p.fineX
		lo, hi := 0, 0
		if p.bgPatternLo&bit != 0 {
			lo = 1
		}
		if p.bgPatternHi&bit != 0 {
			hi = 1
		}
		bgPixel = hi<<1 | lo

		abit := uint8(0x80) >> p.fineX
		alo, ahi := 0, 0
		if p.bgAttribLo&abit != 0 {
			alo = 1
		}
		if p.bgAttribHi&abit != 0 {
			ahi = 1
		}
		bgPalette = ahi<<1 | alo

		if x < 8 && !p.showLeftBackground {
			bgPixel = 0
		}
	}

	spPixel, spPalette := 0, 0
	spBehind, spIsZero := false, false
	for i := 0; i < p.spriteCount; i++ {
		if p.spriteX[i] > 0 {
			p.spriteX[i]--
			continue
		}
		lo := (p.spritePatternLo[i] >> 7) & 1
		hi := (p.spritePatternHi[i] >> 7) & 1
		pix := int(hi<<1 | lo)
		p.spritePatternLo[i] <<= 1
		p.spritePatternHi[i] <<= 1
		if pix != 0 && spPixel == 0 {
			spPixel = pix
			spPalette = int(p.spriteAttrib[i] & 0x03)
			spBehind = p.spriteAttrib[i]&0x20 != 0
			spIsZero = p.spriteSourceIndex[i] == 0
		}
	}
	if !p.showSprites {
		spPixel = 0
	}
	if x < 8 && !p.showLeftSprites {
		spPixel = 0
	}

	paletteIndex := 0
	switch {
	case bgPixel == 0 && spPixel != 0:
		paletteIndex = 0x10 + spPalette*4 + spPixel
	case bgPixel != 0 && spPixel == 0:
		paletteIndex = bgPalette*4 + bgPixel
	case bgPixel != 0 && spPixel != 0:
		if spIsZero && x != 255 {
			p.spriteZeroHit = true
		}
		if spBehind {
			paletteIndex = bgPalette*4 + bgPixel
		} else {
			paletteIndex = 0x10 + spPalette*4 + spPixel
		}
	}

	colorIndex := p.paletteRAM[paletteIndex&0x1F] & 0x3F
	p.FrameBuffer[y*screenWidth+x] = palette2C02[colorIndex]
}

// GetFrameBuffer returns the completed frame, one RGB pixel per NES pixel,
// row-major from the top-left.
func (p *PPU) GetFrameBuffer() *[screenWidth * screenHeight]Color {
	return &p.FrameBuffer
}

// --- PPU address space ---

func (p *PPU) read(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return p.mapper.ReadCHR(addr)
	case addr < 0x3F00:
		return p.nametableRAM[p.nametableIndex(addr)]
	default:
		return p.paletteRAM[p.paletteIndex(addr)]
	}
}

func (p *PPU) write(addr uint16, value uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		p.mapper.WriteCHR(addr, value)
	case addr < 0x3F00:
		p.nametableRAM[p.nametableIndex(addr)] = value
	default:
		p.paletteRAM[p.paletteIndex(addr)] = value
	}
}

func (p *PPU) nametableIndex(addr uint16) int {
	offset := (addr - 0x2000) % 0x1000
	table := offset / 0x400
	inTable := offset % 0x400

	var physical int
	switch p.mapper.Mirroring() {
	case cartridge.MirrorHorizontal:
		if table == 0 || table == 1 {
			physical = 0
		} else {
			physical = 1
		}
	case cartridge.MirrorVertical:
		if table == 0 || table == 2 {
			physical = 0
		} else {
			physical = 1
		}
	case cartridge.MirrorSingle0:
		physical = 0
	case cartridge.MirrorSingle1:
		physical = 1
	default:
		// Four-screen nametables are not modeled; fold onto the two
		// physical banks this PPU actually has.
		physical = int(table) % 2
	}
	return physical*0x400 + int(inTable)
}

func (p *PPU) paletteIndex(addr uint16) int {
	idx := int((addr - 0x3F00) % 0x20)
	if idx >= 0x10 && idx%4 == 0 {
		idx -= 0x10
	}
	return idx
}

// --- CPU-visible register interface ---

// LatchOpenBus records the last byte written to any PPU register, which
// PPUSTATUS's low 5 bits echo back (an approximation of real open-bus
// decay).
func (p *PPU) LatchOpenBus(value uint8) {
	p.dataBuffer = value
}

func (p *PPU) WriteControl(value uint8) {
	p.baseNametable = value & 0x03
	p.vramIncrement32 = value&0x04 != 0
	p.spriteTableHigh = value&0x08 != 0
	p.backgroundTableHigh = value&0x10 != 0
	p.spriteSize16 = value&0x20 != 0
	p.nmiOutput = value&0x80 != 0
	p.t = (p.t & 0xF3FF) | (uint16(value)&0x03)<<10
	p.checkNMI()
}

func (p *PPU) WriteMask(value uint8) {
	p.grayscale = value&0x01 != 0
	p.showLeftBackground = value&0x02 != 0
	p.showLeftSprites = value&0x04 != 0
	p.showBackground = value&0x08 != 0
	p.showSprites = value&0x10 != 0
}

func (p *PPU) WriteOAMAddress(value uint8) {
	p.oamAddress = value
}

func (p *PPU) WriteOAMData(value uint8) {
	p.oam[p.oamAddress] = value
	p.oamAddress++
}

func (p *PPU) WriteScroll(value uint8) {
	if !p.w {
		p.t = (p.t & 0xFFE0) | uint16(value)>>3
		p.fineX = value & 0x07
	} else {
		p.t = (p.t & 0x8FFF) | (uint16(value)&0x07)<<12
		p.t = (p.t & 0xFC1F) | (uint16(value)&0xF8)<<2
	}
	p.w = !p.w
}

func (p *PPU) WriteAddress(value uint8) {
	if !p.w {
		p.t = (p.t & 0x80FF) | (uint16(value)&0x3F)<<8
	} else {
		p.t = (p.t & 0xFF00) | uint16(value)
		p.v = p.t
	}
	p.w = !p.w
}

func (p *PPU) WriteData(value uint8) {
	p.write(p.v, value)
	p.incrementV()
}

func (p *PPU) WriteOAMDMA(data [256]uint8) {
	p.oam = data
}

func (p *PPU) ReadStatus() uint8 {
	result := p.dataBuffer & 0x1F
	if p.spriteOverflow {
		result |= 0x20
	}
	if p.spriteZeroHit {
		result |= 0x40
	}
	if p.inVBlank {
		result |= 0x80
	}
	p.w = false
	p.inVBlank = false
	p.checkNMI()
	return result
}

func (p *PPU) ReadOAMData() uint8 {
	return p.oam[p.oamAddress]
}

func (p *PPU) ReadData() uint8 {
	result := p.read(p.v)
	if p.v%0x4000 < 0x3F00 {
		buffered := p.dataBuffer
		p.dataBuffer = result
		result = buffered
	} else {
		p.dataBuffer = p.read(p.v - 0x1000)
	}
	p.incrementV()
	return result
}

func (p *PPU) incrementV() {
	if p.vramIncrement32 {
		p.v = (p.v + 32) & 0x7FFF
	} else {
		p.v = (p.v + 1) & 0x7FFF
	}
}

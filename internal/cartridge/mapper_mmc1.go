package cartridge

import (
	"fmt"
	"os"
)

// mmc1 is mapper 1: a 5-bit serial shift register feeding four sub-registers
// (control, CHR bank 0, CHR bank 1, PRG bank), plus 8 KiB of PRG RAM that is
// battery-backed when the cartridge header requests it.
type mmc1 struct {
	cart *Cartridge

	shiftRegister uint8
	shiftCount    uint8

	control uint8 // bit0-1 mirroring, bit2-3 PRG mode, bit4 CHR mode
	chrBank0 uint8
	chrBank1 uint8
	prgBank  uint8

	prgRAM [0x2000]uint8
}

func newMMC1(cart *Cartridge) *mmc1 {
	return &mmc1{
		cart:    cart,
		control: 0x0C, // power-up: PRG mode 3 (fix high bank), CHR mode 0
	}
}

func (m *mmc1) prgMode() uint8  { return (m.control >> 2) & 0x03 }
func (m *mmc1) chrMode() uint8  { return (m.control >> 4) & 0x01 }

func (m *mmc1) ReadPRG(address uint16) uint8 {
	switch {
	case address >= 0x8000:
		bank := m.prgBankCount()
		switch m.prgMode() {
		case 0, 1:
			// 32 KiB mode: low bit of the selected bank is ignored.
			selected := int(m.prgBank&0xFE) % bank
			window := int(address-0x8000) / prgBankSize
			offset := int(address-0x8000) % prgBankSize
			return m.cart.PRGROM[(selected+window)*prgBankSize+offset]
		case 2:
			if address < 0xC000 {
				return m.cart.PRGROM[int(address-0x8000)]
			}
			selected := int(m.prgBank) % bank
			return m.cart.PRGROM[selected*prgBankSize+int(address-0xC000)]
		default: // 3
			if address < 0xC000 {
				selected := int(m.prgBank) % bank
				return m.cart.PRGROM[selected*prgBankSize+int(address-0x8000)]
			}
			last := bank - 1
			return m.cart.PRGROM[last*prgBankSize+int(address-0xC000)]
		}
	case address >= 0x6000:
		return m.prgRAM[address-0x6000]
	default:
		return 0
	}
}

func (m *mmc1) WritePRG(address uint16, value uint8) {
	if address >= 0x6000 && address < 0x8000 {
		m.prgRAM[address-0x6000] = value
		return
	}
	if address < 0x8000 {
		return
	}

	if value&0x80 != 0 {
		m.shiftRegister = 0
		m.shiftCount = 0
		m.control |= 0x0C
		return
	}

	m.shiftRegister = (m.shiftRegister >> 1) | ((value & 0x01) << 4)
	m.shiftCount++

	if m.shiftCount < 5 {
		return
	}

	result := m.shiftRegister
	m.shiftRegister = 0
	m.shiftCount = 0

	switch {
	case address < 0xA000:
		m.control = result & 0x1F
	case address < 0xC000:
		m.chrBank0 = result & 0x1F
	case address < 0xE000:
		m.chrBank1 = result & 0x1F
	default:
		m.prgBank = result & 0x0F
	}
}

func (m *mmc1) ReadCHR(address uint16) uint8 {
	bank := m.chrBankCount()
	if m.chrMode() == 0 {
		selected := int(m.chrBank0&0xFE) % bank
		return m.chrByte(selected, int(address))
	}

	if address < 0x1000 {
		selected := int(m.chrBank0) % bank
		return m.chrByte(selected, int(address))
	}
	selected := int(m.chrBank1) % bank
	return m.chrByte(selected, int(address-0x1000))
}

func (m *mmc1) WriteCHR(address uint16, value uint8) {
	if !m.cart.HasCHRRAM {
		return
	}
	if int(address) < len(m.cart.CHRROM) {
		m.cart.CHRROM[address] = value
	}
}

// chrByte indexes into CHR space treating it as 4 KiB half-banks regardless
// of whether chrMode selects 8 KiB or 4 KiB windows.
func (m *mmc1) chrByte(halfBank, offset int) uint8 {
	const halfBankSize = 0x1000
	idx := halfBank*halfBankSize + offset
	return m.cart.CHRROM[idx%len(m.cart.CHRROM)]
}

func (m *mmc1) prgBankCount() int {
	n := m.cart.prgBankCount()
	if n == 0 {
		return 1
	}
	return n
}

func (m *mmc1) chrBankCount() int {
	// CHR is addressed in 4 KiB half-banks here; an 8 KiB ROM has 2.
	halfBanks := len(m.cart.CHRROM) / 0x1000
	if halfBanks == 0 {
		return 1
	}
	return halfBanks
}

func (m *mmc1) Mirroring() MirrorMode {
	switch m.control & 0x03 {
	case 0:
		return MirrorSingle0
	case 1:
		return MirrorSingle1
	case 2:
		return MirrorVertical
	default:
		return MirrorHorizontal
	}
}

func (m *mmc1) SaveBattery(path string) error {
	if !m.cart.HasBattery {
		return nil
	}
	if err := os.WriteFile(path, m.prgRAM[:], 0o644); err != nil {
		return fmt.Errorf("mmc1: writing battery save: %w", err)
	}
	return nil
}

func (m *mmc1) LoadBattery(path string) error {
	if !m.cart.HasBattery {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("mmc1: reading battery save: %w", err)
	}
	copy(m.prgRAM[:], data)
	return nil
}

// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ad9912

// Addr is one of the chip's 13-bit register addresses. The register map is
// fixed by the silicon; only the transfer size class is ever computed at
// runtime.
type Addr uint16

const (
	// AddrSerial is the serial-port configuration register.
	AddrSerial Addr = 0x0000
	// AddrPartID is the 2-byte read-only part identification register.
	AddrPartID Addr = 0x0003
	// AddrBuffer selects buffered (io-update deferred) register writes.
	AddrBuffer Addr = 0x0004
	// AddrUpdate is the register-based io-update strobe.
	AddrUpdate Addr = 0x0005
	// AddrPower is the power-down and enable register.
	AddrPower Addr = 0x0010
	// AddrDDSReset resets the DDS core once an io-update is issued.
	AddrDDSReset Addr = 0x0013
	// AddrReset holds the S-divider and fundamental DDS reset controls.
	AddrReset Addr = 0x0014
	// AddrNDiv is the 5-bit PLL feedback N-divider.
	AddrNDiv Addr = 0x0020
	// AddrPLL is the PLL control register.
	AddrPLL Addr = 0x0022
	// AddrSDiv is the SYSCLK S-divider.
	AddrSDiv Addr = 0x0106
	// AddrFTW0 is the first byte of the 48-bit frequency tuning word.
	AddrFTW0 Addr = 0x01ab
	// AddrPhase is the 14-bit phase offset word.
	AddrPhase Addr = 0x01ad
	// AddrHSTL is the HSTL output driver control.
	AddrHSTL Addr = 0x0200
	// AddrCMOS is the CMOS output driver control.
	AddrCMOS Addr = 0x0201
	// AddrFSC is the 10-bit DAC full-scale current register.
	AddrFSC Addr = 0x040c
	// AddrSpurA and AddrSpurB are the SpurKiller channel registers.
	AddrSpurA Addr = 0x0500
	AddrSpurB Addr = 0x0505
)

// PartID is the fixed value of the part identification register. Init fails
// with an ErrID if the device reads back anything else.
const PartID uint16 = 0x1982

// Size is the 2-bit transfer length class encoded in an instruction word.
type Size uint8

const (
	SizeOne Size = iota
	SizeTwo
	SizeThree
	// SizeStream transfers four or more bytes.
	SizeStream
)

// sizeFor maps a payload length to its size class. Zero-length payloads are
// rejected by the bus primitives before this is reached.
func sizeFor(n int) Size {
	switch n {
	case 1:
		return SizeOne
	case 2:
		return SizeTwo
	case 3:
		return SizeThree
	default:
		return SizeStream
	}
}

// Instruction is the 16-bit header that opens every bus transaction. Bits
// 0-12 hold the register address, bits 13-14 the size class and bit 15 the
// read flag. It is built fresh for each transaction and sent MSB first.
type Instruction uint16

// NewInstruction encodes an instruction word from its three fields.
func NewInstruction(addr Addr, size Size, read bool) Instruction {
	i := Instruction(addr&0x1fff) | Instruction(size&0x3)<<13
	if read {
		i |= 1 << 15
	}
	return i
}

// Addr returns the register address field.
func (i Instruction) Addr() Addr {
	return Addr(i & 0x1fff)
}

// Size returns the transfer size class field.
func (i Instruction) Size() Size {
	return Size(i >> 13 & 0x3)
}

// Read returns the read/not-write flag.
func (i Instruction) Read() bool {
	return i>>15 != 0
}

// bytes returns the header in bus order.
func (i Instruction) bytes() [2]byte {
	return [2]byte{byte(i >> 8), byte(i)}
}

// Serial is the serial-port configuration register. The register is
// write-mostly: the driver composes a value, mirrors it and writes it, but
// never reads it back. The zero value is not the power-on state; start from
// DefaultSerial.
type Serial uint8

// DefaultSerial is the register's power-on value.
const DefaultSerial Serial = 0x18

const (
	serialSDOActive Serial = 1 << 0
	serialLSBFirst  Serial = 1 << 1
	serialSoftReset Serial = 1 << 2
	serialLongInsn  Serial = 1 << 3
)

// WithSDOActive returns a copy with the SDO-active (4-wire readback) flag
// set to on.
func (s Serial) WithSDOActive(on bool) Serial {
	return s.with(serialSDOActive, on)
}

// WithLSBFirst returns a copy with the bit-order flag set to on.
func (s Serial) WithLSBFirst(on bool) Serial {
	return s.with(serialLSBFirst, on)
}

// WithSoftReset returns a copy with the soft-reset flag set to on.
func (s Serial) WithSoftReset(on bool) Serial {
	return s.with(serialSoftReset, on)
}

// WithLongInstruction returns a copy with the long (16-bit) instruction
// mode flag set to on.
func (s Serial) WithLongInstruction(on bool) Serial {
	return s.with(serialLongInsn, on)
}

func (s Serial) SDOActive() bool       { return s&serialSDOActive != 0 }
func (s Serial) LSBFirst() bool        { return s&serialLSBFirst != 0 }
func (s Serial) SoftReset() bool       { return s&serialSoftReset != 0 }
func (s Serial) LongInstruction() bool { return s&serialLongInsn != 0 }

func (s Serial) with(mask Serial, on bool) Serial {
	if on {
		return s | mask
	}
	return s &^ mask
}

// Mirror duplicates the low configuration nibble, bit-reversed, into the
// high nibble: flag bit 0 lands on bit 7, bit 1 on bit 6, bit 2 on bit 5
// and bit 3 on bit 4. The mirrored pattern decodes identically whether the
// device is currently in MSB-first or LSB-first mode, so the very first
// configuration write always takes. It must be applied immediately before
// every write of this register.
func (s Serial) Mirror() Serial {
	v := uint8(s)
	return Serial(v&0x0f | v&1<<7 | v&2<<5 | v&4<<3 | v&8<<1)
}

// Power is the power-down and enable register. The zero value is not the
// power-on state; start from DefaultPower.
type Power uint8

// DefaultPower is the register's power-on value.
const DefaultPower Power = 0xc0

const (
	powerDigitalPD Power = 1 << 0
	powerFullPD    Power = 1 << 1
	powerPLLPD     Power = 1 << 4
	powerDoublerEn Power = 1 << 5
	powerCMOSEn    Power = 1 << 6
	powerHSTLPD    Power = 1 << 7
)

// WithDigitalPD returns a copy with the digital power-down flag set to on.
func (p Power) WithDigitalPD(on bool) Power { return p.with(powerDigitalPD, on) }

// WithFullPD returns a copy with the full power-down flag set to on.
func (p Power) WithFullPD(on bool) Power { return p.with(powerFullPD, on) }

// WithPLLPD returns a copy with the SYSCLK PLL power-down flag set to on.
func (p Power) WithPLLPD(on bool) Power { return p.with(powerPLLPD, on) }

// WithOutputDoublerEn returns a copy with the output doubler enable flag
// set to on.
func (p Power) WithOutputDoublerEn(on bool) Power { return p.with(powerDoublerEn, on) }

// WithCMOSEn returns a copy with the CMOS output driver enable flag set to
// on.
func (p Power) WithCMOSEn(on bool) Power { return p.with(powerCMOSEn, on) }

// WithHSTLPD returns a copy with the HSTL output driver power-down flag set
// to on.
func (p Power) WithHSTLPD(on bool) Power { return p.with(powerHSTLPD, on) }

func (p Power) DigitalPD() bool       { return p&powerDigitalPD != 0 }
func (p Power) FullPD() bool          { return p&powerFullPD != 0 }
func (p Power) PLLPD() bool           { return p&powerPLLPD != 0 }
func (p Power) OutputDoublerEn() bool { return p&powerDoublerEn != 0 }
func (p Power) CMOSEn() bool          { return p&powerCMOSEn != 0 }
func (p Power) HSTLPD() bool          { return p&powerHSTLPD != 0 }

func (p Power) with(mask Power, on bool) Power {
	if on {
		return p | mask
	}
	return p &^ mask
}

// Reset holds the S-divider and fundamental DDS reset controls.
type Reset uint8

// DefaultReset is the register's power-on value.
const DefaultReset Reset = 0x00

const (
	resetSDiv      Reset = 1 << 1
	resetSDiv2     Reset = 1 << 3
	resetFundDDSPD Reset = 1 << 7
)

// WithSDiv returns a copy with the S-divider reset flag set to on.
func (r Reset) WithSDiv(on bool) Reset { return r.with(resetSDiv, on) }

// WithSDiv2 returns a copy with the S-divider-2 reset flag set to on.
func (r Reset) WithSDiv2(on bool) Reset { return r.with(resetSDiv2, on) }

// WithFundDDSPD returns a copy with the fundamental DDS power-down flag set
// to on.
func (r Reset) WithFundDDSPD(on bool) Reset { return r.with(resetFundDDSPD, on) }

func (r Reset) SDiv() bool      { return r&resetSDiv != 0 }
func (r Reset) SDiv2() bool     { return r&resetSDiv2 != 0 }
func (r Reset) FundDDSPD() bool { return r&resetFundDDSPD != 0 }

func (r Reset) with(mask Reset, on bool) Reset {
	if on {
		return r | mask
	}
	return r &^ mask
}

// ChargePump selects the PLL charge-pump current.
type ChargePump uint8

const (
	ChargePump250uA ChargePump = 0
	ChargePump375uA ChargePump = 1
	ChargePumpOff   ChargePump = 2
	ChargePump125uA ChargePump = 3
)

// PLL is the SYSCLK PLL control register. The zero value is not the
// power-on state; start from DefaultPLL.
type PLL uint8

// DefaultPLL is the register's power-on value.
const DefaultPLL PLL = 0x04

const (
	pllChargePumpMask PLL = 0x03
	pllVCORangeHigh   PLL = 1 << 2
	pllRefDoubler     PLL = 1 << 3
	pllVCOAutoRange   PLL = 1 << 7
)

// WithChargePump returns a copy with the charge-pump current selection
// replaced.
func (p PLL) WithChargePump(cp ChargePump) PLL {
	return p&^pllChargePumpMask | PLL(cp)&pllChargePumpMask
}

// WithVCORangeHigh returns a copy with the high VCO range flag set to on.
func (p PLL) WithVCORangeHigh(on bool) PLL { return p.with(pllVCORangeHigh, on) }

// WithRefDoubler returns a copy with the reference doubler flag set to on.
func (p PLL) WithRefDoubler(on bool) PLL { return p.with(pllRefDoubler, on) }

// WithVCOAutoRange returns a copy with the automatic VCO range selection
// flag set to on.
func (p PLL) WithVCOAutoRange(on bool) PLL { return p.with(pllVCOAutoRange, on) }

func (p PLL) ChargePump() ChargePump { return ChargePump(p & pllChargePumpMask) }
func (p PLL) VCORangeHigh() bool     { return p&pllVCORangeHigh != 0 }
func (p PLL) RefDoubler() bool       { return p&pllRefDoubler != 0 }
func (p PLL) VCOAutoRange() bool     { return p&pllVCOAutoRange != 0 }

func (p PLL) with(mask PLL, on bool) PLL {
	if on {
		return p | mask
	}
	return p &^ mask
}

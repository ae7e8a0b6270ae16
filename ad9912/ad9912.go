// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ad9912 controls an Analog Devices AD9912 direct digital
// synthesizer over SPI.
//
// The chip exposes a register-addressed serial protocol: every transaction
// is a 16-bit instruction header followed by the register payload. The
// driver owns its bus connection exclusively and never issues overlapping
// transactions. Configuration registers are write-mostly; the only read the
// driver performs is the part-ID verification during Init.
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/ad9912.pdf
package ad9912

import (
	"encoding/binary"
	"errors"
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

var (
	errEmptyPayload = errors.New("ad9912: empty register payload")
	errNDivRange    = errors.New("ad9912: N-divider out of range")
)

// ErrID reports that the part-ID register read back an unexpected value,
// which signals wrong or absent hardware. The error value is the 16-bit ID
// actually observed.
type ErrID uint16

func (e ErrID) Error() string {
	return fmt.Sprintf("ad9912: invalid part ID %#04x", uint16(e))
}

// Dev is a handle to an AD9912. It owns its SPI connection for its
// lifetime; callers that drive a Dev from more than one context must
// serialize access themselves.
type Dev struct {
	c spi.Conn
}

// New returns a driver for a synthesizer connected to the given SPI port.
func New(p spi.Port) (*Dev, error) {
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ad9912: %w", err)
	}
	return &Dev{c: c}, nil
}

// write sends one atomic header-then-payload transaction.
func (d *Dev) write(addr Addr, data []byte) error {
	if len(data) == 0 {
		return errEmptyPayload
	}
	h := NewInstruction(addr, sizeFor(len(data)), false).bytes()
	w := make([]byte, 0, 2+len(data))
	w = append(w, h[0], h[1])
	w = append(w, data...)
	if err := d.c.Tx(w, nil); err != nil {
		return fmt.Errorf("ad9912: %w", err)
	}
	return nil
}

// read sends the header and clocks len(data) bytes back in the same
// transaction.
func (d *Dev) read(addr Addr, data []byte) error {
	if len(data) == 0 {
		return errEmptyPayload
	}
	h := NewInstruction(addr, sizeFor(len(data)), true).bytes()
	w := make([]byte, 2+len(data))
	w[0], w[1] = h[0], h[1]
	r := make([]byte, len(w))
	if err := d.c.Tx(w, r); err != nil {
		return fmt.Errorf("ad9912: %w", err)
	}
	copy(data, r[2:])
	return nil
}

// Init brings the device to a known operating state. It writes the
// mirrored serial configuration so the device decodes it correctly
// regardless of the bit order it assumed at power-up, verifies the part ID
// and programs the power register. It must be called once before any other
// operation, and again after SoftReset.
func (d *Dev) Init() error {
	s := DefaultSerial.
		WithSDOActive(true).
		WithLSBFirst(false).
		WithSoftReset(false).
		WithLongInstruction(true)
	if err := d.write(AddrSerial, []byte{byte(s.Mirror())}); err != nil {
		return err
	}
	var id [2]byte
	if err := d.read(AddrPartID, id[:]); err != nil {
		return err
	}
	if got := binary.BigEndian.Uint16(id[:]); got != PartID {
		return ErrID(got)
	}
	p := DefaultPower.
		WithDigitalPD(false).
		WithFullPD(false).
		WithPLLPD(false).
		WithOutputDoublerEn(false).
		WithCMOSEn(false).
		WithHSTLPD(true)
	return d.write(AddrPower, []byte{byte(p)})
}

// SoftReset asserts the serial soft-reset flag. The reset is not
// self-clearing and does not restore configuration; call Init afterwards.
func (d *Dev) SoftReset() error {
	s := DefaultSerial.
		WithSDOActive(true).
		WithLSBFirst(false).
		WithSoftReset(true).
		WithLongInstruction(true)
	return d.write(AddrSerial, []byte{byte(s.Mirror())})
}

// DDSReset schedules a reset of the DDS core. It takes effect only once
// the caller issues an io-update strobe, either through the hardware pin or
// by writing AddrUpdate.
func (d *Dev) DDSReset() error {
	return d.write(AddrDDSReset, []byte{1})
}

// SetPLL programs the SYSCLK PLL: the 5-bit N-divider first, then the PLL
// control register. If the second write fails the divider has already
// taken effect; the caller must treat the PLL state as indeterminate and
// re-issue both.
func (d *Dev) SetPLL(ndiv uint8, pll PLL) error {
	if ndiv > 0x1f {
		return errNDivRange
	}
	if err := d.write(AddrNDiv, []byte{ndiv}); err != nil {
		return err
	}
	return d.write(AddrPLL, []byte{byte(pll)})
}

// SetFTW writes the 48-bit frequency tuning word, most significant byte
// first.
func (d *Dev) SetFTW(ftw uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], ftw&(1<<48-1))
	return d.write(AddrFTW0, b[2:])
}

// SetFrequency quantizes frequency to a tuning word, writes it and returns
// the word actually programmed so the caller can learn the realized
// frequency after rounding.
func (d *Dev) SetFrequency(frequency, sysclk float64) (uint64, error) {
	ftw := FrequencyToFTW(frequency, sysclk)
	if err := d.SetFTW(ftw); err != nil {
		return 0, err
	}
	return ftw, nil
}

// SetPOW writes the 14-bit phase offset word.
func (d *Dev) SetPOW(pow uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], pow&(1<<14-1))
	return d.write(AddrPhase, b[:])
}

// SetPhase quantizes a phase offset, writes it and returns the phase
// offset word actually programmed.
func (d *Dev) SetPhase(phase float64) (uint16, error) {
	pow := PhaseToPOW(phase)
	if err := d.SetPOW(pow); err != nil {
		return 0, err
	}
	return pow, nil
}

// SetFSC writes the 10-bit DAC full-scale current register.
func (d *Dev) SetFSC(fsc uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], fsc&(1<<10-1))
	return d.write(AddrFSC, b[:])
}

// SetFullScaleCurrent quantizes a DAC full-scale output for the given
// reference resistor, writes it and returns the register value actually
// programmed.
func (d *Dev) SetFullScaleCurrent(dacFS, rDACRef float64) (uint16, error) {
	fsc := DacFSToFSC(dacFS, rDACRef)
	if err := d.SetFSC(fsc); err != nil {
		return 0, err
	}
	return fsc, nil
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return "AD9912"
}

// Halt powers the device down.
//
// Halt implements conn.Resource.
func (d *Dev) Halt() error {
	return d.write(AddrPower, []byte{byte(DefaultPower.WithFullPD(true))})
}

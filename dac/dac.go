// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package dac drives the Stabilizer waveform DAC path.
//
// Each DAC accepts 16-bit output codes over a simplex SPI link. To keep the
// CPU out of the sample loop, code updates are offloaded to hardware: a
// sampling-timer compare channel raises a DMA request per sample, and a
// double-buffered DMA stream feeds the SPI transmit FIFO one code per
// request. Software only refills batches, one batch period at a time,
// through Output.AcquireBuffer.
package dac

import "periph.io/x/conn/v3/physic"

const (
	// BatchSize is the number of samples in one output batch. It matches
	// the input sampling path so one input batch always maps to one output
	// batch.
	BatchSize = 8

	// dacVoltsPerLSB is the ±4.096 V DAC reference seen through the 2.5x
	// output stage, spread over the signed 16-bit code range. The full
	// output span is therefore ±10.24 V.
	dacVoltsPerLSB = 4.096 * 2.5 / (1 << 15)
)

// Batch is one hardware transfer unit of output codes.
type Batch [BatchSize]DacCode

// DacCode is one raw 16-bit output register sample. The output table is
// offset-binary: code 0x8000 is zero volts, code zero is the negative rail.
// It is far more convenient to treat it as two's complement, which only
// takes flipping the most significant bit.
type DacCode uint16

// DacCodeFromInt16 returns the code that outputs the given signed sample.
func DacCodeFromInt16(v int16) DacCode {
	return DacCode(uint16(v) ^ 0x8000)
}

// Voltage returns the physical output voltage the code produces.
func (c DacCode) Voltage() float64 {
	return float64(int16(uint16(c)^0x8000)) * dacVoltsPerLSB
}

// Potential returns the output voltage as a physic quantity.
func (c DacCode) Potential() physic.ElectricPotential {
	return physic.ElectricPotential(c.Voltage() * float64(physic.Volt))
}

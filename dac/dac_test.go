// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dac

import (
	"math"
	"testing"
)

func TestDacCodeBitFlip(t *testing.T) {
	// The offset-binary/two's-complement flip is its own inverse for
	// every code.
	for c := 0; c < 1<<16; c++ {
		code := DacCode(c)
		if got := DacCodeFromInt16(int16(uint16(code) ^ 0x8000)); got != code {
			t.Fatalf("flip(flip(%#04x)) = %#04x", c, uint16(got))
		}
	}
}

func TestDacCodeVoltage(t *testing.T) {
	if v := DacCode(0x8000).Voltage(); v != 0 {
		t.Errorf("DacCode(0x8000).Voltage() = %g, want 0", v)
	}
	if v := DacCode(0).Voltage(); v != -10.24 {
		t.Errorf("DacCode(0).Voltage() = %g, want -10.24", v)
	}
	if v := DacCodeFromInt16(1).Voltage(); math.Abs(v-4.096*2.5/32768) > 1e-12 {
		t.Errorf("DacCodeFromInt16(1).Voltage() = %g", v)
	}
	// Monotonically increasing in code.
	prev := DacCode(0).Voltage()
	for c := 1; c < 1<<16; c++ {
		v := DacCode(c).Voltage()
		if v <= prev {
			t.Fatalf("voltage not increasing at code %#04x: %g <= %g", c, v, prev)
		}
		prev = v
	}
}

func TestDacCodeSymmetry(t *testing.T) {
	// Codes equidistant from mid-scale produce opposite voltages, up to
	// the one-LSB asymmetry of two's complement.
	for _, off := range []uint16{1, 100, 0x7fff} {
		up := DacCode(0x8000 + off).Voltage()
		down := DacCode(0x8000 - off).Voltage()
		if up != -down {
			t.Errorf("offset %d: %g != -%g", off, up, down)
		}
	}
}

func TestDacCodePotential(t *testing.T) {
	if p := DacCode(0x8000).Potential(); p != 0 {
		t.Errorf("DacCode(0x8000).Potential() = %s, want 0", p)
	}
	if p := DacCode(0).Potential(); p >= 0 {
		t.Errorf("DacCode(0).Potential() = %s, want negative", p)
	}
}

// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ad9912

import "math"

// Sysclk returns the system clock frequency produced by the SYSCLK PLL for
// a given reference clock, N-divider and PLL configuration:
//
//	sysclk = refclk * (2 if doubled) * 2 * (ndiv + 2)
func Sysclk(ndiv uint8, pll PLL, refclk float64) float64 {
	mult := 2 * (uint(ndiv) + 2)
	if pll.RefDoubler() {
		mult *= 2
	}
	return refclk * float64(mult)
}

// FrequencyToFTW quantizes an output frequency to the chip's 48-bit
// frequency tuning word:
//
//	ftw = round(frequency * sysclk / 2^48)
//
// The word scale multiplies by sysclk; sysclk must therefore be supplied in
// the units this convention expects, matching what the setters' callers
// already hold.
func FrequencyToFTW(frequency, sysclk float64) uint64 {
	lsb := sysclk / (1 << 48)
	return uint64(math.Round(frequency*lsb)) & (1<<48 - 1)
}

// PhaseToPOW quantizes a phase offset to the 14-bit phase offset word:
//
//	pow = round(phase / 2^14)
func PhaseToPOW(phase float64) uint16 {
	return uint16(math.Round(phase/(1<<14))) & (1<<14 - 1)
}

// DacFSToFSC quantizes a DAC full-scale output to the 10-bit full-scale
// current register, given the DAC reference resistor value:
//
//	fsc = round(dacFS * rDACRef * 1024/192/1.2 + 1024/192*72)
func DacFSToFSC(dacFS, rDACRef float64) uint16 {
	lsb := rDACRef * (1024.0 / 192.0 / 1.2)
	fsc := dacFS*lsb + 1024.0/192.0*72.0
	return uint16(math.Round(fsc)) & (1<<10 - 1)
}

// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package stabilizer is a container for the drivers of the Stabilizer
// instrument's signal I/O hardware: the hardware-timed waveform DAC path
// and the AD9912 direct digital synthesizer.
package stabilizer

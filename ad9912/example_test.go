// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ad9912_test

import (
	"log"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
	"periph.io/x/stabilizer/ad9912"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Open the SPI port the synthesizer is wired to.
	p, err := spireg.Open("SPI1.0")
	if err != nil {
		log.Fatalf("failed to open SPI: %v", err)
	}
	defer p.Close()

	// The io-update strobe pin latches buffered register writes.
	update := gpioreg.ByName("GPIO22")
	if update == nil {
		log.Fatal("failed to find io-update pin")
	}

	dev, err := ad9912.New(p)
	if err != nil {
		log.Fatal(err)
	}
	if err := dev.Init(); err != nil {
		log.Fatal(err)
	}

	// 100 MHz reference, doubled and multiplied up by the PLL.
	pll := ad9912.DefaultPLL.WithRefDoubler(true).WithVCOAutoRange(true)
	if err := dev.SetPLL(3, pll); err != nil {
		log.Fatal(err)
	}
	sysclk := ad9912.Sysclk(3, pll, 100e6)

	ftw, err := dev.SetFrequency(10e6, sysclk)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("programmed tuning word %#012x", ftw)

	// Latch the new tuning word into the DDS core.
	if err := update.Out(gpio.High); err != nil {
		log.Fatal(err)
	}
	if err := update.Out(gpio.Low); err != nil {
		log.Fatal(err)
	}
}

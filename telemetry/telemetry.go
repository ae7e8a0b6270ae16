// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package telemetry reports the signal path's latest samples over MQTT.
//
// The sample loop stores raw codes only; converting them to SI units on
// every sample would slow the loop for values that are mostly never looked
// at. Conversion happens in Finalize, immediately before transmission, on
// whatever lower-priority context runs the reporter.
package telemetry

import (
	"encoding/json"
	"fmt"
	"log"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"periph.io/x/stabilizer/dac"
)

// adcVoltsPerLSB is the front-end input range at unity gain, spread over
// the signed 16-bit code range.
const adcVoltsPerLSB = 4.096 * 2.5 / (1 << 15)

// AdcCode is one raw 16-bit input sample in offset-binary form, mirroring
// the DAC code convention.
type AdcCode uint16

// Voltage returns the input voltage at the converter, before analog
// front-end gain is divided out.
func (c AdcCode) Voltage() float64 {
	return float64(int16(uint16(c)^0x8000)) * adcVoltsPerLSB
}

// Gain is an analog front-end programmable gain setting.
type Gain int

const (
	G1 Gain = iota
	G2
	G5
	G10
)

// Multiplier returns the gain as a plain factor.
func (g Gain) Multiplier() float64 {
	switch g {
	case G2:
		return 2
	case G5:
		return 5
	case G10:
		return 10
	default:
		return 1
	}
}

// Buffer holds the latest raw codes seen by the sample loop. The loop
// overwrites it on every batch; no history is kept. The zero value is
// valid: it reports both rails at full negative scale, matching the
// hardware's startup output.
type Buffer struct {
	// ADCs are the latest input samples on channels 0 and 1.
	ADCs [2]AdcCode
	// DACs are the latest output codes on channels 0 and 1.
	DACs [2]dac.DacCode
	// DigitalInputs are the input pin states sampled during processing.
	DigitalInputs [2]bool
}

// Report is the finalized SI-unit payload.
type Report struct {
	ADCs          [2]float64 `json:"adcs"`
	DACs          [2]float64 `json:"dacs"`
	DigitalInputs [2]bool    `json:"digital_inputs"`
}

// Finalize converts the raw codes to SI units for reporting, dividing the
// input voltages by the front-end gain of each channel.
func (b Buffer) Finalize(afe0, afe1 Gain) Report {
	return Report{
		ADCs: [2]float64{
			b.ADCs[0].Voltage() / afe0.Multiplier(),
			b.ADCs[1].Voltage() / afe1.Multiplier(),
		},
		DACs:          [2]float64{b.DACs[0].Voltage(), b.DACs[1].Voltage()},
		DigitalInputs: b.DigitalInputs,
	}
}

// Client publishes reports to <prefix>/telemetry.
type Client struct {
	mqtt  mqtt.Client
	topic string
}

// NewClient connects to the broker and returns a reporting client. prefix
// is the device's topic prefix.
func NewClient(broker, clientID, prefix string) (*Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			log.Printf("telemetry: connection lost: %v", err)
		})
	c := mqtt.NewClient(opts)
	if t := c.Connect(); t.Wait() && t.Error() != nil {
		return nil, fmt.Errorf("telemetry: %w", t.Error())
	}
	return &Client{mqtt: c, topic: prefix + "/telemetry"}, nil
}

// Publish sends a report. Reporting is best effort: transmission failures
// are silently dropped rather than stalling the caller.
func (c *Client) Publish(r Report) {
	payload, err := json.Marshal(r)
	if err != nil {
		return
	}
	c.mqtt.Publish(c.topic, 0, false, payload)
}

// Close disconnects from the broker.
func (c *Client) Close() {
	c.mqtt.Disconnect(250)
}

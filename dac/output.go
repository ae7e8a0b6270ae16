// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package dac

import "fmt"

// Config describes how a Stream moves batches to the peripheral.
type Config struct {
	// MemoryIncrement advances the memory address after each sample.
	MemoryIncrement bool
	// PeripheralIncrement advances the peripheral address after each
	// sample. The DAC FIFO is a single register, so it stays fixed.
	PeripheralIncrement bool
	// DoubleBuffer makes the stream re-arm itself with its queued buffer
	// when the active one is exhausted, without software intervention.
	DoubleBuffer bool
}

// Trigger is a sampling-timer output-compare channel. It paces the stream:
// one compare event releases one sample.
type Trigger interface {
	// ListenDMA routes the channel's compare events to the stream's DMA
	// request line.
	ListenDMA()
	// ToOutputCompare arms the channel to fire at the given counter value.
	ToOutputCompare(value int)
}

// Fifo is the transmit side of the DAC serial peripheral. Once Output.Start
// has run, only the hardware stream may feed it.
type Fifo interface {
	// EnableDMA lets the FIFO refill from DMA data channels only.
	EnableDMA()
	// Enable turns the peripheral on in endless-transaction mode.
	Enable()
	// ListenErrors enables the peripheral's error interrupt, so a fault in
	// code generation surfaces through the peripheral's own reporting
	// rather than through this package.
	ListenErrors()
}

// Stream is a double-buffered memory-to-peripheral transfer engine. It owns
// two batches at a time: the active one being streamed and the armed one
// queued behind it.
type Stream interface {
	// Init configures the stream and hands it its first two batches.
	Init(cfg Config, active, armed *Batch)
	// Start commits the stream to consume its batches, one code per
	// trigger event.
	Start()
	// Complete reports whether the batch in flight has been fully
	// consumed.
	Complete() bool
	// Exchange queues next behind the batch now streaming and returns the
	// batch that just finished.
	Exchange(next *Batch) *Batch
}

// Output is one hardware-timed waveform output channel. It owns three
// batches: two inside the stream (active and armed) and one for software to
// fill. Construct one per physical DAC with distinct peripheral handles.
type Output struct {
	name    string
	fifo    Fifo
	stream  Stream
	next    *Batch
	buffers [3]Batch
}

// NewOutput constructs a waveform output channel from its peripheral
// handles: the not-yet-enabled transmit FIFO, the DMA stream and the
// sampling-timer compare channel, all supplied by board bring-up. index
// identifies the physical channel and staggers its trigger by one timer
// tick relative to its sibling so the two streams never race for the bus.
//
// The FIFO is left disabled; nothing moves until Start.
func NewOutput(fifo Fifo, stream Stream, trigger Trigger, index int) *Output {
	o := &Output{
		name:   fmt.Sprintf("DAC%d", index),
		fifo:   fifo,
		stream: stream,
	}

	// The batches may be streamed before software ever fills them, so
	// give them defined contents up front.
	for i := range o.buffers {
		o.buffers[i] = Batch{}
	}

	trigger.ListenDMA()
	trigger.ToOutputCompare(4 + index)

	fifo.ListenErrors()

	stream.Init(Config{
		MemoryIncrement: true,
		DoubleBuffer:    true,
	}, &o.buffers[0], &o.buffers[1])
	o.next = &o.buffers[2]
	return o
}

// Start enables the FIFO and commits the stream. From here on the timer
// and DMA hardware generate output on their own; software can only choose
// how promptly it refills batches, not pause the stream.
func (o *Output) Start() {
	o.fifo.EnableDMA()
	o.fifo.Enable()
	o.stream.Start()
}

// AcquireBuffer blocks until the batch in flight has been fully streamed
// out, rotates batch ownership and returns the batch software must fill
// next. The caller has exactly one batch period from return to fill it; a
// missed deadline is not detected here, the stream simply repeats the
// previous batch and the output shifts by one batch.
//
// If the trigger source stalls, AcquireBuffer spins forever. There is
// deliberately no timeout in the interest of execution speed.
func (o *Output) AcquireBuffer() *Batch {
	// Spin rather than sleep: nothing else runs on this context, and the
	// remaining wait is a fraction of a batch period.
	for !o.stream.Complete() {
	}

	prev := o.stream.Exchange(o.next)
	o.next = prev
	return o.next
}

// String implements conn.Resource.
func (o *Output) String() string {
	return o.name
}

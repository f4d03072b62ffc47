// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1306

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// DebugF receives a trace of every bus transaction.
type DebugF func(string, ...interface{})

// Opts holds the configuration for a DS1306.
type Opts struct {
	// Freq is the SPI clock. The DS1306 accepts up to 600kHz at 2V and
	// 2MHz at 5V.
	Freq physic.Frequency
	// Mode is the SPI mode. The DS1306 shifts data out on the second clock
	// edge, so only spi.Mode1 and spi.Mode3 work.
	Mode spi.Mode
	// Bus, if set, is held for the duration of each transaction. Use it
	// when other devices share the SPI port.
	Bus sync.Locker
	// Debug, if set, traces every transaction.
	Debug DebugF
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Freq: 100 * physic.KiloHertz,
	Mode: spi.Mode1,
}

// Dev is a handle to a DS1306.
type Dev struct {
	c     spi.Conn
	ce    gpio.PinOut
	bus   sync.Locker
	debug DebugF

	// mu serializes logical operations, several of which take more than one
	// transaction.
	mu sync.Mutex
}

// New connects to a DS1306 on port p. ce is the GPIO wired to the chip
// enable pin. If opts is nil, DefaultOpts is used.
func New(p spi.Port, ce gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if ce == nil {
		return nil, fmt.Errorf("%w: a CE pin is required", ErrConfiguration)
	}
	if opts.Freq <= 0 || opts.Freq > 2*physic.MegaHertz {
		return nil, fmt.Errorf("%w: frequency %s", ErrConfiguration, opts.Freq)
	}
	// CPHA must be 1.
	if opts.Mode&spi.Mode1 == 0 {
		return nil, fmt.Errorf("%w: mode %s", ErrConfiguration, opts.Mode)
	}
	c, err := p.Connect(opts.Freq, opts.Mode|spi.NoCS, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if err := ce.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("%w: CE: %w", ErrConfiguration, err)
	}
	d := &Dev{c: c, ce: ce, bus: opts.Bus, debug: opts.Debug}
	if d.bus == nil {
		d.bus = &sync.Mutex{}
	}
	if d.debug == nil {
		d.debug = noop
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ds1306{%s, CE: %s}", d.c, d.ce)
}

// Halt implements conn.Resource. The clock keeps running; there is nothing
// to stop.
func (d *Dev) Halt() error {
	return nil
}

// Registers returns the clock, alarm, control, status and charger registers
// from a single burst read.
func (d *Dev) Registers() ([RegisterCount]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var regs [RegisterCount]byte
	b, err := d.readBurst()
	if err == nil {
		copy(regs[:], b[1:])
	}
	return regs, err
}

// Enable1HzPin turns on the 1Hz output. The control register is written as
// a whole, which also disables both alarm interrupts.
func (d *Dev) Enable1HzPin() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeRegs(RegControl, ctl1Hz)
}

// Disable1HzPin turns off the 1Hz output. The control register is written as
// a whole, which also disables both alarm interrupts.
func (d *Dev) Disable1HzPin() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeRegs(RegControl, 0)
}

// ReadRAM fills b from user RAM starting at offset off.
func (d *Dev) ReadRAM(off int, b []byte) error {
	if err := checkRAM(off, len(b)); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	w := make([]byte, len(b)+1)
	w[0] = ramBase + byte(off)
	r := make([]byte, len(w))
	if err := d.transact(w, r); err != nil {
		return err
	}
	copy(b, r[1:])
	return nil
}

// WriteRAM stores b in user RAM starting at offset off.
func (d *Dev) WriteRAM(off int, b []byte) error {
	if err := checkRAM(off, len(b)); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeRegs(Register(ramBase+byte(off)), b...)
}

func checkRAM(off, l int) error {
	if l == 0 || off < 0 || off+l > RAMSize {
		return invalidf("RAM window [%d, %d)", off, off+l)
	}
	return nil
}

func noop(string, ...interface{}) {}

var _ conn.Resource = &Dev{}

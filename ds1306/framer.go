// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1306

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
)

// txn is an open bus transaction: the bus is held and CE is asserted until
// end is called. It is the only path to the SPI connection.
type txn struct {
	d *Dev
}

// begin acquires the bus and asserts CE.
func (d *Dev) begin() (*txn, error) {
	d.bus.Lock()
	if err := d.ce.Out(gpio.High); err != nil {
		// Leave CE idle even if the pin partially switched.
		_ = d.ce.Out(gpio.Low)
		d.bus.Unlock()
		return nil, transportErr("assert CE", err)
	}
	return &txn{d: d}, nil
}

func (t *txn) tx(w, r []byte) error {
	if err := t.d.c.Tx(w, r); err != nil {
		t.d.debug("ds1306: tx %#x failed: %v", w, err)
		return transportErr("tx", err)
	}
	if len(r) != 0 {
		t.d.debug("ds1306: tx %#x -> %#x", w, r)
	} else {
		t.d.debug("ds1306: tx %#x", w)
	}
	return nil
}

// end deasserts CE and releases the bus.
func (t *txn) end() error {
	err := t.d.ce.Out(gpio.Low)
	t.d.bus.Unlock()
	if err != nil {
		return transportErr("deassert CE", err)
	}
	return nil
}

// transact runs one CE-framed transfer.
func (d *Dev) transact(w, r []byte) (err error) {
	t, err := d.begin()
	if err != nil {
		return err
	}
	defer func() {
		if eerr := t.end(); err == nil {
			err = eerr
		}
	}()
	return t.tx(w, r)
}

// readBurst reads every register starting at address 0. Register i is at
// index i+1 of the result.
func (d *Dev) readBurst() ([]byte, error) {
	// The command byte is the read address 0x00, and zeros are clocked out
	// for the rest of the transfer.
	w := make([]byte, burstLen)
	r := make([]byte, burstLen)
	if err := d.transact(w, r); err != nil {
		return nil, err
	}
	return r, nil
}

// readReg returns one register from a burst read.
func (d *Dev) readReg(reg Register) (byte, error) {
	b, err := d.readBurst()
	if err != nil {
		return 0, err
	}
	return b[int(reg)+1], nil
}

// writeRegs writes data starting at reg. The write-protect bit is cleared
// first and is set again afterwards, even when the write failed.
func (d *Dev) writeRegs(reg Register, data ...byte) error {
	prior, err := d.readReg(RegControl)
	if err != nil {
		// Nothing was unlocked.
		return err
	}
	last := prior
	err = d.transact([]byte{byte(RegControl) | writeFlag, prior &^ ctlWriteProtect}, nil)
	if err == nil {
		w := make([]byte, 0, len(data)+1)
		w = append(w, byte(reg)|writeFlag)
		w = append(w, data...)
		if err = d.transact(w, nil); err == nil && reg <= RegControl && int(RegControl-reg) < len(data) {
			last = data[RegControl-reg]
		}
	}
	if lerr := d.lock(last); err == nil {
		err = lerr
	}
	return err
}

// lock sets the write-protect bit, keeping the other control bits as they
// are now. last, the control value last written, is used if the register
// cannot be read back; the read error is still returned.
func (d *Dev) lock(last byte) error {
	ctl, rerr := d.readReg(RegControl)
	if rerr != nil {
		d.debug("ds1306: relocking from cached control %#02x: %v", last, rerr)
		ctl = last
	}
	return errors.Join(rerr, d.transact([]byte{byte(RegControl) | writeFlag, ctl | ctlWriteProtect}, nil))
}

// updateReg rewrites the bits of reg selected by mask with val.
func (d *Dev) updateReg(reg Register, mask, val byte) error {
	cur, err := d.readReg(reg)
	if err != nil {
		return err
	}
	next := cur&^mask | val&mask
	if reg == RegControl {
		// The protect bit must stay clear within the write or the other
		// control bits are ignored; lock sets it again.
		next &^= ctlWriteProtect
	}
	return d.writeRegs(reg, next)
}

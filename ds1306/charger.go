// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1306

import "fmt"

// DiodeSelection is the number of diodes in the trickle charger path.
type DiodeSelection byte

const (
	DiodeNone DiodeSelection = iota
	DiodeSingle
	DiodeDual
)

func (d DiodeSelection) String() string {
	switch d {
	case DiodeNone:
		return "no diode"
	case DiodeSingle:
		return "1 diode"
	case DiodeDual:
		return "2 diodes"
	default:
		return fmt.Sprintf("DiodeSelection(%d)", byte(d))
	}
}

// ResistorSelection is the resistor in the trickle charger path. The values
// are the register encoding.
type ResistorSelection byte

const (
	ResistorNone ResistorSelection = iota
	Resistor2K
	Resistor4K
	Resistor8K
)

func (r ResistorSelection) String() string {
	switch r {
	case ResistorNone:
		return "open"
	case Resistor2K:
		return "2kΩ"
	case Resistor4K:
		return "4kΩ"
	case Resistor8K:
		return "8kΩ"
	default:
		return fmt.Sprintf("ResistorSelection(%d)", byte(r))
	}
}

// ChargerConfig is the trickle charger path.
type ChargerConfig struct {
	Diode    DiodeSelection
	Resistor ResistorSelection
}

func (c ChargerConfig) String() string {
	return fmt.Sprintf("%s, %s", c.Diode, c.Resistor)
}

// Validate returns ErrInvalidValue for selections the device does not
// define and for a resistor without a diode.
func (c ChargerConfig) Validate() error {
	if c.Diode > DiodeDual {
		return invalidf("diode selection %d", byte(c.Diode))
	}
	if c.Resistor > Resistor8K {
		return invalidf("resistor selection %d", byte(c.Resistor))
	}
	if c.Diode == DiodeNone && c.Resistor != ResistorNone {
		return invalidf("charger resistor %s without a diode", c.Resistor)
	}
	return nil
}

// canCharge reports whether c is a complete charging path.
func (c ChargerConfig) canCharge() bool {
	return c.Diode != DiodeNone && c.Resistor != ResistorNone
}

func (c ChargerConfig) dsBits() byte {
	return byte(c.Diode) << dsShift & dsMask
}

// decodeCharger unpacks the charger register. The 0b11 diode pattern is not
// a valid path and reads as DiodeNone.
func decodeCharger(b byte) (ChargerConfig, bool) {
	c := ChargerConfig{Resistor: ResistorSelection(b & rsMask)}
	switch (b & dsMask) >> dsShift {
	case 1:
		c.Diode = DiodeSingle
	case 2:
		c.Diode = DiodeDual
	}
	return c, b&tcsMask == tcsEnable && c.canCharge()
}

// Charger returns the charger path and whether the charger is running.
func (d *Dev) Charger() (ChargerConfig, bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, err := d.readReg(RegCharger)
	if err != nil {
		return ChargerConfig{}, false, err
	}
	c, on := decodeCharger(b)
	return c, on, nil
}

// SetChargerState selects the charger path without changing whether it is
// enabled. The diode field and the resistor field are written in two
// successive transactions.
func (d *Dev) SetChargerState(c ChargerConfig) error {
	if err := c.Validate(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.updateReg(RegCharger, dsMask, c.dsBits()); err != nil {
		return err
	}
	return d.updateReg(RegCharger, rsMask, byte(c.Resistor))
}

// EnableCharger starts the trickle charger on the path already selected. It
// fails with ErrInvalidValue, without writing, unless both a diode and a
// resistor are selected.
func (d *Dev) EnableCharger() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, err := d.readReg(RegCharger)
	if err != nil {
		return err
	}
	if c, _ := decodeCharger(b); !c.canCharge() {
		return invalidf("charger path %s cannot be enabled", c)
	}
	return d.writeRegs(RegCharger, b&^tcsMask|tcsEnable)
}

// DisableCharger stops the trickle charger and keeps the path selection.
func (d *Dev) DisableCharger() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateReg(RegCharger, tcsMask, tcsDisable)
}

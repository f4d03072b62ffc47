// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1306

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChargerConfigValidate(t *testing.T) {
	for _, tc := range []struct {
		c     ChargerConfig
		valid bool
	}{
		{ChargerConfig{}, true},
		{ChargerConfig{Diode: DiodeSingle}, true},
		{ChargerConfig{Diode: DiodeSingle, Resistor: Resistor2K}, true},
		{ChargerConfig{Diode: DiodeDual, Resistor: Resistor8K}, true},
		{ChargerConfig{Resistor: Resistor2K}, false},
		{ChargerConfig{Resistor: Resistor4K}, false},
		{ChargerConfig{Resistor: Resistor8K}, false},
		{ChargerConfig{Diode: 3, Resistor: Resistor2K}, false},
		{ChargerConfig{Diode: DiodeSingle, Resistor: 4}, false},
	} {
		err := tc.c.Validate()
		if tc.valid && err != nil {
			t.Errorf("Validate(%v) = %v", tc.c, err)
		}
		if !tc.valid && !errors.Is(err, ErrInvalidValue) {
			t.Errorf("Validate(%v) = %v, want ErrInvalidValue", tc.c, err)
		}
	}
}

func TestSetChargerStateRejectsResistorWithoutDiode(t *testing.T) {
	d, c := newSimDev(t)
	err := d.SetChargerState(ChargerConfig{Diode: DiodeNone, Resistor: Resistor4K})
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("SetChargerState() = %v, want ErrInvalidValue", err)
	}
	if len(c.ops) != 0 {
		t.Errorf("%d transfers for an invalid charger path", len(c.ops))
	}
}

func TestDecodeCharger(t *testing.T) {
	for _, tc := range []struct {
		b    byte
		want ChargerConfig
		on   bool
	}{
		{0x00, ChargerConfig{}, false},
		{0x5c, ChargerConfig{Diode: DiodeNone}, false},
		{0xa5, ChargerConfig{Diode: DiodeSingle, Resistor: Resistor2K}, true},
		{0xab, ChargerConfig{Diode: DiodeDual, Resistor: Resistor8K}, true},
		{0x5b, ChargerConfig{Diode: DiodeDual, Resistor: Resistor8K}, false},
		{0xa4, ChargerConfig{Diode: DiodeSingle}, false},
		{0xe5, ChargerConfig{Diode: DiodeSingle, Resistor: Resistor2K}, false},
	} {
		got, on := decodeCharger(tc.b)
		if got != tc.want || on != tc.on {
			t.Errorf("decodeCharger(%#02x) = %v, %t; want %v, %t", tc.b, got, on, tc.want, tc.on)
		}
	}
}

func TestSetChargerState(t *testing.T) {
	d, c := newSimDev(t)
	c.regs[RegCharger] = tcsEnable | 0x04 | byte(Resistor8K)
	want := ChargerConfig{Diode: DiodeDual, Resistor: Resistor4K}
	if err := d.SetChargerState(want); err != nil {
		t.Fatal(err)
	}
	w := c.writes()
	// Two gated transactions of three writes each; the payloads are the
	// diode change, then the resistor change.
	if len(w) != 6 {
		t.Fatalf("%d writes, want 6", len(w))
	}
	if diff := cmp.Diff([][]byte{w[1], w[4]}, [][]byte{{0x91, 0xab}, {0x91, 0xaa}}); diff != "" {
		t.Errorf("payloads (-got +want):\n%s", diff)
	}
	got, on, err := d.Charger()
	if err != nil {
		t.Fatal(err)
	}
	if got != want || !on {
		t.Errorf("Charger() = %v, %t", got, on)
	}
	if c.regs[RegControl]&ctlWriteProtect == 0 {
		t.Error("write protect left cleared")
	}
}

func TestEnableCharger(t *testing.T) {
	d, c := newSimDev(t)
	c.regs[RegCharger] = tcsDisable | 0x04 | byte(Resistor2K)
	if err := d.EnableCharger(); err != nil {
		t.Fatal(err)
	}
	if got := c.regs[RegCharger]; got != 0xa5 {
		t.Errorf("charger = %#02x, want 0xa5", got)
	}
	if err := d.DisableCharger(); err != nil {
		t.Fatal(err)
	}
	if got := c.regs[RegCharger]; got != 0x55 {
		t.Errorf("charger = %#02x, want 0x55", got)
	}
	cfg, on, err := d.Charger()
	if err != nil {
		t.Fatal(err)
	}
	if on || cfg != (ChargerConfig{Diode: DiodeSingle, Resistor: Resistor2K}) {
		t.Errorf("Charger() = %v, %t", cfg, on)
	}
}

func TestEnableChargerIncompletePath(t *testing.T) {
	for _, b := range []byte{0x00, 0x54, 0x51, 0x5d} {
		d, c := newSimDev(t)
		c.regs[RegCharger] = b
		if err := d.EnableCharger(); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("charger %#02x: EnableCharger() = %v, want ErrInvalidValue", b, err)
		}
		if len(c.writes()) != 0 {
			t.Errorf("charger %#02x: EnableCharger() wrote to the device", b)
		}
	}
}

func TestChargerStrings(t *testing.T) {
	c := ChargerConfig{Diode: DiodeDual, Resistor: Resistor4K}
	if s := c.String(); s != "2 diodes, 4kΩ" {
		t.Errorf("String() = %q", s)
	}
	if s := DiodeSelection(7).String(); s != "DiodeSelection(7)" {
		t.Errorf("String() = %q", s)
	}
	if s := ResistorSelection(9).String(); s != "ResistorSelection(9)" {
		t.Errorf("String() = %q", s)
	}
}

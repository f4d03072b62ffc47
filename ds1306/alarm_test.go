// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1306

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAlarmMatchBitIsolation(t *testing.T) {
	a := AlarmSpec{
		Time:         TimeOfDay{Hour: 7, Minute: 59, Second: 30, Hour12: true, PM: true},
		Weekday:      Friday,
		MatchHour:    true,
		MatchMinute:  true,
		MatchSecond:  true,
		MatchWeekday: true,
	}
	b, err := encodeAlarm(a)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(b, []byte{0xb0, 0xd9, 0xe7, 0x86}); diff != "" {
		t.Errorf("encodeAlarm() (-got +want):\n%s", diff)
	}
	if diff := cmp.Diff(decodeAlarm(b), a); diff != "" {
		t.Errorf("decodeAlarm() (-got +want):\n%s", diff)
	}
}

func TestAlarmMatchFlagsIndependent(t *testing.T) {
	for i := range 16 {
		a := AlarmSpec{
			Time:         TimeOfDay{Hour: 23, Minute: 45, Second: 15},
			Weekday:      Tuesday,
			MatchSecond:  i&1 != 0,
			MatchMinute:  i&2 != 0,
			MatchHour:    i&4 != 0,
			MatchWeekday: i&8 != 0,
		}
		b, err := encodeAlarm(a)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(decodeAlarm(b), a); diff != "" {
			t.Errorf("flags %04b (-got +want):\n%s", i, diff)
		}
	}
}

func TestEncodeAlarmInvalid(t *testing.T) {
	for _, a := range []AlarmSpec{
		{Time: TimeOfDay{Hour: 25}},
		{Time: TimeOfDay{Minute: 60}, MatchMinute: true},
		{Weekday: 8},
		{Weekday: -1},
		{Weekday: 0, MatchWeekday: true},
	} {
		if _, err := encodeAlarm(a); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("encodeAlarm(%+v) = %v, want ErrInvalidValue", a, err)
		}
	}
}

func TestSetAlarm(t *testing.T) {
	for slot, cmd := range []byte{0x87, 0x8b} {
		d, c := newSimDev(t)
		a := AlarmSpec{
			Time:        TimeOfDay{Hour: 6, Minute: 30},
			MatchHour:   true,
			MatchMinute: true,
			MatchSecond: true,
		}
		if err := d.SetAlarm(slot, a); err != nil {
			t.Fatal(err)
		}
		w := c.writes()
		if diff := cmp.Diff(w[1], []byte{cmd, 0x80, 0xb0, 0x86, 0x00}); diff != "" {
			t.Errorf("slot %d frame (-got +want):\n%s", slot, diff)
		}
		got, err := d.Alarm(slot)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(got, a); diff != "" {
			t.Errorf("Alarm(%d) (-got +want):\n%s", slot, diff)
		}
		other, err := d.Alarm(1 - slot)
		if err != nil {
			t.Fatal(err)
		}
		if other != (AlarmSpec{}) {
			t.Errorf("Alarm(%d) = %+v, want untouched", 1-slot, other)
		}
	}
}

func TestAlarmSlotInvalid(t *testing.T) {
	d, c := newSimDev(t)
	for _, slot := range []int{-1, 2} {
		if _, err := d.Alarm(slot); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("Alarm(%d) = %v", slot, err)
		}
		if err := d.SetAlarm(slot, AlarmSpec{}); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("SetAlarm(%d) = %v", slot, err)
		}
		if err := d.EnableAlarmInt(slot); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("EnableAlarmInt(%d) = %v", slot, err)
		}
		if err := d.DisableAlarmInt(slot); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("DisableAlarmInt(%d) = %v", slot, err)
		}
		if _, err := d.AlarmStatus(slot); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("AlarmStatus(%d) = %v", slot, err)
		}
	}
	if len(c.ops) != 0 {
		t.Errorf("%d transfers for invalid slots", len(c.ops))
	}
}

func TestAlarmInt(t *testing.T) {
	d, c := newSimDev(t)
	c.regs[RegControl] = ctlWriteProtect | ctl1Hz
	if err := d.EnableAlarmInt(1); err != nil {
		t.Fatal(err)
	}
	if got := c.regs[RegControl]; got != ctlWriteProtect|ctl1Hz|ctlAIE1 {
		t.Errorf("control = %#02x", got)
	}
	if err := d.EnableAlarmInt(0); err != nil {
		t.Fatal(err)
	}
	if err := d.DisableAlarmInt(1); err != nil {
		t.Fatal(err)
	}
	if got := c.regs[RegControl]; got != ctlWriteProtect|ctl1Hz|ctlAIE0 {
		t.Errorf("control = %#02x", got)
	}
	// The payload write carries the new bits with write protection off.
	if diff := cmp.Diff(c.writes()[1], []byte{0x8f, ctl1Hz | ctlAIE1}); diff != "" {
		t.Errorf("payload (-got +want):\n%s", diff)
	}
}

func TestAlarmStatus(t *testing.T) {
	d, c := newSimDev(t)
	c.regs[RegStatus] = stIRQF1
	for slot, want := range []bool{false, true} {
		got, err := d.AlarmStatus(slot)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("AlarmStatus(%d) = %t, want %t", slot, got, want)
		}
	}
	if len(c.writes()) != 0 {
		t.Error("AlarmStatus wrote to the device")
	}
}

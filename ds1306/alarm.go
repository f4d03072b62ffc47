// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1306

// AlarmSpec is the content of one of the two alarms.
//
// Each Match flag is stored as bit 7 of its field's register. A field whose
// flag is false is a wildcard and its value is not meaningful when read back.
type AlarmSpec struct {
	Time TimeOfDay
	// Weekday is 1 (Sunday) to 7. It may be 0 when MatchWeekday is false.
	Weekday int

	MatchHour    bool
	MatchMinute  bool
	MatchSecond  bool
	MatchWeekday bool
}

func withMatch(b byte, match bool) byte {
	if match {
		return b | alarmMatch
	}
	return b
}

// encodeAlarm returns the seconds, minutes, hours and weekday registers of
// an alarm.
func encodeAlarm(a AlarmSpec) ([]byte, error) {
	t, err := encodeTime(a.Time)
	if err != nil {
		return nil, err
	}
	if a.Weekday < 0 || a.Weekday > 7 || (a.MatchWeekday && a.Weekday == 0) {
		return nil, invalidf("alarm weekday %d", a.Weekday)
	}
	return []byte{
		withMatch(t[0], a.MatchSecond),
		withMatch(t[1], a.MatchMinute),
		withMatch(t[2], a.MatchHour),
		withMatch(mustBCD(a.Weekday), a.MatchWeekday),
	}, nil
}

// decodeAlarm unpacks the four registers of an alarm.
func decodeAlarm(b []byte) AlarmSpec {
	var a AlarmSpec
	a.MatchSecond = b[0]&alarmMatch != 0
	a.MatchMinute = b[1]&alarmMatch != 0
	a.MatchHour = b[2]&alarmMatch != 0
	a.MatchWeekday = b[3]&alarmMatch != 0
	a.Time.Second = decodeBCD(b[0] & alarmFieldMask)
	a.Time.Minute = decodeBCD(b[1] & alarmFieldMask)
	a.Time.Hour, a.Time.Hour12, a.Time.PM = decodeHour(b[2] & alarmFieldMask)
	a.Weekday = decodeBCD(b[3] & weekdayMask)
	return a
}

// Alarm returns the content of alarm slot 0 or 1.
func (d *Dev) Alarm(slot int) (AlarmSpec, error) {
	base, err := alarmBase(slot)
	if err != nil {
		return AlarmSpec{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	b, err := d.readBurst()
	if err != nil {
		return AlarmSpec{}, err
	}
	return decodeAlarm(b[int(base)+1 : int(base)+1+alarmRegs]), nil
}

// SetAlarm writes alarm slot 0 or 1. It does not change whether the alarm
// interrupt is enabled.
func (d *Dev) SetAlarm(slot int, a AlarmSpec) error {
	base, err := alarmBase(slot)
	if err != nil {
		return err
	}
	b, err := encodeAlarm(a)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeRegs(base, b...)
}

// EnableAlarmInt lets alarm slot drive its interrupt pin.
func (d *Dev) EnableAlarmInt(slot int) error {
	if _, err := alarmBase(slot); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	bit := alarmEnableBit(slot)
	return d.updateReg(RegControl, bit, bit)
}

// DisableAlarmInt stops alarm slot from driving its interrupt pin.
func (d *Dev) DisableAlarmInt(slot int) error {
	if _, err := alarmBase(slot); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.updateReg(RegControl, alarmEnableBit(slot), 0)
}

// AlarmStatus reports whether alarm slot has fired.
func (d *Dev) AlarmStatus(slot int) (bool, error) {
	if _, err := alarmBase(slot); err != nil {
		return false, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	st, err := d.readReg(RegStatus)
	if err != nil {
		return false, err
	}
	return st&alarmFlagBit(slot) != 0, nil
}

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1306

import (
	"fmt"
	"time"
)

// TimeOfDay is the time part of the clock or of an alarm.
type TimeOfDay struct {
	// Hour is 0-23 in 24-hour mode and 1-12 in 12-hour mode.
	Hour   int
	Minute int
	Second int
	// Hour12 selects 12-hour mode.
	Hour12 bool
	// PM is only meaningful in 12-hour mode.
	PM bool
}

func (t TimeOfDay) String() string {
	if !t.Hour12 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	suffix := "AM"
	if t.PM {
		suffix = "PM"
	}
	return fmt.Sprintf("%02d:%02d:%02d %s", t.Hour, t.Minute, t.Second, suffix)
}

// encodeHour packs an hour register. In 12-hour mode hours 13-23 are taken
// as already past noon and reduced by 12; the PM flag is used as given.
func encodeHour(hour int, hour12Mode, pm bool) (byte, error) {
	if !hour12Mode {
		if hour < 0 || hour > 23 {
			return 0, invalidf("hour %d, want 0-23", hour)
		}
		return mustBCD(hour), nil
	}
	if hour > 12 && hour < 24 {
		hour -= 12
	}
	if hour < 1 || hour > 12 {
		return 0, invalidf("hour %d, want 1-12", hour)
	}
	b := mustBCD(hour) | hour12
	if pm {
		b |= hourPM
	}
	return b, nil
}

// decodeHour unpacks an hour register whose flag bit 7, if any, has already
// been cleared.
func decodeHour(b byte) (hour int, hour12Mode, pm bool) {
	if b&hour12 == 0 {
		return decodeBCD(b & hour24Mask), false, false
	}
	return decodeBCD(b & hour12Mask), true, b&hourPM != 0
}

func checkMinSec(t TimeOfDay) error {
	if t.Minute < 0 || t.Minute > 59 {
		return invalidf("minute %d", t.Minute)
	}
	if t.Second < 0 || t.Second > 59 {
		return invalidf("second %d", t.Second)
	}
	return nil
}

// encodeTime returns the seconds, minutes and hours registers.
func encodeTime(t TimeOfDay) ([]byte, error) {
	if err := checkMinSec(t); err != nil {
		return nil, err
	}
	h, err := encodeHour(t.Hour, t.Hour12, t.PM)
	if err != nil {
		return nil, err
	}
	return []byte{mustBCD(t.Second), mustBCD(t.Minute), h}, nil
}

// decodeTime unpacks the seconds, minutes and hours registers.
func decodeTime(b []byte) TimeOfDay {
	var t TimeOfDay
	t.Second = decodeBCD(b[0] & secMask)
	t.Minute = decodeBCD(b[1] & minMask)
	t.Hour, t.Hour12, t.PM = decodeHour(b[2])
	return t
}

// Time returns the current time of day in the mode the clock runs in.
func (d *Dev) Time() (TimeOfDay, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, err := d.readBurst()
	if err != nil {
		return TimeOfDay{}, err
	}
	return decodeTime(b[int(RegSeconds)+1:]), nil
}

// SetTime sets the time of day and the hour mode the clock runs in.
func (d *Dev) SetTime(t TimeOfDay) error {
	b, err := encodeTime(t)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeRegs(RegSeconds, b...)
}

// Date returns the current date. Each field is read in its own transaction.
func (d *Dev) Date() (CalendarDate, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var c CalendarDate
	for _, f := range []struct {
		reg  Register
		mask byte
		v    *int
	}{
		{RegYear, 0xff, &c.Year},
		{RegMonth, monthMask, &c.Month},
		{RegDay, dayMask, &c.Day},
		{RegWeekday, weekdayMask, &c.Weekday},
	} {
		b, err := d.readReg(f.reg)
		if err != nil {
			return CalendarDate{}, err
		}
		*f.v = decodeBCD(b & f.mask)
	}
	return c, nil
}

// SetDate sets the date. year is two digits, 0-99, in the century Century.
// The weekday register is computed from the date and written with it.
func (d *Dev) SetDate(year, month, day int) error {
	c, err := newCalendarDate(year, month, day)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeRegs(RegWeekday, c.encode()...)
}

// Now returns the clock as a time.Time in UTC, from a single burst read so
// that no field rolls over between reads.
func (d *Dev) Now() (time.Time, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, err := d.readBurst()
	if err != nil {
		return time.Time{}, err
	}
	regs := b[1:]
	t := decodeTime(regs[RegSeconds:])
	hour := t.Hour
	if t.Hour12 {
		hour %= 12
		if t.PM {
			hour += 12
		}
	}
	return time.Date(
		Century+decodeBCD(regs[RegYear]),
		time.Month(decodeBCD(regs[RegMonth]&monthMask)),
		decodeBCD(regs[RegDay]&dayMask),
		hour, t.Minute, t.Second, 0, time.UTC), nil
}

// SetNow writes t, converted to UTC, to the clock in 24-hour mode. The year
// must be within the device's century.
func (d *Dev) SetNow(t time.Time) error {
	t = t.UTC()
	if t.Year() < Century || t.Year() > Century+99 {
		return invalidf("year %d, want %d-%d", t.Year(), Century, Century+99)
	}
	c, err := newCalendarDate(t.Year()-Century, int(t.Month()), t.Day())
	if err != nil {
		return err
	}
	b, err := encodeTime(TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()})
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writeRegs(RegSeconds, append(b, c.encode()...)...)
}

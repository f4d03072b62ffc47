// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1306

import "fmt"

// Register is the address of one of the clock, alarm or control registers.
type Register byte

const (
	RegSeconds Register = 0x00
	RegMinutes Register = 0x01
	RegHours   Register = 0x02
	RegWeekday Register = 0x03
	RegDay     Register = 0x04
	RegMonth   Register = 0x05
	RegYear    Register = 0x06

	// Each alarm has four registers: seconds, minutes, hours, weekday.
	RegAlarm0 Register = 0x07
	RegAlarm1 Register = 0x0B

	RegControl Register = 0x0F
	RegStatus  Register = 0x10
	RegCharger Register = 0x11

	// RegisterCount is the number of registers returned by a burst read.
	RegisterCount = int(RegCharger) + 1
)

const (
	// writeFlag is OR'ed to an address to make it a write command.
	writeFlag byte = 0x80

	// A burst read clocks out the address byte first; register i arrives
	// at index i+1.
	burstLen = RegisterCount + 1

	alarmRegs = 4

	ramBase byte = 0x20
	// RAMSize is the number of bytes of user RAM.
	RAMSize = 0x80 - int(ramBase)
)

// Field masks isolating the BCD value from the flags sharing its byte.
const (
	secMask        byte = 0x7f
	minMask        byte = 0x7f
	hour24Mask     byte = 0x3f
	hour12Mask     byte = 0x1f
	weekdayMask    byte = 0x07
	dayMask        byte = 0x3f
	monthMask      byte = 0x1f
	alarmFieldMask byte = 0x7f
)

// Bits.
const (
	hour12 byte = 1 << 6
	hourPM byte = 1 << 5

	alarmMatch byte = 1 << 7

	ctlWriteProtect byte = 1 << 6
	ctl1Hz          byte = 1 << 2
	ctlAIE1         byte = 1 << 1
	ctlAIE0         byte = 1 << 0

	stIRQF1 byte = 1 << 1
	stIRQF0 byte = 1 << 0

	// The charger runs only when the TCS nibble reads 1010.
	tcsMask    byte = 0xf0
	tcsEnable  byte = 0xa0
	tcsDisable byte = 0x50
	dsMask     byte = 0x0c
	dsShift         = 2
	rsMask     byte = 0x03
)

var registerNames = [RegisterCount]string{
	"Seconds", "Minutes", "Hours", "Weekday", "Day", "Month", "Year",
	"A0Seconds", "A0Minutes", "A0Hours", "A0Weekday",
	"A1Seconds", "A1Minutes", "A1Hours", "A1Weekday",
	"Control", "Status", "Charger",
}

func (r Register) String() string {
	if int(r) < RegisterCount {
		return registerNames[r]
	}
	if byte(r) >= ramBase && byte(r) < 0x80 {
		return fmt.Sprintf("RAM[%d]", byte(r)-ramBase)
	}
	return fmt.Sprintf("Register(0x%02x)", byte(r))
}

// alarmBase returns the first register of an alarm slot.
func alarmBase(slot int) (Register, error) {
	switch slot {
	case 0:
		return RegAlarm0, nil
	case 1:
		return RegAlarm1, nil
	default:
		return 0, invalidf("alarm slot %d", slot)
	}
}

// alarmEnableBit returns the control register bit enabling slot's interrupt.
func alarmEnableBit(slot int) byte {
	if slot == 0 {
		return ctlAIE0
	}
	return ctlAIE1
}

// alarmFlagBit returns the status register bit set when slot fired.
func alarmFlagBit(slot int) byte {
	if slot == 0 {
		return stIRQF0
	}
	return stIRQF1
}

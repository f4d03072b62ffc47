// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ds1306 controls a Maxim DS1306 serial alarm real-time clock over
// SPI.
//
// The DS1306 keeps seconds through years in BCD registers, has two alarms
// that can drive the INT0 and INT1 pins, a 1Hz output, a trickle charger for
// the backup supply and 96 bytes of battery-backed user RAM.
//
// The chip enable (CE) line is active high, which most SPI controllers cannot
// generate, so the driver drives it through a GPIO and connects to the port
// with spi.NoCS.
//
// Every write is bracketed by clearing and restoring the write-protect bit of
// the control register. Reads never touch it.
//
// The two-digit year register is interpreted as 2000-2099.
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/DS1306.pdf
package ds1306

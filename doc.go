// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rtcdevices is a container for real-time clock drivers and the
// tools to bring them up.
//
// ds1306 drives the Maxim DS1306 over SPI, regdump renders register
// snapshots on a terminal and cmd/ds1306 exposes both on the command line.
package rtcdevices

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1306

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue is returned when an argument is out of range. It is
	// always detected before anything is sent to the device.
	ErrInvalidValue = errors.New("ds1306: invalid value")

	// ErrTransport is returned when an SPI transfer or the CE pin fails.
	ErrTransport = errors.New("ds1306: transport failure")

	// ErrConfiguration is returned by New when the port cannot be set up
	// with the requested parameters.
	ErrConfiguration = errors.New("ds1306: configuration failure")
)

func invalidf(format string, a ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidValue, fmt.Sprintf(format, a...))
}

func transportErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
}

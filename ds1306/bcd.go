// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1306

// decodeBCD converts a packed BCD byte to binary. Flag bits sharing the
// register must be masked off by the caller.
func decodeBCD(b byte) int {
	return int(b>>4)*10 + int(b&0x0f)
}

// encodeBCD packs n, 0-99, as two BCD digits.
func encodeBCD(n int) (byte, error) {
	if n < 0 || n > 99 {
		return 0, invalidf("%d cannot be encoded as BCD", n)
	}
	return byte(n/10)<<4 | byte(n%10), nil
}

// mustBCD is encodeBCD for values already range checked.
func mustBCD(n int) byte {
	b, err := encodeBCD(n)
	if err != nil {
		panic(err)
	}
	return b
}

// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds1306

import "fmt"

// Century is added to the two-digit year register.
const Century = 2000

// Weekday numbering used by the device.
const (
	Sunday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var monthOffsets = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// DayOfWeek returns the Gregorian day of the week for a date, 1 (Sunday)
// through 7 (Saturday). year is the full year.
func DayOfWeek(year, month, day int) int {
	if month < 3 {
		year--
	}
	return (year+year/4-year/100+year/400+monthOffsets[month-1]+day)%7 + 1
}

// CalendarDate is the date part of the clock.
type CalendarDate struct {
	// Year is the two-digit year; the full year is Century+Year.
	Year  int
	Month int
	Day   int
	// Weekday is 1 (Sunday) to 7. It is always derived from the other
	// fields when the date is written.
	Weekday int
}

func (c CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d (%d)", Century+c.Year, c.Month, c.Day, c.Weekday)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(year, month int) int {
	switch month {
	case 2:
		if isLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// newCalendarDate validates a two-digit year, month and day and derives the
// weekday.
func newCalendarDate(year, month, day int) (CalendarDate, error) {
	if year < 0 || year > 99 {
		return CalendarDate{}, invalidf("year %d, want 0-99", year)
	}
	if month < 1 || month > 12 {
		return CalendarDate{}, invalidf("month %d", month)
	}
	if day < 1 || day > daysIn(Century+year, month) {
		return CalendarDate{}, invalidf("day %d of %04d-%02d", day, Century+year, month)
	}
	return CalendarDate{
		Year:    year,
		Month:   month,
		Day:     day,
		Weekday: DayOfWeek(Century+year, month, day),
	}, nil
}

// encode returns the weekday, day, month and year registers in address
// order.
func (c CalendarDate) encode() []byte {
	return []byte{mustBCD(c.Weekday), mustBCD(c.Day), mustBCD(c.Month), mustBCD(c.Year)}
}

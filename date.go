// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"cmp"
	"fmt"
	"time"

	"cloudeng.io/errors"
)

// Date represents a date on the proleptic ISO-8601 calendar, such as
// 2007-12-03, as a year, month and day of month. The zero value is not a
// valid date; use NewDate or MustDate. Date is comparable with == and
// values constructed by this package always denote a real calendar day.
type Date struct {
	year  Year
	month Month
	day   uint8
}

// NewDate returns the Date for the given year, month and day of month.
// Each field is first checked against its own range (year within
// [MinYear, MaxYear], month 1-12, day 1-31) and an error wrapping ErrRange
// reporting every out of range field is returned if any fail. The day is
// then checked against the length of the month for that year and an error
// wrapping ErrInvalidField is returned if it exceeds it.
func NewDate(year int, month Month, day int) (Date, error) {
	errs := errors.M{}
	if year < int(MinYear) || year > int(MaxYear) {
		errs.Append(rangeError(FieldYear, year, int(MinYear), int(MaxYear)))
	}
	if month < January || month > December {
		errs.Append(rangeError(FieldMonth, int(month), 1, 12))
	}
	if day < 1 || day > 31 {
		errs.Append(rangeError(FieldDayOfMonth, day, 1, 31))
	}
	if err := errs.Err(); err != nil {
		return Date{}, err
	}
	if ml := DaysInMonth(Year(year), month); day > ml {
		return Date{}, invalidFieldError(FieldDayOfMonth, day, 1, ml)
	}
	return Date{year: Year(year), month: month, day: uint8(day)}, nil
}

// MustDate is like NewDate but panics if the date is invalid. It is
// intended for statically known dates.
func MustDate(year int, month Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateFromTime returns the Date for the given time in its location.
func DateFromTime(when time.Time) (Date, error) {
	return NewDate(when.Year(), Month(when.Month()), when.Day())
}

// DateFromYearDay returns the Date for the given day of the year, 1-365,
// or 1-366 for leap years. Values outside 1-366 return an error wrapping
// ErrRange; 366 in a non-leap year returns an error wrapping
// ErrInvalidField.
func DateFromYearDay(year, yearDay int) (Date, error) {
	y, err := NewYear(year)
	if err != nil {
		return Date{}, err
	}
	if yearDay < 1 || yearDay > 366 {
		return Date{}, rangeError(FieldDayOfYear, yearDay, 1, 366)
	}
	if last := DaysInYear(y); yearDay > last {
		return Date{}, invalidFieldError(FieldDayOfYear, yearDay, 1, last)
	}
	rem := yearDay
	for month := January; ; month = month.Next() {
		ml := DaysInMonth(y, month)
		if rem <= ml {
			return Date{year: y, month: month, day: uint8(rem)}, nil
		}
		rem -= ml
	}
}

// Year returns the year field.
func (d Date) Year() Year {
	return d.year
}

// Month returns the month of year field.
func (d Date) Month() Month {
	return d.month
}

// Day returns the day of month field.
func (d Date) Day() int {
	return int(d.day)
}

// YearDay returns the day of the year, 1-365, or 1-366 in leap years.
// It is always derived from the year, month and day fields, never stored.
func (d Date) YearDay() int {
	if d.year.IsLeap() {
		return dayOfYearLeap[d.month-1] + int(d.day)
	}
	return dayOfYear[d.month-1] + int(d.day)
}

// Weekday returns the day of the week, derived from the epoch day count.
func (d Date) Weekday() Weekday {
	// Day 0, 1970-01-01, was a Thursday.
	return Weekday(floorMod(d.epochDays()+3, 7) + 1)
}

// Time returns the midnight time.Time for the date in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(int(d.year), time.Month(d.month), int(d.day), 0, 0, 0, 0, loc)
}

// Compare returns -1 if d is before other, 0 if they are equal and +1 if
// d is after other. The order is chronological, comparing year, then
// month, then day.
func (d Date) Compare(other Date) int {
	if c := cmp.Compare(d.year, other.year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.month, other.month); c != 0 {
		return c
	}
	return cmp.Compare(d.day, other.day)
}

// Before returns true if d is chronologically before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After returns true if d is chronologically after other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// String returns the canonical machine sortable form of the date,
// YYYY-MM-DD, with the year zero padded to at least four digits and sign
// extended for years outside [0, 9999].
func (d Date) String() string {
	return fmt.Sprintf("%v-%02d-%02d", d.year, int(d.month), int(d.day))
}

// DaysBetween returns the number of days from a to b, negative if b is
// before a. DaysBetween(a, b) == n implies a.AddDays(n) == b.
func DaysBetween(a, b Date) int {
	return int(b.epochDays() - a.epochDays())
}

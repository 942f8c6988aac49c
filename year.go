// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"math"
)

// Year represents a year on the proleptic ISO-8601 calendar. Year 1 is
// 1 CE, year 0 is 1 BCE, year -1 is 2 BCE and so on.
type Year int32

const (
	// MinYear is the minimum supported year. The two int32 values below it
	// are reserved so that year arithmetic can always be range checked
	// before it would wrap.
	MinYear Year = math.MinInt32 + 2
	// MaxYear is the maximum supported year.
	MaxYear Year = math.MaxInt32
)

// NewYear returns the Year for the given proleptic ISO year value.
func NewYear(year int) (Year, error) {
	if year < int(MinYear) || year > int(MaxYear) {
		return 0, rangeError(FieldYear, year, int(MinYear), int(MaxYear))
	}
	return Year(year), nil
}

// IsLeap returns true if the year is a leap year according to the proleptic
// ISO-8601 rules: divisible by 4, except years divisible by 100 that are
// not divisible by 400. The rule applies uniformly to years before the
// historical adoption of the Gregorian calendar; year 0 is a leap year.
func (y Year) IsLeap() bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}

// Add returns the year with the given number of years added, which may be
// negative. It returns an error wrapping ErrOverflow if the result would
// be outside [MinYear, MaxYear].
func (y Year) Add(years int) (Year, error) {
	r, err := safeAdd(int64(y), int64(years))
	if err != nil {
		return 0, fmt.Errorf("year %v%+d: %w", y, years, ErrOverflow)
	}
	if r < int64(MinYear) || r > int64(MaxYear) {
		return 0, fmt.Errorf("year %v%+d: %w", y, years, ErrOverflow)
	}
	return Year(r), nil
}

// Sub returns the year with the given number of years subtracted.
func (y Year) Sub(years int) (Year, error) {
	if years == math.MinInt {
		return 0, fmt.Errorf("year %v-(%d): %w", y, years, ErrOverflow)
	}
	return y.Add(-years)
}

// Next returns the following year, failing at MaxYear.
func (y Year) Next() (Year, error) {
	return y.Add(1)
}

// Previous returns the preceding year, failing at MinYear.
func (y Year) Previous() (Year, error) {
	return y.Add(-1)
}

// NextLeap returns the next leap year after this one. The boundary failure
// from Next is propagated if MaxYear is reached first.
func (y Year) NextLeap() (Year, error) {
	for {
		var err error
		if y, err = y.Next(); err != nil {
			return 0, err
		}
		if y.IsLeap() {
			return y, nil
		}
	}
}

// PreviousLeap returns the closest leap year before this one. The boundary
// failure from Previous is propagated if MinYear is reached first.
func (y Year) PreviousLeap() (Year, error) {
	for {
		var err error
		if y, err = y.Previous(); err != nil {
			return 0, err
		}
		if y.IsLeap() {
			return y, nil
		}
	}
}

// String returns the year zero padded to at least four digits, with a
// leading '-' for negative years, eg. "2007", "0042" or "-0003".
func (y Year) String() string {
	if y < 0 {
		return fmt.Sprintf("-%04d", -int64(y))
	}
	return fmt.Sprintf("%04d", int64(y))
}

// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// Long range date arithmetic goes through a continuous epoch day count,
// with day 0 being 1970-01-01. The conversions below use the standard
// 400-year cycle decomposition of the proleptic Gregorian calendar with
// years rebased to start on March 1st so that the leap day is the last
// day of the rebased year.

const (
	daysPer400Years = 146097
	// Days from 0000-03-01 to 1970-01-01.
	epochOffsetDays = 719468
)

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

func safeAdd(a, b int64) (int64, error) {
	r := a + b
	if (b > 0 && r < a) || (b < 0 && r > a) {
		return 0, fmt.Errorf("%d%+d: %w", a, b, ErrOverflow)
	}
	return r, nil
}

// epochDays returns the number of days since 1970-01-01, negative for
// earlier dates.
func (d Date) epochDays() int64 {
	y, m, day := int64(d.year), int64(d.month), int64(d.day)
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400 // [0, 399]
	mp := m + 9
	if m > 2 {
		mp = m - 3
	}
	doy := (153*mp+2)/5 + day - 1                // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy       // [0, 146096]
	return era*daysPer400Years + doe - epochOffsetDays
}

// dateFromEpochDays is the inverse of epochDays. It returns an error
// wrapping ErrOverflow if the resulting year would be outside
// [MinYear, MaxYear].
func dateFromEpochDays(days int64) (Date, error) {
	z, err := safeAdd(days, epochOffsetDays)
	if err != nil {
		return Date{}, fmt.Errorf("epoch day %d: %w", days, ErrOverflow)
	}
	era := floorDiv(z, daysPer400Years)
	doe := z - era*daysPer400Years                             // [0, 146096]
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365     // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]
	mp := (5*doy + 2) / 153                  // [0, 11]
	day := doy - (153*mp+2)/5 + 1            // [1, 31]
	m := mp - 9
	if mp < 10 {
		m = mp + 3
	}
	if m <= 2 {
		y++
	}
	if y < int64(MinYear) || y > int64(MaxYear) {
		return Date{}, fmt.Errorf("epoch day %d: year %d: %w", days, y, ErrOverflow)
	}
	return Date{year: Year(y), month: Month(m), day: uint8(day)}, nil
}

// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"math"
)

// AddDays returns the date the given number of days later, which may be
// negative. The only possible failure is an error wrapping ErrOverflow
// when the resulting year would be outside [MinYear, MaxYear].
//
// Small deltas are resolved within the current or the following month
// without any epoch conversion; larger deltas go through the epoch day
// count.
func (d Date) AddDays(days int) (Date, error) {
	if days == 0 {
		return d, nil
	}
	if dom, err := safeAdd(int64(d.day), int64(days)); err == nil && dom >= 1 {
		monthLen := int64(DaysInMonth(d.year, d.month))
		if dom <= monthLen {
			return Date{year: d.year, month: d.month, day: uint8(dom)}, nil
		}
		// 28 guarantees the result lands no more than one month ahead.
		if dom <= monthLen+28 {
			dom -= monthLen
			if d.month == December {
				ny, err := d.year.Next()
				if err != nil {
					return Date{}, err
				}
				return Date{year: ny, month: January, day: uint8(dom)}, nil
			}
			return Date{year: d.year, month: d.month.Next(), day: uint8(dom)}, nil
		}
	}
	ed, err := safeAdd(d.epochDays(), int64(days))
	if err != nil {
		return Date{}, fmt.Errorf("%v%+d days: %w", d, days, ErrOverflow)
	}
	return dateFromEpochDays(ed)
}

// SubDays returns the date the given number of days earlier.
func (d Date) SubDays(days int) (Date, error) {
	if days == math.MinInt {
		return Date{}, fmt.Errorf("%v-(%d) days: %w", d, days, ErrOverflow)
	}
	return d.AddDays(-days)
}

// AddWeeks returns the date the given number of weeks later.
func (d Date) AddWeeks(weeks int) (Date, error) {
	if weeks > math.MaxInt/7 || weeks < math.MinInt/7 {
		return Date{}, fmt.Errorf("%v%+d weeks: %w", d, weeks, ErrOverflow)
	}
	return d.AddDays(7 * weeks)
}

// SubWeeks returns the date the given number of weeks earlier.
func (d Date) SubWeeks(weeks int) (Date, error) {
	if weeks == math.MinInt {
		return Date{}, fmt.Errorf("%v-(%d) weeks: %w", d, weeks, ErrOverflow)
	}
	return d.AddWeeks(-weeks)
}

// AddMonths returns the date the given number of months later, resolving
// a day of month that exceeds the target month's length to the last valid
// day of that month. For example, 2007-03-31 plus one month is 2007-04-30.
func (d Date) AddMonths(months int) (Date, error) {
	return d.AddMonthsResolved(months, PreviousValid)
}

// AddMonthsResolved is like AddMonths but applies the supplied Resolver
// when the naive result is not a real calendar day.
func (d Date) AddMonthsResolved(months int, resolver Resolver) (Date, error) {
	if resolver == nil {
		return Date{}, ErrNilResolver
	}
	if months == 0 {
		return d, nil
	}
	idx, err := safeAdd(int64(d.year)*12+int64(d.month)-1, int64(months))
	if err != nil {
		return Date{}, fmt.Errorf("%v%+d months: %w", d, months, ErrOverflow)
	}
	year := floorDiv(idx, 12)
	month := Month(floorMod(idx, 12) + 1)
	if year < int64(MinYear) || year > int64(MaxYear) {
		return Date{}, fmt.Errorf("%v%+d months: year %d: %w", d, months, year, ErrOverflow)
	}
	return resolver.Resolve(Year(year), month, int(d.day))
}

// SubMonths returns the date the given number of months earlier, with
// the same day resolution as AddMonths.
func (d Date) SubMonths(months int) (Date, error) {
	if months == math.MinInt {
		return Date{}, fmt.Errorf("%v-(%d) months: %w", d, months, ErrOverflow)
	}
	return d.AddMonths(-months)
}

// AddYears returns the date the given number of years later, resolving
// February 29th to February 28th when the target year is not a leap year.
func (d Date) AddYears(years int) (Date, error) {
	return d.AddYearsResolved(years, PreviousValid)
}

// AddYearsResolved is like AddYears but applies the supplied Resolver
// when the naive result is not a real calendar day.
func (d Date) AddYearsResolved(years int, resolver Resolver) (Date, error) {
	if resolver == nil {
		return Date{}, ErrNilResolver
	}
	if years == 0 {
		return d, nil
	}
	year, err := d.year.Add(years)
	if err != nil {
		return Date{}, err
	}
	return resolver.Resolve(year, d.month, int(d.day))
}

// SubYears returns the date the given number of years earlier, with the
// same day resolution as AddYears.
func (d Date) SubYears(years int) (Date, error) {
	if years == math.MinInt {
		return Date{}, fmt.Errorf("%v-(%d) years: %w", d, years, ErrOverflow)
	}
	return d.AddYears(-years)
}

// Tomorrow returns the date of the next day.
func (d Date) Tomorrow() (Date, error) {
	return d.AddDays(1)
}

// Yesterday returns the date of the previous day.
func (d Date) Yesterday() (Date, error) {
	return d.AddDays(-1)
}

// WithYear returns the date with the year replaced, resolving February
// 29th to February 28th when the new year is not a leap year.
func (d Date) WithYear(year int) (Date, error) {
	if int(d.year) == year {
		return d, nil
	}
	y, err := NewYear(year)
	if err != nil {
		return Date{}, err
	}
	return PreviousValid.Resolve(y, d.month, int(d.day))
}

// WithMonth returns the date with the month replaced, resolving a day of
// month that exceeds the new month's length to its last valid day.
func (d Date) WithMonth(month Month) (Date, error) {
	if d.month == month {
		return d, nil
	}
	if month < January || month > December {
		return Date{}, rangeError(FieldMonth, int(month), 1, 12)
	}
	return PreviousValid.Resolve(d.year, month, int(d.day))
}

// WithDay returns the date with the day of month replaced. Unlike
// WithYear and WithMonth the new value is never adjusted; an invalid day
// is an error.
func (d Date) WithDay(day int) (Date, error) {
	if int(d.day) == day {
		return d, nil
	}
	return NewDate(int(d.year), d.month, day)
}

// WithLastDayOfMonth returns the date moved to the last day of its month.
func (d Date) WithLastDayOfMonth() Date {
	return Date{year: d.year, month: d.month, day: uint8(DaysInMonth(d.year, d.month))}
}

// WithLastDayOfYear returns the date moved to December 31st of its year.
func (d Date) WithLastDayOfYear() Date {
	return Date{year: d.year, month: December, day: 31}
}

// WithYearDay returns the date with the day of year replaced, applied as
// a day delta so that all day arithmetic shares a single code path.
func (d Date) WithYearDay(yearDay int) (Date, error) {
	if yearDay < 1 || yearDay > 366 {
		return Date{}, rangeError(FieldDayOfYear, yearDay, 1, 366)
	}
	if last := DaysInYear(d.year); yearDay > last {
		return Date{}, invalidFieldError(FieldDayOfYear, yearDay, 1, last)
	}
	return d.AddDays(yearDay - d.YearDay())
}

// WithWeekday returns the date adjusted within its Monday to Sunday week
// to fall on the given weekday.
func (d Date) WithWeekday(weekday Weekday) (Date, error) {
	if weekday < Monday || weekday > Sunday {
		return Date{}, rangeError(FieldDayOfWeek, int(weekday), 1, 7)
	}
	return d.AddDays(int(weekday) - int(d.Weekday()))
}

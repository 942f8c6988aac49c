// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides immutable value types for working with dates
// on the proleptic ISO-8601 calendar: years, months, weekdays and calendar
// dates, together with validated construction and overflow-safe date
// arithmetic. All types are plain integer values and hence safe for
// concurrent use; every operation returns a new value and never mutates
// its receiver.
package calendar

import (
	"time"
)

var (
	dayOfYear       []int // per month cumulative days in year, so [0, 31, 59, ...]
	dayOfYearLeap   []int // per month cumulative days in a leap year [0, 31, 60, ...]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int // days in each month of a leap year
)

func nominalDaysInMonth(year Year, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = nominalDaysInMonth(2023, i+1)
		daysInMonthLeap[i] = nominalDaysInMonth(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// Month represents a month of the year, January == 1.
type Month time.Month

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// NewMonth returns the Month for a numeric month value in the range 1-12.
func NewMonth(month int) (Month, error) {
	if month < 1 || month > 12 {
		return 0, rangeError(FieldMonth, month, 1, 12)
	}
	return Month(month), nil
}

func (m Month) String() string {
	return time.Month(m).String()
}

// Next returns the following month, December wraps to January.
func (m Month) Next() Month {
	if m == December {
		return January
	}
	return m + 1
}

// Previous returns the preceding month, January wraps to December.
func (m Month) Previous() Month {
	if m == January {
		return December
	}
	return m - 1
}

// DaysInMonth returns the number of days in the given month for the given
// year, taking leap years into account for February.
func DaysInMonth(year Year, month Month) int {
	if year.IsLeap() {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year Year) int {
	if year.IsLeap() {
		return 29
	}
	return 28
}

// DaysInYear returns the number of days in the given year, 365 or 366
// for leap years.
func DaysInYear(year Year) int {
	if year.IsLeap() {
		return 366
	}
	return 365
}

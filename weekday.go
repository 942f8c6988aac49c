// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "fmt"

// Weekday represents a day of the week following the ISO-8601 numbering,
// Monday == 1 through Sunday == 7. Weekday arithmetic is cyclic and
// independent of any date.
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// NewWeekday returns the Weekday for a numeric value in the range 1-7.
func NewWeekday(day int) (Weekday, error) {
	if day < 1 || day > 7 {
		return 0, rangeError(FieldDayOfWeek, day, 1, 7)
	}
	return Weekday(day), nil
}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w-1]
}

// Add returns the weekday the given number of days later in the weekly
// cycle, wrapping modulo 7. Negative values move backwards through the
// cycle; the normalization never produces a negative intermediate value.
func (w Weekday) Add(days int) Weekday {
	d := days % 7
	return Weekday((int(w)-1+d+7)%7 + 1)
}

// Sub returns the weekday the given number of days earlier in the cycle.
func (w Weekday) Sub(days int) Weekday {
	return w.Add(-(days % 7))
}

// Next returns the following weekday, Sunday wraps to Monday.
func (w Weekday) Next() Weekday {
	return w.Add(1)
}

// Previous returns the preceding weekday, Monday wraps to Sunday.
func (w Weekday) Previous() Weekday {
	return w.Add(-1)
}

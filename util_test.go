// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"cloudeng.io/calendar"
)

func newDate(year, month, day int) calendar.Date {
	return calendar.MustDate(year, calendar.Month(month), day)
}

func addDays(d calendar.Date, days int) calendar.Date {
	nd, err := d.AddDays(days)
	if err != nil {
		panic(err)
	}
	return nd
}

func addMonths(d calendar.Date, months int) calendar.Date {
	nd, err := d.AddMonths(months)
	if err != nil {
		panic(err)
	}
	return nd
}

func addYears(d calendar.Date, years int) calendar.Date {
	nd, err := d.AddYears(years)
	if err != nil {
		panic(err)
	}
	return nd
}

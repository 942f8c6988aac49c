// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "cloudeng.io/errors"

// Resolver determines how a year/month/day triple that does not denote a
// real calendar day is turned into a Date, as happens when month or year
// arithmetic lands on a shorter month (eg. January 31st plus one month).
// A Resolver must behave as the identity for a triple that is already
// valid. Callers may supply their own policy via ResolverFunc.
type Resolver interface {
	Resolve(year Year, month Month, day int) (Date, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(year Year, month Month, day int) (Date, error)

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(year Year, month Month, day int) (Date, error) {
	return f(year, month, day)
}

// PreviousValid resolves a day of month that exceeds the length of the
// month to the last valid day of that month; any other invalid input is
// rejected. It is the default policy for month and year arithmetic.
var PreviousValid Resolver = ResolverFunc(previousValid)

// Strict rejects any triple that does not denote a real calendar day with
// an error wrapping ErrInvalidField naming the day-of-month field. It
// never alters its input.
var Strict Resolver = ResolverFunc(strict)

func previousValid(year Year, month Month, day int) (Date, error) {
	d, err := NewDate(int(year), month, day)
	if err == nil {
		return d, nil
	}
	if errors.Is(err, ErrInvalidField) {
		return Date{year: year, month: month, day: uint8(DaysInMonth(year, month))}, nil
	}
	return Date{}, err
}

func strict(year Year, month Month, day int) (Date, error) {
	return NewDate(int(year), month, day)
}

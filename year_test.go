// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"testing"

	"cloudeng.io/calendar"
)

func TestYearLeap(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{2024, true},
		{2023, false},
		{2000, true},
		{1999, false},
		{1996, true},
		{1900, false},
		{2100, false},
		{2400, true},
		{4, true},
		{1, false},
		{0, true}, // year 0 is 1 BCE and is leap
		{-1, false},
		{-4, true},
		{-100, false},
		{-400, true},
	} {
		y, err := calendar.NewYear(tc.year)
		if err != nil {
			t.Errorf("%v: failed: %v", tc.year, err)
			continue
		}
		if got, want := y.IsLeap(), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

func TestYearRange(t *testing.T) {
	for _, tc := range []int{int(calendar.MinYear), int(calendar.MaxYear), 0, 2024} {
		if _, err := calendar.NewYear(tc); err != nil {
			t.Errorf("%v: failed: %v", tc, err)
		}
	}
	for _, tc := range []int{int(calendar.MinYear) - 1, int(calendar.MinYear) - 2, int(calendar.MaxYear) + 1} {
		_, err := calendar.NewYear(tc)
		if err == nil {
			t.Errorf("%v: failed to return an error", tc)
			continue
		}
		if !errors.Is(err, calendar.ErrRange) {
			t.Errorf("%v: got %v, want ErrRange", tc, err)
		}
		var fe *calendar.FieldError
		if !errors.As(err, &fe) || fe.Field != calendar.FieldYear {
			t.Errorf("%v: error does not identify the year field: %v", tc, err)
		}
	}
}

func TestYearAdd(t *testing.T) {
	y2007, _ := calendar.NewYear(2007)
	for _, tc := range []struct {
		years int
		want  calendar.Year
	}{
		{0, 2007},
		{1, 2008},
		{-1, 2006},
		{1000, 3007},
		{-4014, -2007},
	} {
		got, err := y2007.Add(tc.years)
		if err != nil {
			t.Errorf("%v: failed: %v", tc.years, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.years, got, tc.want)
		}
		back, err := got.Add(-tc.years)
		if err != nil || back != y2007 {
			t.Errorf("%v: round trip: got %v, %v", tc.years, back, err)
		}
	}
}

func TestYearBoundaries(t *testing.T) {
	if _, err := calendar.MaxYear.Next(); !errors.Is(err, calendar.ErrOverflow) {
		t.Errorf("got %v, want ErrOverflow", err)
	}
	if _, err := calendar.MinYear.Previous(); !errors.Is(err, calendar.ErrOverflow) {
		t.Errorf("got %v, want ErrOverflow", err)
	}
	if _, err := calendar.MaxYear.Add(1 << 40); !errors.Is(err, calendar.ErrOverflow) {
		t.Errorf("got %v, want ErrOverflow", err)
	}
	if _, err := calendar.MinYear.Sub(1 << 40); !errors.Is(err, calendar.ErrOverflow) {
		t.Errorf("got %v, want ErrOverflow", err)
	}
	y, err := calendar.MaxYear.Previous()
	if err != nil || y != calendar.MaxYear-1 {
		t.Errorf("got %v, %v", y, err)
	}
}

func TestYearLeapStepping(t *testing.T) {
	for _, tc := range []struct {
		year     int
		next     calendar.Year
		previous calendar.Year
	}{
		{2007, 2008, 2004},
		{2008, 2012, 2004},
		{1897, 1904, 1896}, // 1900 is skipped in both directions
		{1903, 1904, 1896},
		{-1, 0, -4},
	} {
		y, _ := calendar.NewYear(tc.year)
		next, err := y.NextLeap()
		if err != nil {
			t.Errorf("%v: failed: %v", tc.year, err)
			continue
		}
		if got, want := next, tc.next; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		previous, err := y.PreviousLeap()
		if err != nil {
			t.Errorf("%v: failed: %v", tc.year, err)
			continue
		}
		if got, want := previous, tc.previous; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}

	if _, err := calendar.MaxYear.NextLeap(); !errors.Is(err, calendar.ErrOverflow) {
		t.Errorf("got %v, want ErrOverflow", err)
	}
	if _, err := calendar.MinYear.PreviousLeap(); !errors.Is(err, calendar.ErrOverflow) {
		t.Errorf("got %v, want ErrOverflow", err)
	}
}

func TestYearString(t *testing.T) {
	for _, tc := range []struct {
		year int
		want string
	}{
		{2007, "2007"},
		{42, "0042"},
		{0, "0000"},
		{-3, "-0003"},
		{-2007, "-2007"},
		{12345, "12345"},
		{-12345, "-12345"},
	} {
		y, _ := calendar.NewYear(tc.year)
		if got, want := y.String(), tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
}

// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datecalc performs calendar date arithmetic from the command
// line. Dates are specified as numeric year/month/day flags and printed
// in their canonical YYYY-MM-DD form.
package main

import (
	"context"
	"fmt"

	"cloudeng.io/calendar"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

type dateFlags struct {
	Year  int `subcmd:"year,1970,year of the date"`
	Month int `subcmd:"month,1,month of the date (1-12)"`
	Day   int `subcmd:"day,1,day of month of the date"`
}

type addFlags struct {
	dateFlags
	Days   int  `subcmd:"days,0,number of days to add (may be negative)"`
	Weeks  int  `subcmd:"weeks,0,number of weeks to add"`
	Months int  `subcmd:"months,0,number of months to add"`
	Years  int  `subcmd:"years,0,number of years to add"`
	Strict bool `subcmd:"strict,false,fail on an invalid day of month instead of moving to the last valid day"`
}

type leapFlags struct {
	Year int `subcmd:"year,1970,year to test"`
}

func init() {
	addFlagSet := subcmd.NewFlagSet()
	addFlagSet.MustRegisterFlagStruct(&addFlags{}, nil, nil)
	weekdayFlagSet := subcmd.NewFlagSet()
	weekdayFlagSet.MustRegisterFlagStruct(&dateFlags{}, nil, nil)
	leapFlagSet := subcmd.NewFlagSet()
	leapFlagSet.MustRegisterFlagStruct(&leapFlags{}, nil, nil)

	addCmd := subcmd.NewCommand("add", addFlagSet, add, subcmd.WithoutArguments())
	addCmd.Document("add days, weeks, months and years to a date")

	weekdayCmd := subcmd.NewCommand("weekday", weekdayFlagSet, weekday, subcmd.WithoutArguments())
	weekdayCmd.Document("display the day of the week for a date")

	leapCmd := subcmd.NewCommand("leap", leapFlagSet, leap, subcmd.WithoutArguments())
	leapCmd.Document("display leap year information for a year")

	cmdSet = subcmd.NewCommandSet(addCmd, weekdayCmd, leapCmd)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

func (df dateFlags) date() (calendar.Date, error) {
	return calendar.NewDate(df.Year, calendar.Month(df.Month), df.Day)
}

func add(_ context.Context, values interface{}, _ []string) error {
	fv := values.(*addFlags)
	date, err := fv.date()
	if err != nil {
		return err
	}
	resolver := calendar.PreviousValid
	if fv.Strict {
		resolver = calendar.Strict
	}
	if fv.Years != 0 {
		if date, err = date.AddYearsResolved(fv.Years, resolver); err != nil {
			return err
		}
	}
	if fv.Months != 0 {
		if date, err = date.AddMonthsResolved(fv.Months, resolver); err != nil {
			return err
		}
	}
	if fv.Weeks != 0 {
		if date, err = date.AddWeeks(fv.Weeks); err != nil {
			return err
		}
	}
	if fv.Days != 0 {
		if date, err = date.AddDays(fv.Days); err != nil {
			return err
		}
	}
	fmt.Println(date)
	return nil
}

func weekday(_ context.Context, values interface{}, _ []string) error {
	fv := values.(*dateFlags)
	date, err := fv.date()
	if err != nil {
		return err
	}
	fmt.Printf("%v: %v\n", date, date.Weekday())
	return nil
}

func leap(_ context.Context, values interface{}, _ []string) error {
	fv := values.(*leapFlags)
	year, err := calendar.NewYear(fv.Year)
	if err != nil {
		return err
	}
	next, err := year.NextLeap()
	if err != nil {
		return err
	}
	previous, err := year.PreviousLeap()
	if err != nil {
		return err
	}
	fmt.Printf("%v: leap=%v previous=%v next=%v\n", year, year.IsLeap(), previous, next)
	return nil
}

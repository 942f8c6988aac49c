// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"

	"cloudeng.io/errors"
)

// Every validation or arithmetic failure returned by this package wraps
// exactly one of the following sentinels, allowing callers to branch on
// the kind of failure with errors.Is.
var (
	// ErrRange indicates a raw field value outside its fixed valid range,
	// such as month 13 or day 32.
	ErrRange = errors.New("value out of range")
	// ErrInvalidField indicates a field value that is within its own range
	// but invalid in combination with the other fields, such as day 30
	// in February.
	ErrInvalidField = errors.New("invalid field for date")
	// ErrOverflow indicates arithmetic whose result would leave the
	// representable year range. Arithmetic never wraps silently.
	ErrOverflow = errors.New("date arithmetic overflow")
	// ErrNilResolver indicates that a required Resolver was nil.
	ErrNilResolver = errors.New("nil resolver")
)

// Field identifies the calendrical field that a FieldError refers to.
type Field int

const (
	FieldYear Field = iota
	FieldMonth
	FieldDayOfMonth
	FieldDayOfWeek
	FieldDayOfYear
)

func (f Field) String() string {
	switch f {
	case FieldYear:
		return "year"
	case FieldMonth:
		return "month"
	case FieldDayOfMonth:
		return "day-of-month"
	case FieldDayOfWeek:
		return "day-of-week"
	case FieldDayOfYear:
		return "day-of-year"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// FieldError reports a field value that was rejected, either because it is
// outside the field's fixed range (wraps ErrRange) or because it is invalid
// for the other fields it was combined with (wraps ErrInvalidField).
// Min and Max describe the range that would have been accepted.
type FieldError struct {
	Field    Field
	Value    int
	Min, Max int
	Err      error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v %v not in [%v, %v]: %v", e.Field, e.Value, e.Min, e.Max, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func rangeError(field Field, value, min, max int) error {
	return &FieldError{Field: field, Value: value, Min: min, Max: max, Err: ErrRange}
}

func invalidFieldError(field Field, value, min, max int) error {
	return &FieldError{Field: field, Value: value, Min: min, Max: max, Err: ErrInvalidField}
}

package datetime

import (
	"fmt"
	"time"
)

// IsLeapYear applies the Gregorian rule: divisible by 4 and not by 100,
// unless also divisible by 400.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// IsLeapYearOf reports whether t falls in a leap year.
func IsLeapYearOf(t time.Time) bool {
	return IsLeapYear(t.Year())
}

// DaysInMonth returns the number of days in month (1-12) of year, or 0 when
// month is out of range.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DaysInMonthOf returns the number of days in the month containing t.
func DaysInMonthOf(t time.Time) int {
	return DaysInMonth(t.Year(), int(t.Month()))
}

// AddDays parses input and moves it by n calendar days (n may be negative),
// keeping the wall-clock time across DST changes. ok is false when input does
// not parse.
func AddDays(input any, n int) (time.Time, bool) {
	t, ok := Parse(input)
	if !ok {
		return time.Time{}, false
	}
	return t.AddDate(0, 0, n), true
}

// Breakdown is a non-overlapping decomposition of a time span: Hours, Minutes
// and Seconds are the remainders left after extracting the next larger unit.
type Breakdown struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

func (b Breakdown) String() string {
	return fmt.Sprintf("%dd %dh %dm %ds", b.Days, b.Hours, b.Minutes, b.Seconds)
}

// TimeDifference parses both inputs and breaks the absolute span between them
// into days, hours, minutes and seconds. Sub-second remainders are dropped.
// ok is false when either input does not parse.
func TimeDifference(a, b any) (Breakdown, bool) {
	ta, ok := Parse(a)
	if !ok {
		return Breakdown{}, false
	}
	tb, ok := Parse(b)
	if !ok {
		return Breakdown{}, false
	}

	ms := tb.UnixMilli() - ta.UnixMilli()
	if ms < 0 {
		ms = -ms
	}
	secs := ms / 1000
	return Breakdown{
		Days:    secs / 86400,
		Hours:   secs / 3600 % 24,
		Minutes: secs / 60 % 60,
		Seconds: secs % 60,
	}, true
}

// Package timeutil converts the epoch-seconds timestamps stored in QIC
// catalog records into calendar fields, reproducing the exact (and, in
// two documented respects, buggy) arithmetic of the original decoder
// so that dates recovered from existing archives match bit-for-bit.
package timeutil

import "time"

const baseYear = 1970

// Time is a broken-down calendar time in the same shape as the
// original decoder's struct tm: year is stored as an absolute year
// (not year-1900), everything else 1-based/0-based as noted.
type Time struct {
	Year   int // absolute year, e.g. 1998
	Month  int // 1..12
	Day    int // 1..31; 0 only within the first day after the epoch
	Hour   int
	Minute int
	Second int
}

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// isLeapNonStandard reproduces the source's leap-year predicate, which
// differs from the Gregorian rule for years divisible by 400: it
// classifies year 2000 as a non-leap year. This is preserved intentionally (see DESIGN.md) so
// that archives produced against the original decoder keep decoding
// to the same dates.
func isLeapNonStandard(year int) bool {
	if year%100 == 0 || year%4 != 0 {
		return false
	}
	return true
}

// FromEpochSeconds converts seconds-since-1970-01-01 UTC into a Time,
// preserving the original decoder's day-tally loop exactly, including
// its off-by-one behavior near year boundaries (the "date > day" test
// happens both in the loop condition and again in the body) and its
// use of the leap flag from the loop's last iteration, rather than a
// fresh recomputation, to size February.
func FromEpochSeconds(seconds uint32) Time {
	date := uint64(seconds)

	sec := int(date % 60)
	date /= 60
	minute := int(date % 60)
	date /= 60
	hour := int(date % 24)
	date /= 24

	year := baseYear
	var daysInYear uint64
	var lastLeap bool

	for {
		lastLeap = isLeapNonStandard(year)
		if lastLeap {
			daysInYear = 366
		} else {
			daysInYear = 365
		}
		if date > daysInYear {
			year++
			date -= daysInYear
		}
		if date <= daysInYear {
			break
		}
	}

	day := int(date)

	// months[1] uses lastLeap, the flag evaluated for the year that was
	// current at the top of the final loop iteration, not a fresh
	// isLeapNonStandard(year) call: when that iteration crosses a year
	// boundary, year has already advanced past the value lastLeap was
	// computed for, and the original decoder never recomputes it.
	months := monthDays
	if lastLeap {
		months[1] = 29
	}

	month := 0
	for month < 12 {
		if months[month] >= day {
			break
		}
		day -= months[month]
		month++
	}

	return Time{
		Year:   year,
		Month:  month + 1,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: sec,
	}
}

// Std converts to a UTC time.Time, for os.Chtimes and for tests that
// want to compare against a well-known instant. It does not correct
// the leap-year or loop quirks above; it just carries them forward
// into a standard representation of the (possibly skewed) date.
func (t Time) Std() time.Time {
	month := t.Month
	day := t.Day
	if month < 1 {
		month = 1
	}
	if month > 12 {
		month = 12
	}
	if day < 1 {
		day = 1
	}

	return time.Date(t.Year, time.Month(month), day, t.Hour, t.Minute, t.Second, 0, time.UTC)
}

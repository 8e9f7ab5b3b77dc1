package calendar

import (
	"fmt"
	"time"
)

// Span is a calendar-aware difference between two dates.
type Span struct {
	Years  int
	Months int
	Days   int
}

// String renders the span as "1y 0m 1d".
func (s Span) String() string {
	return fmt.Sprintf("%dy %dm %dd", s.Years, s.Months, s.Days)
}

// IsLeapYear reports whether year has a February 29th in the Gregorian
// calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month of year.
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// Age returns the years, months and days elapsed between birthday and today.
// The second result is false when birthday is absent or falls after today.
//
// A negative day difference borrows a month worth of days counted in the
// birthday's own month, so 2000-02-29 to 2001-03-01 is one year and one day.
func Age(birthday, today Date) (Span, bool) {
	if birthday.IsZero() || today.Before(birthday) {
		return Span{}, false
	}

	years := today.Year - birthday.Year
	months := int(today.Month) - int(birthday.Month)
	days := today.Day - birthday.Day

	if days < 0 {
		months--
		days += DaysIn(birthday.Year, birthday.Month)
	}
	if months < 0 {
		years--
		months += 12
	}

	return Span{Years: years, Months: months, Days: days}, true
}

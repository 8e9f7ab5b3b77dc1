// Package calendar provides a zone-free Date value and the age arithmetic
// built on it. Age never reads the clock; callers pass the reference date,
// typically calendar.Today() at the outer edge of the program.
package calendar

package person

import (
	"errors"
	"strings"

	"github.com/goliatone/go-patientview/pkg/calendar"
)

// ErrIncomparable is returned when a birthday comparison is requested against
// a value that is not a Person, or when either side has no birthday.
var ErrIncomparable = errors.New("person: values are not comparable")

// Person is an immutable patient record. Construct it with New; the zero
// value is a nameless person of unknown gender without a birthday.
type Person struct {
	name     string
	gender   Gender
	birthday calendar.Date
}

// New builds a Person. A zero birthday means the birthday is not known.
func New(name string, gender Gender, birthday calendar.Date) Person {
	if gender == "" {
		gender = GenderUnknown
	}
	return Person{
		name:     strings.TrimSpace(name),
		gender:   gender,
		birthday: birthday,
	}
}

func (p Person) Name() string            { return p.name }
func (p Person) Gender() Gender          { return p.gender }
func (p Person) Birthday() calendar.Date { return p.birthday }
func (p Person) HasBirthday() bool       { return !p.birthday.IsZero() }

// AgeAt returns the age of p on today. The second result is false when the
// birthday is unknown or after today.
func (p Person) AgeAt(today calendar.Date) (calendar.Span, bool) {
	return calendar.Age(p.birthday, today)
}

// Age returns the age of p as of the current local date. It is recomputed on
// every call.
func (p Person) Age() (calendar.Span, bool) {
	return p.AgeAt(calendar.Today())
}

// Equal reports whether both people share name, gender and birthday.
func (p Person) Equal(other Person) bool {
	return p.name == other.name && p.gender == other.gender && p.birthday == other.birthday
}

// Equals is Equal for untyped values. Anything other than a Person or
// *Person is never equal.
func (p Person) Equals(other any) bool {
	switch o := other.(type) {
	case Person:
		return p.Equal(o)
	case *Person:
		return o != nil && p.Equal(*o)
	default:
		return false
	}
}

// GreaterThan reports whether p was born before other.
//
// The ordering is intentionally inverted relative to the calendar: the person
// with the earlier birthday is the "greater" one. People without a birthday
// are never greater than anyone.
func (p Person) GreaterThan(other Person) bool {
	if !p.HasBirthday() || !other.HasBirthday() {
		return false
	}
	return p.birthday.Before(other.birthday)
}

// CompareBirthday orders p against other using the GreaterThan convention:
// +1 when p was born earlier, -1 when later and 0 on the same day.
func (p Person) CompareBirthday(other any) (int, error) {
	var o Person
	switch v := other.(type) {
	case Person:
		o = v
	case *Person:
		if v == nil {
			return 0, ErrIncomparable
		}
		o = *v
	default:
		return 0, ErrIncomparable
	}
	if !p.HasBirthday() || !o.HasBirthday() {
		return 0, ErrIncomparable
	}
	return -p.birthday.Compare(o.birthday), nil
}

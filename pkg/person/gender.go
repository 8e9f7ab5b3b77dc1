package person

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Gender is the recorded gender of a person.
type Gender string

const (
	GenderFemale  Gender = "female"
	GenderMale    Gender = "male"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

// ParseGender maps free-form input onto a Gender. Matching is case-insensitive
// and accepts the single-letter forms "f" and "m". Empty input is unknown.
func ParseGender(raw string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "f", "female":
		return GenderFemale, nil
	case "m", "male":
		return GenderMale, nil
	case "o", "other":
		return GenderOther, nil
	case "", "u", "unknown":
		return GenderUnknown, nil
	default:
		return GenderUnknown, fmt.Errorf("person: unknown gender %q", raw)
	}
}

// Label returns the display form, e.g. "Female".
func (g Gender) Label() string {
	if g == "" {
		g = GenderUnknown
	}
	// Casers carry state, so each call gets its own.
	return cases.Title(language.English).String(string(g))
}

// UnmarshalText implements encoding.TextUnmarshaler so genders load from
// YAML and JSON documents.
func (g *Gender) UnmarshalText(data []byte) error {
	parsed, err := ParseGender(string(data))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

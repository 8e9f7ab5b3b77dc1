package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-patientview/pkg/calendar"
	"github.com/goliatone/go-patientview/pkg/person"
)

var genderChoices = []person.Gender{
	person.GenderFemale,
	person.GenderMale,
	person.GenderOther,
	person.GenderUnknown,
}

// AskBirthday prompts for an ISO birthday. Blank answers are rejected.
func AskBirthday(ctx context.Context, driver Driver) (calendar.Date, error) {
	answer, err := driver.Input(ctx, InputConfig{
		Message:   "Birthday (YYYY-MM-DD):",
		Validator: validateBirthday,
	})
	if err != nil {
		return calendar.Date{}, err
	}
	if err := validateBirthday(answer); err != nil {
		return calendar.Date{}, err
	}
	return calendar.ParseDate(answer)
}

// AskPerson prompts for name, gender and birthday. The birthday may be left
// blank.
func AskPerson(ctx context.Context, driver Driver) (person.Person, error) {
	name, err := driver.Input(ctx, InputConfig{
		Message: "Name:",
		Validator: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("name is required")
			}
			return nil
		},
	})
	if err != nil {
		return person.Person{}, err
	}

	options := make([]string, len(genderChoices))
	for i, g := range genderChoices {
		options[i] = g.Label()
	}
	idx, err := driver.Select(ctx, SelectConfig{
		Message:      "Gender:",
		Options:      options,
		DefaultIndex: len(options) - 1,
	})
	if err != nil {
		return person.Person{}, err
	}
	gender := person.GenderUnknown
	if idx >= 0 && idx < len(genderChoices) {
		gender = genderChoices[idx]
	}

	raw, err := driver.Input(ctx, InputConfig{
		Message: "Birthday (YYYY-MM-DD, optional):",
		Validator: func(s string) error {
			_, err := calendar.ParseDate(s)
			return err
		},
	})
	if err != nil {
		return person.Person{}, err
	}
	birthday, err := calendar.ParseDate(raw)
	if err != nil {
		return person.Person{}, fmt.Errorf("prompt: %w", err)
	}

	return person.New(name, gender, birthday), nil
}

func validateBirthday(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("birthday is required")
	}
	_, err := calendar.ParseDate(s)
	return err
}

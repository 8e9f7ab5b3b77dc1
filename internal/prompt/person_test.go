package prompt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-patientview/pkg/calendar"
	"github.com/goliatone/go-patientview/pkg/person"
)

type scriptedDriver struct {
	inputs  []string
	selects []int
	asked   []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	if len(d.inputs) == 0 {
		return "", ErrAborted
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	return answer, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.asked = append(d.asked, cfg.Message)
	if len(d.selects) == 0 {
		return 0, ErrAborted
	}
	answer := d.selects[0]
	d.selects = d.selects[1:]
	return answer, nil
}

func TestAskPerson(t *testing.T) {
	driver := &scriptedDriver{
		inputs:  []string{"Ada", "2000-02-29"},
		selects: []int{0},
	}

	got, err := AskPerson(context.Background(), driver)
	if err != nil {
		t.Fatalf("ask person: %v", err)
	}

	want := person.New("Ada", person.GenderFemale, calendar.NewDate(2000, time.February, 29))
	if !got.Equal(want) {
		t.Fatalf("unexpected person %+v", got)
	}
	if len(driver.asked) != 3 {
		t.Fatalf("expected three prompts, got %v", driver.asked)
	}
}

func TestAskPerson_OptionalBirthday(t *testing.T) {
	driver := &scriptedDriver{inputs: []string{"Bob", ""}, selects: []int{-1}}

	got, err := AskPerson(context.Background(), driver)
	if err != nil {
		t.Fatalf("ask person: %v", err)
	}
	if got.HasBirthday() || got.Gender() != person.GenderUnknown {
		t.Fatalf("unexpected person %+v", got)
	}
}

func TestAskBirthday(t *testing.T) {
	got, err := AskBirthday(context.Background(), &scriptedDriver{inputs: []string{"1999-12-31"}})
	if err != nil {
		t.Fatalf("ask birthday: %v", err)
	}
	if !got.Equal(calendar.NewDate(1999, time.December, 31)) {
		t.Fatalf("unexpected birthday %v", got)
	}

	if _, err := AskBirthday(context.Background(), &scriptedDriver{inputs: []string{""}}); err == nil {
		t.Fatalf("expected blank birthday to fail")
	}
	if _, err := AskBirthday(context.Background(), &scriptedDriver{}); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestIndexOf(t *testing.T) {
	if got := indexOf([]string{"a", "b"}, "b"); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := indexOf([]string{"a"}, "z"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}
